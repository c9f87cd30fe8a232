/*
Package pipeline runs one format request through its stages. Each stage is a
method on the previous stage's result, so a stage cannot be skipped or
reordered.

	Request
	   │ Pipeline.Resolve      config + gitignore + manifest
	   ▼
	Resolved
	   │ .Register             project handle
	   ▼
	Registered
	   │ .ApplySettings        manifest, then settings snapshot
	   ▼
	Applied
	   │ .CheckFeatures ──────► Ignored{Reason}
	   ▼
	Eligible
	   │ .Format ─────────────► Success{Content} | Error{Message}
	   ▼
	Outcome

Any stage may instead return a *Failure naming the stage. A Failure is never
an Outcome: ignored files and engine errors are ordinary results, a Failure
means the request itself could not be carried out.
*/
package pipeline
