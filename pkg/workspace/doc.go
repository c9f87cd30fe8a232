/*
Package workspace is the project registry a format request talks to.

	                 Server
	   ┌───────────────────────────────────┐
	   │ scopes  map[dir]*scope   (RWMutex) │
	   │ handles map[handle]*scope          │
	   └──────┬───────────────────┬─────────┘
	          │                   │
	     scope /proj          scope /other
	   ┌─────────────────┐   ┌─────────────────┐
	   │ mu              │   │ mu              │
	   │ settings  (ptr) │   │ settings  (ptr) │
	   │ manifest  (ptr) │   │ manifest  (ptr) │
	   │ documents       │   │ documents       │
	   │  (handle,path)  │   │  (handle,path)  │
	   └─────────────────┘   └─────────────────┘

🎯 Purpose:
- RegisterProjectFolder hands out a fresh ProjectHandle bound to the
  directory's scope, creating the scope with default settings if needed
- UpdateSettings compiles a Configuration into an immutable Settings snapshot
  and swaps it in; readers see the old snapshot or the new one
- SetManifestForProject stores the manifest under its own key, so it and
  UpdateSettings can run in either order
- FileFeatures answers which requested features apply to a path
- OpenFile / FormatFile run the engine over a document private to the handle
- CloseProject releases the handle and its documents; a scope is evicted
  when its last handle closes, so a long-lived Server only holds
  directories with a request in flight

⚡ Concurrency:
- The registry lock only guards map lookups
- Each scope serializes its own mutations; different directories never
  contend beyond the registry lock
- Handles come from a counter and are never reused
*/
package workspace
