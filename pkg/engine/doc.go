/*
Package engine holds the bundled formatting engines and the registry that maps
a file path to one of them.

	 path ──► Registry.ForPath ──► Formatter ──► Format(content, Options)
	                                   │
	        ┌─────────┬────────┬───────┴──┬──────────┐
	        css       go       hcl        json       yaml

🎯 Purpose:
- Each engine owns one language and a set of file extensions
- Options carry the indent style, indent width and line width
- Malformed input is reported as a *SyntaxError, never a panic

⚡ Contract:
- Formatting already formatted content returns identical bytes
- Engines do not touch the file system
*/
package engine
