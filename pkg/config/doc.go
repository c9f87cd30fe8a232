/*
Package config resolves the effective project configuration for a format request.

	            +-------------------+
	            |   PathHint        |
	            | none/user/workspace|
	            +---------+---------+
	                      |
	              auto-search (fsys)
	                      |
	      +---------------+---------------+
	      |               |               |
	+-----+-----+   +-----+-----+   +-----+-----+
	|   YAML    |   |   JSON    |   |    HCL    |
	|  Parser   |   |  Parser   |   |  Parser   |
	+-----+-----+   +-----+-----+   +-----+-----+
	      |               |               |
	      +-------+-------+-------+-------+
	              |               |
	        Default() + Merge   FMTRC_* env (koanf)
	              |
	          Validate
	              |
	     LoadedConfiguration

🎯 Purpose:
- Finds the nearest .fmtrc.{yaml,yml,json,hcl} for a directory hint
- Parses it into a PartialConfiguration (every field optional)
- Merges it onto the defaults, then applies FMTRC_* environment overrides
- Validates the result before it reaches the workspace

⚡ Behavior:
- No config file is not an error: the defaults are returned and the
  working directory becomes the configuration directory
- A config file that cannot be read or parsed fails the whole request
- The returned Configuration is a value; callers get copies

🔍 Example:

	fs, _ := fsys.NewOS("/proj")
	loaded, err := config.Load(ctx, fs, config.HintNone())
	if err != nil {
		return err
	}
	fmt.Println(loaded.FilePath, loaded.Configuration.Formatter.LineWidth)
*/
package config
