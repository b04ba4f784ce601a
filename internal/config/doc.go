// Package config loads the flo project configuration.
//
// The config file lives at $FLO_CONFIG, $XDG_CONFIG_HOME/flo/flo.jsonc or
// ~/.config/flo/flo.jsonc, in that order. Its format follows the file
// extension: JSON with comments and trailing commas (.jsonc, .json and
// anything unknown), TOML (.toml) or YAML (.yaml, .yml).
//
//	{
//	  "base_dir": "~/coding",
//	  "projects": {
//	    "flo": { "root": "~/coding/flo" },
//	  },
//	}
//
// Projects keep the order in which they appear in the file.
//
// # Failure Modes
//
// [Load] never leaves the caller without a config. A missing file means no
// projects. A broken file also means no projects, plus an [InvalidError]
// naming the file so the CLI can print a single warning and carry on.
//
// # Path Validation
//
// base_dir must be absolute or start with ~. Roots only have to be strings
// here; a leading ~ is expanded at load time and the project resolver
// skips a project whose root is empty or relative.
package config
