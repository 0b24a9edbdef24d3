// Package config loads findgroup settings from YAML or TOML files.
//
// Settings are layered: built-in defaults, then the first config file
// found, then command-line flags (applied by the caller). The file is the
// one named by --config, else FINDGROUP_CONFIG, else the nearest
// .findgroup.yaml, .findgroup.yml or .findgroup.toml walking up from the
// working directory, else $XDG_CONFIG_HOME/findgroup/config.{yaml,yml,toml}.
//
// Example .findgroup.yaml:
//
//	match_case: false
//	whole_word: true
//	format: markdown
//	include_vendor: false
//	extensions: [".go", ".cs"]
package config
