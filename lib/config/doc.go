// Package config provides configuration management for the timeconv command.
//
// Settings come from, in increasing priority: built-in defaults (Defaults),
// a YAML file, TIMECONV_* environment variables, and command line flags bound
// by the caller. The file lives at $HOME/.timeconv/config.yaml unless an
// explicit path is given; a missing default file is not an error, a missing
// explicit file is.
//
// Example file:
//
//	unit: ms
//	log_level: warn
//	watch:
//	  max_skew: 1h
//	  fail_on_backward: true
package config
