// Package config loads the optional YAML options file for a matching run.
//
// Every option has a flag counterpart on the CLI; flags set explicitly on
// the command line win over file values.
package config
