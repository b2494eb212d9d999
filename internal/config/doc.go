// Package config loads, merges, and validates the vault's configuration.
//
// Three sources are layered, highest precedence first: environment
// variables, command-line flags, then an optional JSON file named by either
// of the first two. [GetStructuredConfig] is the entry point.
package config
