// Package config loads and validates the shop API configuration.
//
// Settings come from an optional YAML file and the process environment and
// are resolved once at startup into typed structs. Each settings struct
// validates itself, so malformed database or frontend URLs are rejected
// before any connection is opened.
package config
