// Package config handles configuration loading, parsing, and validation
// from a .env file, an optional config.yaml, and DEVSPRINT_-prefixed
// environment variables. Values are exposed as a typed Config so that
// components receive only the settings they need.
package config
