// Package config provides configuration loading, merging, and validation
// facilities for the archive binaries.
//
// Configuration is assembled from multiple sources; a field set by an earlier
// source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the terminal client and [GetEnvConfig] for archivectl.
package config
