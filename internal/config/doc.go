// Package config provides configuration loading, merging, and validation
// for the relay server and its terminal client.
//
// Configuration is assembled from an optional .env file and then from the
// following sources, consulted in priority order (the first source that
// sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive the defaults declared in
// defaults.go. The main entry points are [GetStructuredConfig] for the
// relay and [GetClientConfig] for the client.
package config
