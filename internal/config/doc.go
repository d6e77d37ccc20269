// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the reference object API.
//
// Configuration is assembled from the following sources in descending
// priority; a source only fills fields the higher ones left at zero:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding set variables)
//  3. JSON config file (path from -c/--config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
