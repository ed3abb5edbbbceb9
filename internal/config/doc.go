// Package config loads salvage engine configuration: game constants, named
// settings profiles and process options from a file, the environment and flags.
package config
