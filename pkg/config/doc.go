// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration structs declare their sources via `env` struct tags as
// understood by github.com/caarlos0/env. Every component of the storefront
// ships its own Config struct next to its code; this package only provides
// the loading mechanics.
package config
