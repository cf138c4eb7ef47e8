// Package config provides functionality for loading and managing application
// configuration.
//
// Settings structs are validated with go-playground/validator and loaded from
// YAML through viper. This centralizes configuration management for easier
// modification and extension.
package config
