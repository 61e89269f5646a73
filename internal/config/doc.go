// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Variables from a .env file in the working directory are loaded first; values
// already present in the environment win.
package config
