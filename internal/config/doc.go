// Package config defines the application configuration structure and loads
// it from files and environment variables via viper. Loaded values are
// passed to constructors explicitly; nothing outside this package reads
// ambient process state.
package config
