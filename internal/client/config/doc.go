// Package config loads runtime configuration for the blogsync CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations can be either strings like "15s" or integer nanoseconds:
//
//	{
//	  "data_dir": ".blogsync",
//	  "request_timeout": "15s",
//	  "online_check_interval": "3s",
//	  "log_level": "info"
//	}
//
// Note: the values loaded here configure the process (where local state
// lives, how chatty the logs are). The server host/port the client talks to
// is persisted separately by the settings store and managed interactively.
package config
