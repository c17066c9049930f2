// Package config loads runtime configuration for the authdemo client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   record store base URL
//	-d string   local session database file
//	-k string   token signing key
//	-w string   web front end listen address
//	-t int      record store request timeout (seconds, 0 = none)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Timeouts use timex.Duration, so "5s" and integer nanoseconds both work.
// Absent keys keep their previous value:
//
//	{
//	  "record_store_url": "http://localhost:3001",
//	  "local_dsn": "session.db",
//	  "signing_key": "change-me",
//	  "web_addr": "127.0.0.1:3000",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s"
//	}
package config
