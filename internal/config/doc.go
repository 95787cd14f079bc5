// Package config loads ghactivity's optional TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ghactivity/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - host: api.github.com
//   - port: 443
//   - user_agent: ghactivity/0.1
//   - timeout_seconds: 10 (negative disables the deadline)
//   - log_level: warn
//   - theme: Plain
//
// # TOML Format
//
//	host = "api.github.com"
//	port = 443
//	user_agent = "ghactivity/0.1"
//	timeout_seconds = 10
//	log_level = "warn"
//	theme = "Dracula"
//
// All fields are optional and whitespace is trimmed. Tilde expansion is applied
// to the config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and out-of-range ports. A missing file is
// not an error.
package config
