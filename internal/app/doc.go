// Package app is the composition root of ghactivity.
//
// # Overview
//
// Run wires configuration, logging, the GitHub events client and the output
// front end for a single invocation:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()           Read ~/.config/ghactivity/config.toml
//	       ├─────> observability.NewLogger() zerolog to stderr
//	       ├─────> ValidateUsername()      Reject logins unsafe to embed in a request
//	       ├─────> github.NewClient()      TLS client for api.github.com:443
//	       └─────> FetchEvents + ui.Renderer.Print   (or ui.Browse with --tui)
//
// # Error Handling
//
// Configuration errors are wrapped with "load config". Validation and pipeline
// errors are returned as-is so the caller prints them as "Error: <message>".
// Nothing is retried.
//
// # Usage Example
//
//	err := app.Run(ctx, app.Options{Username: "octocat"})
//	if err != nil {
//		fmt.Printf("Error: %v\n", err)
//	}
package app
