// Package github fetches a user's public events from the GitHub REST API over a
// hand-driven HTTP/1.1 exchange on a TLS socket.
//
// # Overview
//
// No HTTP client library is involved. The package opens the TLS connection
// itself, writes a formatted GET request, drains the socket until the peer
// closes it, and parses the raw response text by hand before decoding the JSON
// payload.
//
// # Architecture
//
//   - transport.go: TLS dialing and transport error classification
//   - request.go: Request formatting (request line, Host, user-agent, connection: close)
//   - response.go: ReadAll, ParseStatus, ExtractBody, ParseResponse
//   - events.go: Decode, field projection and text rendering of events
//   - errors.go: the closed Kind taxonomy and *Error
//   - client.go: Client.FetchEvents, which runs the stages in order
//
// # Pipeline
//
//	Dial ──> write Request ──> ReadAll ──> ParseStatus ──> ExtractBody ──> Decode
//
// Every stage either succeeds or returns an *Error, and the first error aborts
// the exchange. The connection is closed when FetchEvents returns.
//
// # Status Mapping
//
//	200  success
//	404  KindNotFound
//	403  KindForbidden
//	503  KindServerUnavailable
//	304  KindNotModified
//	NNN  KindUnexpectedStatus (any other 3-digit code, carried in Error.Code)
//	???  KindHTTPParse (missing or non-numeric status token)
//
// The status is checked before the body is located, so a 404 without any body
// still reports NotFound rather than a framing error.
//
// # Field Projection
//
// Each array element yields an Event with type, repo.name and repo.url. A
// missing key, a non-object intermediate or a non-string leaf all produce
// Unknown. Element order is preserved.
//
// # Usage Example
//
//	client := github.NewClient(github.Options{Timeout: 10 * time.Second})
//	events, err := client.FetchEvents(ctx, "octocat")
//	if err != nil {
//		fmt.Printf("Error: %v\n", err)
//		return
//	}
//	_ = github.Print(os.Stdout, events)
//
// # Error Handling
//
// Use errors.Is with the sentinels for status outcomes, or KindOf for any kind:
//
//	if errors.Is(err, github.ErrNotFound) { ... }
//	if github.KindOf(err) == github.KindTLS { ... }
package github
