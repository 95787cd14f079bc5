package github

import "strings"

const (
	defaultHost      = "api.github.com"
	defaultUserAgent = "ghactivity/0.1"
)

// Request is a formatted HTTP/1.1 GET. It carries no body.
type Request struct {
	Path      string
	Host      string
	UserAgent string
}

// EventsRequest returns the request for a user's public events.
// The username is embedded verbatim; callers sanitize it.
func EventsRequest(host, userAgent, username string) Request {
	return Request{
		Path:      "/users/" + username + "/events",
		Host:      host,
		UserAgent: userAgent,
	}
}

// String renders the request line, headers, and the terminating blank line.
func (r Request) String() string {
	var b strings.Builder
	b.WriteString("GET ")
	b.WriteString(r.Path)
	b.WriteString(" HTTP/1.1\r\n")
	b.WriteString("Host: ")
	b.WriteString(r.Host)
	b.WriteString("\r\n")
	b.WriteString("user-agent: ")
	b.WriteString(r.UserAgent)
	b.WriteString("\r\n")
	b.WriteString("connection: close\r\n")
	b.WriteString("\r\n")
	return b.String()
}

// BuildRequest formats the events request for username against api.github.com.
func BuildRequest(username string) string {
	return EventsRequest(defaultHost, defaultUserAgent, username).String()
}
