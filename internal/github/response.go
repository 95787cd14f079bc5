package github

import (
	"errors"
	"io"
	"net/textproto"
	"strconv"
	"strings"
	"unicode/utf8"
)

const headerBodySeparator = "\r\n\r\n"

// Header holds response headers keyed by canonical MIME name.
type Header map[string][]string

// Get returns the first value for key, or "".
func (h Header) Get(key string) string {
	values := h[textproto.CanonicalMIMEHeaderKey(key)]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Response is a parsed raw HTTP/1.1 response with a success status.
type Response struct {
	Proto      string
	StatusCode int
	Reason     string
	Header     Header
	Body       string
}

// ReadAll drains r until end-of-stream. The peer is expected to close the
// connection after the response, so no length framing is consulted.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		// TLS peers often close the socket without close_notify once the
		// response is complete.
		if !errors.Is(err, io.ErrUnexpectedEOF) || len(data) == 0 {
			return "", ioError("read response", err)
		}
	}
	if !utf8.Valid(data) {
		return "", ioError("read response", errors.New("stream did not contain valid UTF-8"))
	}
	return string(data), nil
}

// ParseStatus maps the status code on the first line of raw to a result.
// Only 200 succeeds.
func ParseStatus(raw string) error {
	fields := strings.Fields(statusLine(raw))
	if len(fields) < 2 {
		return httpParseError("missing status code")
	}
	switch code := fields[1]; code {
	case "200":
		return nil
	case "404":
		return ErrNotFound
	case "403":
		return ErrForbidden
	case "503":
		return ErrServerUnavailable
	case "304":
		return ErrNotModified
	default:
		n, ok := parseStatusCode(code)
		if !ok {
			return httpParseError("unknown status code: %s", code)
		}
		return &Error{Kind: KindUnexpectedStatus, Code: n}
	}
}

// ExtractBody returns everything after the first header/body separator.
func ExtractBody(raw string) (string, error) {
	_, body, found := strings.Cut(raw, headerBodySeparator)
	if !found {
		return "", &Error{Kind: KindUnexpectedResponse, Detail: "missing body"}
	}
	return body, nil
}

// ParseResponse checks the status first and only then splits off the body,
// so a failing status is reported even when the body is malformed.
func ParseResponse(raw string) (Response, error) {
	if err := ParseStatus(raw); err != nil {
		return Response{}, err
	}
	body, err := ExtractBody(raw)
	if err != nil {
		return Response{}, err
	}

	head, _, _ := strings.Cut(raw, headerBodySeparator)
	lines := strings.Split(head, "\r\n")
	resp := Response{Header: parseHeaderLines(lines[1:]), Body: body}

	proto, rest, _ := strings.Cut(lines[0], " ")
	resp.Proto = proto
	code, reason, _ := strings.Cut(strings.TrimSpace(rest), " ")
	resp.StatusCode, _ = strconv.Atoi(code)
	resp.Reason = strings.TrimSpace(reason)
	return resp, nil
}

func statusLine(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	return strings.TrimSuffix(line, "\r")
}

func parseStatusCode(token string) (int, bool) {
	if len(token) != 3 {
		return 0, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseHeaderLines(lines []string) Header {
	header := make(Header, len(lines))
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := textproto.CanonicalMIMEHeaderKey(name)
		header[key] = append(header[key], strings.TrimSpace(value))
	}
	return header
}
