package github

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// EventFetcher is implemented by *Client and can be faked in tests.
type EventFetcher interface {
	FetchEvents(ctx context.Context, username string) ([]Event, error)
}

// Ensure Client implements EventFetcher at compile time.
var _ EventFetcher = (*Client)(nil)

const (
	defaultPort    = 443
	defaultTimeout = 10 * time.Second
)

// Options configure a Client. Zero values fall back to api.github.com:443.
type Options struct {
	Host      string
	Port      int
	UserAgent string
	// Timeout bounds one whole exchange. Zero uses the default; negative
	// disables the deadline.
	Timeout time.Duration
	RootCAs *x509.CertPool
	// Dial replaces the TLS dialer, mainly for simulated peers.
	Dial DialFunc
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client runs one request/response exchange per call. Connections are never reused.
type Client struct {
	host      string
	userAgent string
	timeout   time.Duration
	dial      DialFunc
	log       zerolog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) *Client {
	host := opts.Host
	if host == "" {
		host = defaultHost
	}
	port := opts.Port
	if port <= 0 {
		port = defaultPort
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	dial := opts.Dial
	if dial == nil {
		dial = Dialer{Host: host, Port: port, RootCAs: opts.RootCAs}.Dial
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		host:      host,
		userAgent: userAgent,
		timeout:   timeout,
		dial:      dial,
		log:       logger,
	}
}

// FetchEvents retrieves and decodes the public events of username.
// The first failing stage aborts the exchange.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]Event, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	conn, err := c.dial(ctx)
	if err != nil {
		var gerr *Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		return nil, ioError("connect", err)
	}
	defer func() { _ = conn.Close() }()
	c.log.Debug().Str("host", c.host).Msg("connected")

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	req := EventsRequest(c.host, c.userAgent, username)
	if _, err := io.WriteString(conn, req.String()); err != nil {
		return nil, ioError("write request", err)
	}
	c.log.Debug().Str("path", req.Path).Msg("request sent")

	raw, err := ReadAll(conn)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("bytes", len(raw)).Msg("response read")

	resp, err := ParseResponse(raw)
	if err != nil {
		c.log.Debug().Str("status", statusLine(raw)).Msg("response rejected")
		return nil, err
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.log.Debug().Str("remaining", remaining).Msg("rate limit")
	}

	events, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("events", len(events)).Msg("decoded")
	return events, nil
}
