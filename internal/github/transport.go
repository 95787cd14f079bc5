package github

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strconv"
)

// DialFunc opens the duplex stream a single exchange runs over.
type DialFunc func(ctx context.Context) (net.Conn, error)

// Dialer opens TLS connections to one remote endpoint.
type Dialer struct {
	Host string
	Port int
	// RootCAs overrides the system trust store when non-nil.
	RootCAs *x509.CertPool
}

// Dial connects over TCP and completes the TLS handshake before returning.
func (d Dialer) Dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	td := &tls.Dialer{
		NetDialer: &net.Dialer{},
		Config: &tls.Config{
			ServerName: d.Host,
			RootCAs:    d.RootCAs,
			MinVersion: tls.VersionTLS12,
		},
	}
	conn, err := td.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, classifyDialError(addr, err)
	}
	return conn, nil
}

func classifyDialError(addr string, err error) *Error {
	if isTLSFailure(err) {
		return tlsError("handshake with "+addr, err)
	}
	return ioError("connect "+addr, err)
}

func isTLSFailure(err error) bool {
	var (
		verifyErr    *tls.CertificateVerificationError
		recordErr    tls.RecordHeaderError
		alertErr     tls.AlertError
		authorityErr x509.UnknownAuthorityError
		hostErr      x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}
