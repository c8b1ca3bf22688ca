package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/avast/retry-go"

	sensorDomain "github.com/samoilenko/thermo_monitor/sensor/domain"
)

const (
	responseBufferSize = 1024
	dialAttempts       = 5
	dialDelay          = 500 * time.Millisecond
	dialMaxDelay       = 5 * time.Second
	exchangeTimeout    = 10 * time.Second
)

// TCPTransport keeps one connection to the monitoring center and exchanges
// one message and one response per Send. A failed exchange drops the
// connection; the next Send dials again.
type TCPTransport struct {
	address sensorDomain.Address
	logger  sensorDomain.Logger
	dialer  net.Dialer

	mu   sync.Mutex
	conn net.Conn
}

// Connect dials the monitoring center, retrying with exponential backoff.
// It is a no-op when a connection is already open.
func (t *TCPTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connect(ctx)
}

func (t *TCPTransport) connect(ctx context.Context) error {
	if t.conn != nil {
		return nil
	}

	var conn net.Conn
	err := retry.Do(
		func() error {
			var err error
			conn, err = t.dialer.DialContext(ctx, "tcp", string(t.address))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(dialAttempts),
		retry.Delay(dialDelay),
		retry.MaxDelay(dialMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			t.logger.Error("connection attempt %d to %s failed: %s", n+1, t.address, err.Error())
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", t.address, err)
	}

	t.conn = conn
	t.logger.Info("connected to %s from %s", t.address, conn.LocalAddr().String())
	return nil
}

// Send writes message and waits for the response. It returns ErrConnectionClosed
// when the center closed the connection and ErrTransportNotReady when the
// connection could not be used.
func (t *TCPTransport) Send(ctx context.Context, message string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.connect(ctx); err != nil {
		return "", fmt.Errorf("%w: %s", sensorDomain.ErrTransportNotReady, err.Error())
	}

	deadline := time.Now().Add(exchangeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := t.conn.SetDeadline(deadline); err != nil {
		t.drop()
		return "", fmt.Errorf("%w: %s", sensorDomain.ErrTransportNotReady, err.Error())
	}

	if _, err := io.WriteString(t.conn, message); err != nil {
		t.drop()
		return "", fmt.Errorf("%w: write: %s", sensorDomain.ErrTransportNotReady, err.Error())
	}

	buf := make([]byte, responseBufferSize)
	n, err := t.conn.Read(buf)
	if n > 0 {
		return string(buf[:n]), nil
	}
	t.drop()
	if err == nil || errors.Is(err, io.EOF) {
		return "", sensorDomain.ErrConnectionClosed
	}
	return "", fmt.Errorf("%w: read: %s", sensorDomain.ErrTransportNotReady, err.Error())
}

// LocalAddr returns the local address of the open connection, or nil.
func (t *TCPTransport) LocalAddr() net.Addr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	return t.conn.LocalAddr()
}

// Close closes the open connection, if any.
func (t *TCPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// drop closes and forgets the current connection. t.mu must be held.
func (t *TCPTransport) drop() {
	if err := t.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		t.logger.Error("error on closing connection: %s", err.Error())
	}
	t.conn = nil
}

// NewTCPTransport creates a transport for address. No connection is made until Connect or Send.
func NewTCPTransport(address sensorDomain.Address, logger sensorDomain.Logger) *TCPTransport {
	return &TCPTransport{
		address: address,
		logger:  logger,
		dialer:  net.Dialer{Timeout: exchangeTimeout},
	}
}
