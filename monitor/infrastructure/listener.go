package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/net/netutil"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

const maxAcceptDelay = time.Second

// Handler serves a single accepted connection.
type Handler interface {
	Handle(conn net.Conn)
}

// Listener binds the monitoring center's TCP endpoint and hands every
// accepted connection to a Handler running in its own goroutine.
//
// Handlers are fire-and-forget: Shutdown stops accepting but never waits for
// or cancels them. Drain can be used to wait for them with a deadline.
type Listener struct {
	bindAddress    monitorDomain.BindAddress
	maxConnections monitorDomain.MaxConnections
	handler        Handler
	logger         monitorDomain.Logger

	lnLock   sync.Mutex
	ln       net.Listener
	closed   bool
	handlers sync.WaitGroup
}

// Listen binds the listening socket. A failure is returned as a *BindError
// and leaves the Listener unbound.
func (l *Listener) Listen() error {
	ln, err := net.Listen("tcp", string(l.bindAddress))
	if err != nil {
		return &monitorDomain.BindError{Address: l.bindAddress, Err: err}
	}

	if l.maxConnections > 0 {
		ln = netutil.LimitListener(ln, int(l.maxConnections))
	}

	l.lnLock.Lock()
	l.ln = ln
	l.lnLock.Unlock()

	l.logger.Info("server listening on %s", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen succeeds.
func (l *Listener) Addr() net.Addr {
	l.lnLock.Lock()
	defer l.lnLock.Unlock()
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

// Serve accepts connections until Shutdown is called or ctx is cancelled,
// then returns nil. Failed accepts are logged and retried with a capped backoff.
func (l *Listener) Serve(ctx context.Context) error {
	l.lnLock.Lock()
	ln := l.ln
	l.lnLock.Unlock()
	if ln == nil {
		return errors.New("listener is not bound")
	}

	stop := context.AfterFunc(ctx, func() {
		if err := l.Shutdown(); err != nil {
			l.logger.Error("error on closing listening socket: %s", err.Error())
		}
	})
	defer stop()

	l.logger.Info("waiting for client connections...")

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if l.isClosed() || errors.Is(err, net.ErrClosed) {
				return nil
			}

			acceptErr := &monitorDomain.AcceptError{Err: err}
			l.logger.Error("unexpected connection error: %s", acceptErr.Error())

			delay = nextAcceptDelay(delay)
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		l.handlers.Add(1)
		go func() {
			defer l.handlers.Done()
			l.handler.Handle(conn)
		}()
	}
}

// Shutdown closes the listening socket, unblocking Serve. Calling it again is a no-op.
// Connections already accepted are left running.
func (l *Listener) Shutdown() error {
	l.lnLock.Lock()
	defer l.lnLock.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.ln == nil {
		return nil
	}

	l.logger.Info("server is shutting down, no new connections are accepted")
	if err := l.ln.Close(); err != nil {
		return fmt.Errorf("closing listening socket: %w", err)
	}
	return nil
}

// Drain waits until every handler started by Serve has returned or ctx is done.
// It must be called after Serve has returned.
func (l *Listener) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.handlers.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("connections still open: %w", ctx.Err())
	case <-done:
		return nil
	}
}

func (l *Listener) isClosed() bool {
	l.lnLock.Lock()
	defer l.lnLock.Unlock()
	return l.closed
}

// nextAcceptDelay doubles the previous delay, starting at 5ms and capped at one second.
func nextAcceptDelay(prev time.Duration) time.Duration {
	if prev == 0 {
		return 5 * time.Millisecond
	}
	if next := prev * 2; next < maxAcceptDelay {
		return next
	}
	return maxAcceptDelay
}

// NewListener creates an unbound Listener. A zero maxConnections means no limit.
func NewListener(
	bindAddress monitorDomain.BindAddress,
	maxConnections monitorDomain.MaxConnections,
	handler Handler,
	logger monitorDomain.Logger,
) *Listener {
	return &Listener{
		bindAddress:    bindAddress,
		maxConnections: maxConnections,
		handler:        handler,
		logger:         logger,
	}
}
