// Package infrastructure provides the network side of the monitoring center.
//
// Key components:
//   - Listener: accepts TCP connections and dispatches each to its own goroutine
//   - ConnectionHandler: owns one client connection from accept to close
//   - StatusAPI: read-only HTTP view of the history store
//   - ChartRenderer: periodic sparkline rendering of the history store
package infrastructure

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/google/uuid"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

// ReadingProcessor turns one raw message into the response for the sensor.
type ReadingProcessor interface {
	Process(message, sourceAddress string) (string, error)
}

// ConnectionHandler serves one sensor connection: it reads a message,
// processes it, writes the response and repeats until the sensor disconnects
// or the connection fails. Requests on a connection are strictly sequential.
type ConnectionHandler struct {
	processor   ReadingProcessor
	logger      monitorDomain.Logger
	bufferSize  monitorDomain.BufferSize
	readTimeout monitorDomain.ReadTimeout
}

// Handle serves conn until it is finished and closes it exactly once.
// No error or panic escapes: failures are logged and only close this connection.
func (h *ConnectionHandler) Handle(conn net.Conn) {
	addr := conn.RemoteAddr().String()
	session := uuid.NewString()
	h.logger.Info("connection received from %s \t session: %s", addr, session)

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			h.logger.Error("error on closing connection with %s: %s \t session: %s", addr, err.Error(), session)
		}
		h.logger.Info("connection closed with %s \t session: %s", addr, session)
	}()

	err := monitorDomain.SafeFunctionRun(func() error {
		return h.serve(conn, addr, session)
	}, h.logger)
	if err != nil {
		h.logger.Error("error handling connection with %s: %s \t session: %s", addr, err.Error(), session)
	}
}

// serve runs the read/process/respond loop. A nil result means the peer
// closed the connection.
func (h *ConnectionHandler) serve(conn net.Conn, addr, session string) error {
	buf := make([]byte, h.bufferSize)

	for {
		if h.readTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(time.Duration(h.readTimeout))); err != nil {
				return &monitorDomain.ConnectionIOError{Addr: addr, Op: "read", Err: err}
			}
		}

		n, err := conn.Read(buf)
		if n > 0 {
			if werr := h.respond(conn, string(buf[:n]), addr, session); werr != nil {
				return werr
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Debug("client %s closed its side of the connection \t session: %s", addr, session)
				return nil
			}
			return &monitorDomain.ConnectionIOError{Addr: addr, Op: "read", Err: err}
		}
	}
}

// respond processes one message and writes the answer back.
func (h *ConnectionHandler) respond(conn net.Conn, message, addr, session string) error {
	h.logger.Debug("data received from %s: %q \t session: %s", addr, message, session)

	response, err := h.processor.Process(message, addr)
	if err != nil {
		h.logger.Error("error processing data from %s: %s \t session: %s", addr, err.Error(), session)
	}

	if _, err := conn.Write([]byte(response)); err != nil {
		return &monitorDomain.ConnectionIOError{Addr: addr, Op: "write", Err: err}
	}
	h.logger.Debug("response sent to %s: %s \t session: %s", addr, response, session)

	return nil
}

// NewConnectionHandler creates a handler reading at most bufferSize bytes per message.
// A zero readTimeout lets connections stay idle forever.
func NewConnectionHandler(
	processor ReadingProcessor,
	bufferSize monitorDomain.BufferSize,
	readTimeout monitorDomain.ReadTimeout,
	logger monitorDomain.Logger,
) *ConnectionHandler {
	return &ConnectionHandler{
		processor:   processor,
		bufferSize:  bufferSize,
		readTimeout: readTimeout,
		logger:      logger,
	}
}
