package irc

import (
	"log"
	"net"
	"strings"
	"time"
)

// Server owns the registry and the per-connection config every accepted
// user session shares. Grounded on the teacher's Server (irc/server.go),
// generalized from its single sync.Mutex-guarded maps to hold a *Registry
// instead, and on original_source/server.py's ConnectionListener + State.
type Server struct {
	Registry *Registry

	// started is rendered verbatim into 003 (RPL_CREATED), matching
	// original_source/server.py's SERVER_STARTED module constant.
	started string

	// PingInterval/PongGrace drive the liveness watchdog (spec.md §4.6);
	// zero values fall back to the package defaults in liveness.go.
	PingInterval time.Duration
	PongGrace    time.Duration

	// RateLimit/RateBurst configure the per-connection flood limiter
	// (limiter.go). Zero RateLimit disables rate limiting.
	RateLimit float64
	RateBurst int
}

// NewServer builds a Server bound to registry, stamping started with the
// current time the way original_source/server.py stamps SERVER_STARTED at
// import time.
func NewServer(registry *Registry) *Server {
	return &Server{
		Registry:     registry,
		started:      time.Now().Format(time.ANSIC),
		PingInterval: defaultPingInterval,
		PongGrace:    defaultPongGrace,
	}
}

// ListenAndServe opens a TCP listener on addr and runs the accept loop
// until the listener errors or is closed. Each accepted connection gets
// its own session goroutine (irc/session.go), matching the teacher's
// Serve/handleConnection split and original_source/server.py's
// ConnectionListener.run_server_forever/CommandReceiver pairing.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.Printf("mantatail listening on %s", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConnection(conn)
	}
}

// handleConnection builds the new session's User, starts its writer
// goroutine (the outbound pump), then blocks in its reader loop until the
// connection ends. Grounded on the teacher's handleConnection.
func (s *Server) handleConnection(conn net.Conn) {
	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		host = conn.RemoteAddr().String()
	}

	u := NewUser(conn, host)
	log.Printf("connection accepted from %s (session %s)", host, u.ID())

	go s.pumpOutbound(u)
	s.runSession(u)
}

// pumpOutbound is the per-connection writer goroutine: it drains u's
// outbound queue and writes frames to the socket, one at a time, forever
// — until it pops the disconnect sentinel, at which point it performs the
// full cleanup + clean-close protocol and returns.
//
// Grounded on original_source/server.py's UserConnection.send_queue_thread
// and close_socket_cleanly.
func (s *Server) pumpOutbound(u *User) {
	for {
		f := u.out.Pop()

		if f.Payload == nil {
			s.disconnectUser(u, f.Prefix)
			return
		}

		if _, err := u.Conn.Write(frameLine(*f.Payload, f.Prefix)); err != nil {
			u.EnqueueQuit(err.Error())
		}
	}
}

// disconnectUser runs the §4.2 cleanup-then-close sequence once a
// disconnect sentinel reaches the front of u's outbound queue: remove u
// from every channel (destroying any that become empty), fan out a QUIT
// to every user who shared a channel with u, remove u from the registry
// if it was registered, then close the socket cleanly.
func (s *Server) disconnectUser(u *User, reason string) {
	quitMessage := "QUIT :Quit: " + reason

	s.Registry.Lock()
	peers := s.Registry.UsersSharingChannelsWith(u)
	for _, ch := range s.Registry.Channels() {
		delete(ch.Operators, u)
		delete(ch.Members, u)
		if len(ch.Members) == 0 {
			s.Registry.RemoveChannel(ch.Name)
		}
	}
	if u.Nick != nilNick {
		s.Registry.RemoveUser(strings.ToLower(u.Nick))
	}
	s.Registry.Unlock()

	for peer := range peers {
		peer.Enqueue(quitMessage, u.UserMask())
	}

	// Best-effort: the client may already be gone. Bypasses the queue —
	// this is the last frame this connection will ever write.
	var prefix string
	if u.Nick != nilNick && u.UserName != "" {
		prefix = u.UserMask()
	}
	u.Conn.Write(frameLine(quitMessage, prefix))

	closeSocketCleanly(u.Conn)
}

// closeSocketCleanly shuts down the write half, waits (up to 10s) for the
// peer to close its end, then closes the socket — avoiding the data loss
// and connection-reset noise a bare Close can cause.
//
// Grounded verbatim on original_source/server.py's close_socket_cleanly,
// itself citing https://blog.netherlabs.nl/articles/2009/01/18/the-ultimate-so_linger-page-or-why-is-my-tcp-not-reliable
func closeSocketCleanly(conn net.Conn) {
	defer conn.Close()

	type writeCloser interface {
		CloseWrite() error
	}
	if wc, ok := conn.(writeCloser); ok {
		if err := wc.CloseWrite(); err != nil {
			return
		}
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	buf := make([]byte, 1)
	conn.Read(buf) // wait for the client to close its end; errors are expected and ignored
}
