package irc

import (
	"io"
	"log"
	"strings"
)

// runSession is the reader loop for one connection: it reads lines until
// the connection ends or a QUIT is dispatched, feeding every line through
// the registration gate (spec.md §4.3) or, once welcomed, straight to
// Dispatch under the registry lock (spec.md §5).
//
// Grounded on original_source/server.py's CommandReceiver.recv_loop,
// translated from its per-chunk accumulate-until-newline loop onto
// lineReader's buffered one-line-at-a-time reads, and from its
// threading.Timer ping restarts onto the watchdog goroutine in
// liveness.go.
func (s *Server) runSession(u *User) {
	wd := newWatchdog(s, u)
	go wd.Run()
	defer wd.Stop()

	limiter := newConnLimiter(s)
	reader := newLineReader(u.Conn)

	for {
		line, err := reader.ReadLine()
		if err != nil {
			reason := "Remote host closed the connection"
			if err != io.EOF {
				reason = err.Error()
			}
			u.EnqueueQuit(reason)
			return
		}
		wd.Reset()

		if limiter != nil && !limiter.Allow() {
			continue
		}

		command, args := ParseLine(line)
		if command == "" {
			continue
		}

		if s.dispatchLine(u, command, args) {
			return
		}
	}
}

// dispatchLine runs one parsed command through the registration gate
// (spec.md §4.3) or, once the session is welcomed, through Dispatch under
// the registry lock. It isolates a panicking handler with recover so one
// bad command can't take the whole server down (spec.md §7): the deferred
// Unlock releases the registry lock, and the session is ended through the
// disconnect sentinel. It reports whether the session should now end (a
// dispatched QUIT or a recovered panic).
func (s *Server) dispatchLine(u *User, command string, args []string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic handling %s from %s: %v", command, u.ID(), r)
			u.EnqueueQuit("Internal error")
			quit = true
		}
	}()

	upper := strings.ToUpper(command)

	if !u.Welcomed() {
		if upper == "QUIT" {
			u.EnqueueQuit("Client quit")
			return true
		}

		s.Registry.Lock()
		defer s.Registry.Unlock()
		if !preRegistrationCommands[upper] {
			errNotRegistered(s, u)
		} else {
			Dispatch(s, u, upper, args)
			maybeWelcome(s, u)
		}
		return false
	}

	s.Registry.Lock()
	defer s.Registry.Unlock()
	Dispatch(s, u, upper, args)
	return upper == "QUIT"
}
