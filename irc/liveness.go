package irc

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

// defaultPingInterval/defaultPongGrace match original_source/server.py's
// PING_TIMER_SECS (300) and the 5-second grace window in
// assert_pong_received.
const (
	defaultPingInterval = 300 * time.Second
	defaultPongGrace    = 5 * time.Second
)

// watchdog is the per-connection liveness timer pair described in
// spec.md §4.6: an idle-PING timer that fires after PingInterval of
// silence, followed by a PongGrace timer that disconnects the client if
// no PONG arrived in response.
//
// Grounded on original_source/server.py's start_ping_timer/
// queue_ping_message/assert_pong_received, translated from
// threading.Timer restarts onto a single goroutine driven by a
// resettable time.Timer (idiomatic for the teacher's goroutine-per-
// connection style).
type watchdog struct {
	s      *Server
	u      *User
	resetC chan struct{}
	stopC  chan struct{}
}

func newWatchdog(s *Server, u *User) *watchdog {
	return &watchdog{
		s:      s,
		u:      u,
		resetC: make(chan struct{}, 1),
		stopC:  make(chan struct{}),
	}
}

// Reset is called by the reader loop every time a line is received,
// postponing the idle-PING.
func (w *watchdog) Reset() {
	select {
	case w.resetC <- struct{}{}:
	default:
	}
}

// Stop ends the watchdog goroutine; called once the connection's reader
// loop returns.
func (w *watchdog) Stop() {
	close(w.stopC)
}

// Run drives the idle-PING / PONG-grace cycle until Stop is called. Meant
// to be started in its own goroutine alongside the reader loop.
func (w *watchdog) Run() {
	interval := w.s.PingInterval
	if interval <= 0 {
		interval = defaultPingInterval
	}
	grace := w.s.PongGrace
	if grace <= 0 {
		grace = defaultPongGrace
	}

	idle := time.NewTimer(interval)
	defer idle.Stop()

	for {
		select {
		case <-w.stopC:
			return
		case <-w.resetC:
			if !idle.Stop() {
				drainTimer(idle)
			}
			idle.Reset(interval)
		case <-idle.C:
			w.u.PongReceived = false
			w.u.Enqueue("PING :"+w.s.Registry.ServerName, w.s.Registry.ServerName)

			graceTimer := time.NewTimer(grace)
		grace:
			for {
				select {
				case <-w.stopC:
					graceTimer.Stop()
					return
				case <-w.resetC:
					// Some line arrived; only a valid PONG sets
					// PongReceived, so anything else just keeps
					// waiting out the grace window (spec.md §4.6 /
					// original_source's assert_pong_received).
					if w.u.PongReceived {
						break grace
					}
				case <-graceTimer.C:
					// The reader loop signals Reset before it dispatches
					// the line, so a valid PONG may set PongReceived only
					// after its Reset was seen above.
					if w.u.PongReceived {
						break grace
					}
					log.Printf("session %s: no PONG within %s, disconnecting (last PRIVMSG or connect %s)", w.u.ID(), grace, humanize.Time(w.u.LastSeen))
					w.u.EnqueueQuit("Ping timeout...")
					return
				}
			}
			graceTimer.Stop()
			idle.Reset(interval)
		}
	}
}

func drainTimer(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}
