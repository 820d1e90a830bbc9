package irc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWatchdogDisconnectsWhenGraceExpiresWithoutValidPong exercises the
// defect the PongReceived-check fix addresses: a line arriving during the
// grace window (here simulated directly via Reset, the same signal the
// reader loop sends for *any* line, valid PONG or not) must not cancel the
// disconnect unless it was an actual PONG that set PongReceived.
func TestWatchdogDisconnectsWhenGraceExpiresWithoutValidPong(t *testing.T) {
	s := newTestServer()
	s.PingInterval = 10 * time.Millisecond
	s.PongGrace = 20 * time.Millisecond
	u := NewUser(nil, "127.0.0.1")
	u.Nick = "Alice"

	wd := newWatchdog(s, u)
	go wd.Run()

	frames := pollUntil(t, u, 1)
	assert.Equal(t, []string{"PING :mantatail"}, frames)

	// A garbage line (or a PONG with the wrong origin, which handlePong
	// rejects without setting PongReceived) still reaches Reset via the
	// reader loop, but must not be mistaken for a real PONG.
	wd.Reset()

	frames = pollUntil(t, u, 1)
	assert.Len(t, frames, 1)
	assert.True(t, strings.HasPrefix(frames[0], "QUIT:Ping timeout"), frames[0])
}

// TestWatchdogSurvivesGraceWhenValidPongArrives is the companion case: once
// PongReceived is actually set (as handlePong does), the same Reset signal
// must cancel the disconnect and re-arm the idle timer instead.
func TestWatchdogSurvivesGraceWhenValidPongArrives(t *testing.T) {
	s := newTestServer()
	s.PingInterval = 10 * time.Millisecond
	s.PongGrace = 100 * time.Millisecond
	u := NewUser(nil, "127.0.0.1")
	u.Nick = "Alice"

	wd := newWatchdog(s, u)
	go wd.Run()

	frames := pollUntil(t, u, 1)
	assert.Equal(t, []string{"PING :mantatail"}, frames)

	u.PongReceived = true
	wd.Reset()

	// Give the watchdog goroutine time to observe PongReceived and cancel
	// the grace timer, then stop it before the (much longer) grace window
	// would otherwise have expired.
	time.Sleep(20 * time.Millisecond)
	wd.Stop()

	for _, f := range drain(u) {
		assert.False(t, strings.HasPrefix(f, "QUIT:"), f)
	}
}
