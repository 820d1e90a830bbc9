package irc

import (
	"runtime"
	"testing"
	"time"
)

// Test-only helpers shared across this package's _test.go files.

// pollUntil waits (bounded) for u's outbound queue to accumulate at least
// n frames, used where a frame is delivered by a goroutine this test
// doesn't otherwise synchronize with (the outbound pump).
func pollUntil(t *testing.T, u *User, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for u.out.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d frame(s); got %d", n, u.out.Len())
		}
		time.Sleep(time.Millisecond)
	}
	return drain(u)
}

func yieldToScheduler() {
	runtime.Gosched()
	time.Sleep(time.Millisecond)
}

func newTestServer() *Server {
	return NewServer(NewRegistry("mantatail"))
}

// registerUser fabricates an already-welcomed session directly in the
// registry, bypassing NICK/USER/CAP/MOTD — handler tests exercise command
// semantics, not the registration gate (session_test.go covers that).
func registerUser(s *Server, nick, userName, host string) *User {
	u := NewUser(nil, host)
	u.Nick = nick
	u.UserName = userName
	u.RealName = nick
	u.MOTDSent = true

	s.Registry.Lock()
	s.Registry.AddUser(u)
	s.Registry.Unlock()
	return u
}

// drain pops every currently-queued frame's rendered payload, without
// blocking past what's already enqueued.
func drain(u *User) []string {
	var out []string
	for u.out.Len() > 0 {
		f := u.out.Pop()
		if f.Payload == nil {
			out = append(out, "QUIT:"+f.Prefix)
			continue
		}
		out = append(out, *f.Payload)
	}
	return out
}
