package irc

import "golang.org/x/time/rate"

// newConnLimiter builds the per-connection flood control described in
// SPEC_FULL.md's DOMAIN STACK section: a token bucket gating how many
// lines a session's reader loop will accept per second, so one
// misbehaving client can't monopolize the single registry lock (spec.md
// §5's "correctness beats throughput" concern extended to the wire side).
//
// A zero-valued Server.RateLimit disables limiting entirely (returns nil,
// and callers must treat a nil limiter as "always allow").
func newConnLimiter(s *Server) *rate.Limiter {
	if s.RateLimit <= 0 {
		return nil
	}
	burst := s.RateBurst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(s.RateLimit), burst)
}
