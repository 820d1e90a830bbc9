package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapReqAcksSupportedCapabilities(t *testing.T) {
	s := newTestServer()
	u := NewUser(nil, "127.0.0.1")

	handleCap(s, u, []string{"REQ", "away-notify"})

	frames := drain(u)
	assert.Equal(t, []string{"CAP * ACK :away-notify"}, frames)
	assert.True(t, u.CapList["away-notify"])
}

func TestCapReqNaksUnsupportedCapabilities(t *testing.T) {
	s := newTestServer()
	u := NewUser(nil, "127.0.0.1")

	handleCap(s, u, []string{"REQ", "sasl"})

	frames := drain(u)
	assert.Equal(t, []string{"CAP * NAK :sasl"}, frames)
	assert.False(t, u.CapList["sasl"])
}

func TestCapLsWithVersion302EnablesCapNotify(t *testing.T) {
	s := newTestServer()
	u := NewUser(nil, "127.0.0.1")

	handleCap(s, u, []string{"LS", "302"})

	drain(u)
	assert.True(t, u.CapList["cap-notify"])
}

func TestCapLsWithoutVersionLeavesCapNotifyUnset(t *testing.T) {
	s := newTestServer()
	u := NewUser(nil, "127.0.0.1")

	handleCap(s, u, []string{"LS"})

	drain(u)
	assert.False(t, u.CapList["cap-notify"])
}

func TestCapEndClearsNegotiationAndAllowsWelcome(t *testing.T) {
	s := newTestServer()
	u := NewUser(nil, "127.0.0.1")
	u.Nick = "Alice"
	u.UserName = "AliceUsr"

	handleCap(s, u, []string{"LS"})
	drain(u)
	assert.True(t, u.CapNegInProgress)
	assert.False(t, u.Welcomed())

	handleCap(s, u, []string{"END"})
	assert.False(t, u.CapNegInProgress)
	assert.True(t, u.Welcomed())
	assert.True(t, u.MOTDSent)
}
