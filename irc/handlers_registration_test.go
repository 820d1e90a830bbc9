package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 3 (spec.md §8): a nick rename propagates exactly once to each
// peer sharing any channel, even when multiple channels are shared.
func TestNickRenamePropagatesExactlyOnce(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	handleJoin(s, alice, []string{"#bar"})
	handleJoin(s, bob, []string{"#bar"})
	drain(alice)
	drain(bob)

	handleNick(s, alice, []string{"NewNick"})

	frames := drain(bob)
	assert.Equal(t, []string{"NICK :NewNick"}, frames)
	assert.Equal(t, "NewNick", alice.Nick)
	assert.Equal(t, "NewNick!AliceUsr@127.0.0.1", alice.UserMask())
}

// Boundary property (spec.md §8): NICK to the exact current nick emits
// zero frames.
func TestNickToSameNickEmitsNoFrames(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	drain(alice)
	drain(bob)

	handleNick(s, alice, []string{"Alice"})

	assert.Empty(t, drain(bob))
}

func TestNickCollisionRejected(t *testing.T) {
	s := newTestServer()
	registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleNick(s, bob, []string{"Alice"})

	frames := drain(bob)
	assert.Equal(t, []string{"433 Bob Alice :Nickname is already in use"}, frames)
	assert.Equal(t, "Bob", bob.Nick)
}

func TestErroneousNicknameRejected(t *testing.T) {
	s := newTestServer()
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleNick(s, bob, []string{"1nvalid"})

	frames := drain(bob)
	assert.Equal(t, []string{"432 Bob 1nvalid :Erroneous nickname"}, frames)
}
