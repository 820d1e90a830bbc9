package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 1 (spec.md §8): join then part.
func TestJoinThenPart(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	frames := drain(alice)
	assert.Equal(t, []string{
		"JOIN #foo",
		"353 Alice = #foo :@Alice",
		"366 Alice #foo :End of /NAMES list.",
	}, frames)
	assert.NotNil(t, s.Registry.FindChannel("#foo"))

	handlePart(s, alice, []string{"#foo"})
	frames = drain(alice)
	assert.Equal(t, []string{"PART #foo"}, frames)
	assert.Nil(t, s.Registry.FindChannel("#foo"))
}

// Scenario 2 (spec.md §8): private channel message is delivered to every
// other member, not back to the sender.
func TestChannelPrivmsgNotEchoedToSender(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	drain(alice)
	drain(bob)

	handlePrivmsg(s, bob, []string{"#foo", "Foo"})

	assert.Equal(t, []string{"PRIVMSG #foo :Foo"}, drain(alice))
	assert.Empty(t, drain(bob))
}

// Scenario 4 (spec.md §8): a ban blocks both speech and (re)join; lifting
// it restores both.
func TestBanBlocksJoinAndSpeechUntilUnbanned(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	drain(alice)
	drain(bob)

	handleMode(s, alice, []string{"#foo", "+b", "Bob"})
	drain(alice)
	drain(bob)

	handlePrivmsg(s, bob, []string{"#foo", "hi"})
	assert.Equal(t, []string{"404 Bob #foo :Cannot send to nick/channel"}, drain(bob))

	handlePart(s, bob, []string{"#foo"})
	drain(bob)
	handleJoin(s, bob, []string{"#foo"})
	assert.Equal(t, []string{"474 Bob #foo :Cannot join channel (+b) - you are banned"}, drain(bob))

	handleMode(s, alice, []string{"#foo", "-b", "Bob"})
	drain(alice)

	handleJoin(s, bob, []string{"#foo"})
	frames := drain(bob)
	assert.Contains(t, frames, "JOIN #foo")
}

func TestRepeatedOperatorModeEmitsNoFrames(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")

	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	handleMode(s, alice, []string{"#foo", "+o", "Bob"})
	drain(alice)
	drain(bob)

	handleMode(s, alice, []string{"#foo", "+o", "Bob"})
	assert.Empty(t, drain(alice))
	assert.Empty(t, drain(bob))
}
