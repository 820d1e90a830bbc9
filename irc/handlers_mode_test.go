package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanListQueryAndEndOfList(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")
	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	drain(alice)
	drain(bob)

	handleMode(s, alice, []string{"#foo", "+b", "Carol"})
	drain(alice)

	handleMode(s, alice, []string{"#foo", "+b"})
	frames := drain(alice)
	assert.Equal(t, []string{
		"367 Alice #foo Carol!*@* :Alice!AliceUsr@127.0.0.1",
		"368 Alice #foo :End of channel ban list",
	}, frames)
}

func TestTopicLockRequiresOperator(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	bob := registerUser(s, "Bob", "BobUsr", "127.0.0.1")
	handleJoin(s, alice, []string{"#foo"})
	handleJoin(s, bob, []string{"#foo"})
	drain(alice)
	drain(bob)

	handleTopic(s, bob, []string{"#foo", "new topic"})
	frames := drain(bob)
	assert.Equal(t, []string{"482 Bob #foo :You're not channel operator"}, frames)

	handleTopic(s, alice, []string{"#foo", "new topic"})
	assert.Equal(t, []string{"TOPIC #foo :new topic"}, drain(alice))
	assert.Equal(t, []string{"TOPIC #foo :new topic"}, drain(bob))
}

func TestChannelModeIsQuery(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	handleJoin(s, alice, []string{"#foo"})
	drain(alice)

	handleMode(s, alice, []string{"#foo"})
	assert.Equal(t, []string{"324 Alice #foo :+t"}, drain(alice))
}

func TestUnknownModeLetterRejected(t *testing.T) {
	s := newTestServer()
	alice := registerUser(s, "Alice", "AliceUsr", "127.0.0.1")
	handleJoin(s, alice, []string{"#foo"})
	drain(alice)

	handleMode(s, alice, []string{"#foo", "+z"})
	assert.Equal(t, []string{"472 Alice z :is an unknown mode char to me"}, drain(alice))
}
