package irc

import "time"

// Channel is a named room. Grounded on the teacher's irc/channel.go
// Channel type and original_source/server.py's Channel class (topic tuple,
// modes set seeded with "t", operators, ban_list).
//
// Invariants (spec.md §3): Operators is always a subset of Members; a
// Channel with an empty Members set is removed from the Registry by
// whichever caller just emptied it (Part/Kick/quit cleanup).
type Channel struct {
	Name      string
	Topic     string // empty means unset
	TopicWho  string
	TopicTime time.Time
	Modes     map[byte]bool // seeded with {'t'}
	Operators map[*User]bool
	Members   map[*User]bool
	BanList   map[string]string // canonical ban mask -> setter's user mask
}

// NewChannel creates a channel with founder as its sole member and operator.
func NewChannel(name string, founder *User) *Channel {
	ch := &Channel{
		Name:      name,
		Modes:     map[byte]bool{'t': true},
		Operators: make(map[*User]bool),
		Members:   make(map[*User]bool),
		BanList:   make(map[string]string),
	}
	ch.Members[founder] = true
	ch.Operators[founder] = true
	return ch
}

func (ch *Channel) IsMember(u *User) bool   { return ch.Members[u] }
func (ch *Channel) IsOperator(u *User) bool { return ch.Operators[u] }

// SetTopic sets or clears (on empty text) the channel's topic.
func (ch *Channel) SetTopic(u *User, text string) {
	if text == "" {
		ch.Topic = ""
		ch.TopicWho = ""
		ch.TopicTime = time.Time{}
		return
	}
	ch.Topic = text
	ch.TopicWho = u.Nick
	ch.TopicTime = time.Now()
}

// IsBanned reports whether userMask matches any ban mask on this channel.
func (ch *Channel) IsBanned(userMask string) bool {
	for mask := range ch.BanList {
		if MatchesBan(userMask, mask) {
			return true
		}
	}
	return false
}

// ModeString renders the channel's current mode letters as "+<letters>".
func (ch *Channel) ModeString() string {
	letters := ""
	for _, l := range []byte{'t'} {
		if ch.Modes[l] {
			letters += string(l)
		}
	}
	return "+" + letters
}
