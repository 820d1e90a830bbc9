package irc

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
)

// nilNick is the sentinel nick of an unregistered connection, per spec.md §3.
const nilNick = "*"

// User is one connected session: one TCP connection, one reader goroutine,
// one writer goroutine, one outbound queue. Grounded on the teacher's
// irc/user.go User type and original_source/server.py's UserConnection.
type User struct {
	id       string // uuid, log-correlation only — never on the wire
	Conn     net.Conn
	Host     string
	Nick     string
	UserName string // set by USER; empty until then
	RealName string
	LastSeen time.Time

	Away string // empty means not away
	Modes map[byte]bool

	CapList           map[string]bool
	CapNegInProgress  bool
	MOTDSent          bool
	PongReceived      bool

	out *outboundQueue
}

// NewUser constructs a freshly-accepted, unregistered session.
func NewUser(conn net.Conn, host string) *User {
	return &User{
		id:       uuid.NewString(),
		Conn:     conn,
		Host:     host,
		Nick:     nilNick,
		Modes:    map[byte]bool{'i': true},
		CapList:  make(map[string]bool),
		out:      newOutboundQueue(),
		LastSeen: time.Now(),
	}
}

// ID is the log-correlation identifier (SPEC_FULL.md AMBIENT STACK / logging).
func (u *User) ID() string { return u.id }

// Registered reports whether the user has completed NICK+USER (but not
// necessarily CAP negotiation or the welcome sequence).
func (u *User) Registered() bool {
	return u.Nick != nilNick && u.UserName != ""
}

// Welcomed reports whether the registration gate (spec.md §4.3) is fully
// open: nick set, user message set, CAP negotiation finished.
func (u *User) Welcomed() bool {
	return u.Registered() && !u.CapNegInProgress
}

// UserMask renders the canonical nick!user@host source prefix.
func (u *User) UserMask() string {
	return fmt.Sprintf("%s!%s@%s", u.Nick, u.UserName, u.Host)
}

// IdleSeconds is the time since the user's last PRIVMSG (or since it
// connected, if it has sent none), used by
// WHOIS's 317 (RPL_WHOISIDLE) — a feature supplemented from
// original_source (SPEC_FULL.md).
func (u *User) IdleSeconds() int64 {
	return int64(time.Since(u.LastSeen).Seconds())
}

// Enqueue pushes a frame onto the user's outbound queue. Never blocks on
// I/O — safe to call while holding the registry lock.
func (u *User) Enqueue(payload, prefix string) {
	u.out.Push(msgFrame(payload, prefix))
}

// EnqueueQuit pushes the disconnect sentinel.
func (u *User) EnqueueQuit(reason string) {
	u.out.Push(quitFrame(reason))
}
