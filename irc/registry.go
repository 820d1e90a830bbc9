package irc

import (
	"strings"
	"sync"
)

// ISupport is the fixed 005 token set spec.md §6 requires.
const ISupport = "NICKLEN=16 PREFIX=(o)@ CHANTYPES=# TARGMAX=PRIVMSG:1,JOIN:1,PART:1,KICK:1"

// ServerCaps are the IRCv3 capability tokens this server advertises in
// CAP LS (spec.md §4.4, §6).
var ServerCaps = []string{"away-notify", "cap-notify"}

// Registry is the single shared authority: the process-wide map of
// channels and users, serialized by one coarse mutex (spec.md §3, §5).
// Grounded on the teacher's Server (irc/server.go) and
// original_source/server.py's State class.
type Registry struct {
	mu sync.Mutex

	channels map[string]*Channel // keyed case-folded
	users    map[string]*User    // keyed case-folded nick

	// ParamModes/NoParamModes partition the supported channel mode
	// letters by whether MODE must consume a parameter for them
	// (spec.md §3 supported_modes).
	ParamModes   map[byte]bool // "b", "o"
	NoParamModes map[byte]bool // "t"

	ServerName string
	MOTDLines  []string // nil means "no MOTD loaded"
}

// NewRegistry builds an empty registry for the given server name.
func NewRegistry(serverName string) *Registry {
	return &Registry{
		channels:     make(map[string]*Channel),
		users:        make(map[string]*User),
		ParamModes:   map[byte]bool{'b': true, 'o': true},
		NoParamModes: map[byte]bool{'t': true},
		ServerName:   serverName,
	}
}

// Lock/Unlock expose the coarse lock directly to the session dispatcher,
// which holds it for the duration of one handler call (spec.md §4.3, §5).
func (r *Registry) Lock()   { r.mu.Lock() }
func (r *Registry) Unlock() { r.mu.Unlock() }

// FindUser looks up a user by nick, case-folded. Caller must hold the lock.
func (r *Registry) FindUser(nick string) *User {
	return r.users[strings.ToLower(nick)]
}

// FindChannel looks up a channel by name, case-folded. Caller must hold the lock.
func (r *Registry) FindChannel(name string) *Channel {
	return r.channels[strings.ToLower(name)]
}

// AddUser registers a user under its current nick. Caller must hold the lock.
func (r *Registry) AddUser(u *User) {
	r.users[strings.ToLower(u.Nick)] = u
}

// RenameUser re-keys a registered user from oldNick to its current Nick.
// Caller must hold the lock.
func (r *Registry) RenameUser(oldNick string, u *User) {
	delete(r.users, strings.ToLower(oldNick))
	r.users[strings.ToLower(u.Nick)] = u
}

// RemoveUser drops a user from the registry (not from channels — callers
// remove channel membership separately). Caller must hold the lock.
func (r *Registry) RemoveUser(nick string) {
	delete(r.users, strings.ToLower(nick))
}

// AddChannel inserts a freshly created channel. Caller must hold the lock.
func (r *Registry) AddChannel(ch *Channel) {
	r.channels[strings.ToLower(ch.Name)] = ch
}

// RemoveChannel destroys a channel (it must already be empty). Caller must
// hold the lock.
func (r *Registry) RemoveChannel(name string) {
	delete(r.channels, strings.ToLower(name))
}

// Channels returns a snapshot slice of all channels. Caller must hold the lock.
func (r *Registry) Channels() []*Channel {
	out := make([]*Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		out = append(out, ch)
	}
	return out
}

// Users returns a snapshot slice of all registered users. Caller must hold the lock.
func (r *Registry) Users() []*User {
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out
}

// SharedChannels returns every channel both users are members of. Caller
// must hold the lock.
func (r *Registry) SharedChannels(a, b *User) []*Channel {
	var shared []*Channel
	for _, ch := range r.channels {
		if ch.IsMember(a) && ch.IsMember(b) {
			shared = append(shared, ch)
		}
	}
	return shared
}

// UsersSharingChannelsWith returns the set of users (excluding self) who
// share at least one channel with u. Caller must hold the lock.
func (r *Registry) UsersSharingChannelsWith(u *User) map[*User]bool {
	out := make(map[*User]bool)
	for _, ch := range r.channels {
		if !ch.IsMember(u) {
			continue
		}
		for member := range ch.Members {
			if member != u {
				out[member] = true
			}
		}
	}
	return out
}
