package irc

import (
	"regexp"
	"strings"
)

// nickPattern is copied verbatim from spec.md §6's nick grammar (full
// match, unlike the channel-name prefix-match quirk spec.md §9 says not to
// replicate).
var nickPattern = regexp.MustCompile(`^[a-zA-Z|\\_\[\]{}^` + "`" + `-][a-zA-Z0-9|\\_\[\]{}^` + "`" + `-]{0,15}$`)

func handleNick(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNoNicknameGiven(s, u)
		return
	}
	newNick := args[0]

	if !nickPattern.MatchString(newNick) {
		errErroneousNickname(s, u, newNick)
		return
	}
	if existing := s.Registry.FindUser(newNick); existing != nil && existing != u {
		errNicknameInUse(s, u, newNick)
		return
	}

	if u.Nick == nilNick {
		u.Nick = newNick
		s.Registry.AddUser(u)
		return
	}

	if strings.EqualFold(u.Nick, newNick) {
		// same nick, different case: spec.md §4.4 says this is silent.
		u.Nick = newNick
		s.Registry.RenameUser(strings.ToLower(newNick), u)
		return
	}

	oldMask := u.UserMask()
	oldNick := u.Nick
	u.Nick = newNick
	s.Registry.RenameUser(oldNick, u)

	peers := s.Registry.UsersSharingChannelsWith(u)
	for peer := range peers {
		peer.Enqueue("NICK :"+newNick, oldMask)
	}
	if u.Welcomed() {
		u.Enqueue("NICK :"+newNick, oldMask)
	}
}

func handleUser(s *Server, u *User, args []string) {
	if len(args) < 4 {
		errNotEnoughParams(s, u, "USER")
		return
	}
	u.UserName = args[0]
	u.RealName = args[len(args)-1]
}

func handlePing(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNoOrigin(s, u)
		return
	}
	u.Enqueue("PONG "+s.Registry.ServerName+" :"+args[0], s.Registry.ServerName)
}

func handlePong(s *Server, u *User, args []string) {
	if len(args) > 0 && args[0] == s.Registry.ServerName {
		u.PongReceived = true
		return
	}
	errNoOrigin(s, u)
}

func handleQuit(s *Server, u *User, args []string) {
	reason := "Client quit"
	if len(args) > 0 {
		reason = args[0]
	}
	u.EnqueueQuit(reason)
}
