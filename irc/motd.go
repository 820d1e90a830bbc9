package irc

import "strings"

// MantatailVersion mirrors the original implementation's version string
// (original_source/server.py MANTATAIL_VERSION), reported in 002/004.
const MantatailVersion = "0.1.0"

// preRegistrationState reports whether u is still in the registration gate
// (spec.md §4.3): nick unset, user message unset, or the welcome sequence
// not yet sent.
func preRegistrationState(u *User) bool {
	return u.Nick == nilNick || u.UserName == "" || !u.MOTDSent
}

// maybeWelcome fires the welcome + MOTD block exactly once, once nick, user
// message, and CAP negotiation are all settled (spec.md §4.3). Called after
// every pre-registration command by the dispatcher in session.go.
func maybeWelcome(s *Server, u *User) {
	if u.Nick != nilNick && u.UserName != "" && !u.CapNegInProgress && !u.MOTDSent {
		sendWelcome(s, u)
	}
}

// sendWelcome emits the 001-005 welcome block, then the MOTD block
// (375/372.../422/376). Grounded on the teacher's acceptUser/motd
// (irc/server.go) and original_source/server.py's UserConnection.on_registration.
func sendWelcome(s *Server, u *User) {
	name := s.Registry.ServerName

	u.Enqueue(RPL_WELCOME+" "+u.Nick+" :Welcome to the Internet Relay Network "+u.UserMask(), name)
	u.Enqueue(RPL_YOURHOST+" "+u.Nick+" :Your host is "+name+", running version "+MantatailVersion, name)
	u.Enqueue(RPL_CREATED+" "+u.Nick+" :This server was created "+s.started, name)
	u.Enqueue(RPL_MYINFO+" "+u.Nick+" "+name+" "+MantatailVersion+" i to", name)
	u.Enqueue(RPL_ISUPPORT+" "+u.Nick+" "+ISupport+" :are supported by this server", name)

	sendMOTD(s, u)
	u.MOTDSent = true
}

func sendMOTD(s *Server, u *User) {
	name := s.Registry.ServerName
	u.Enqueue(RPL_MOTDSTART+" "+u.Nick+" :- "+name+" Message of the Day", name)

	if s.Registry.MOTDLines == nil {
		errNoMOTD(s, u)
	} else {
		for _, line := range s.Registry.MOTDLines {
			line = strings.ReplaceAll(line, "{user_nick}", u.Nick)
			u.Enqueue(RPL_MOTD+" "+u.Nick+" :"+line, name)
		}
	}
	u.Enqueue(RPL_ENDOFMOTD+" "+u.Nick+" :End of /MOTD command", name)
}
