package irc

import (
	"strconv"
	"strings"
)

// handleCap implements the IRCv3 capability negotiation subset spec.md
// §4.4/§6 calls for: LS, LIST, REQ, END. Grounded on the teacher's CAP
// stub (irc/server.go's "case \"CAP\": s.reply(user, \"CAP\", \"LS\")"),
// generalized to the full LS/REQ/ACK/NAK/END exchange since
// original_source never implemented CAP beyond the cap_list/
// capneg_in_progress bookkeeping fields on UserConnection.
func handleCap(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNotEnoughParams(s, u, "CAP")
		return
	}

	sub := strings.ToUpper(args[0])
	switch sub {
	case "LS":
		u.CapNegInProgress = true
		if len(args) >= 2 {
			if ver, err := strconv.Atoi(args[1]); err == nil && ver >= 302 {
				u.CapList["cap-notify"] = true
			}
		}
		u.Enqueue("CAP "+nickOrStar(u)+" LS :"+strings.Join(ServerCaps, " "), s.Registry.ServerName)

	case "LIST":
		u.Enqueue("CAP "+nickOrStar(u)+" LIST :"+joinCapList(u), s.Registry.ServerName)

	case "REQ":
		if len(args) < 2 {
			errNotEnoughParams(s, u, "CAP")
			return
		}
		requested := strings.Fields(args[1])
		if allCapsSupported(requested) {
			for _, cap := range requested {
				u.CapList[cap] = true
			}
			u.Enqueue("CAP "+nickOrStar(u)+" ACK :"+strings.Join(requested, " "), s.Registry.ServerName)
		} else {
			u.Enqueue("CAP "+nickOrStar(u)+" NAK :"+strings.Join(requested, " "), s.Registry.ServerName)
		}

	case "END":
		u.CapNegInProgress = false
		maybeWelcome(s, u)

	default:
		errUnknownCommand(s, u, "CAP "+sub)
	}
}

func nickOrStar(u *User) string {
	if u.Nick == nilNick {
		return nilNick
	}
	return u.Nick
}

func joinCapList(u *User) string {
	var caps []string
	for cap := range u.CapList {
		caps = append(caps, cap)
	}
	return strings.Join(caps, " ")
}

func allCapsSupported(requested []string) bool {
	supported := make(map[string]bool, len(ServerCaps))
	for _, cap := range ServerCaps {
		supported[cap] = true
	}
	for _, cap := range requested {
		if !supported[cap] {
			return false
		}
	}
	return true
}
