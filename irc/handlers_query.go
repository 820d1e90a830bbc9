package irc

import "strconv"

// handleWho implements WHO, a feature the distilled spec supplements from
// the teacher's listUsers (irc/server.go) and SPEC_FULL.md's note on user
// mode "i" (invisible): a server-wide "WHO *" skips invisible users who
// share no channel with the requester; "WHO #chan" and "WHO <nick>" list
// them regardless.
func handleWho(s *Server, u *User, args []string) {
	mask := "*"
	if len(args) > 0 {
		mask = args[0]
	}

	switch {
	case len(mask) > 0 && mask[0] == '#':
		if ch := s.Registry.FindChannel(mask); ch != nil {
			for member := range ch.Members {
				sendWhoReply(s, u, ch.Name, member)
			}
		}
	case mask == "*":
		for _, peer := range s.Registry.Users() {
			if peer.Modes['i'] && peer != u && !sharesChannelWith(s, u, peer) {
				continue
			}
			sendWhoReply(s, u, "*", peer)
		}
	default:
		if peer := s.Registry.FindUser(mask); peer != nil {
			sendWhoReply(s, u, "*", peer)
		}
	}

	s.reply(u, RPL_ENDOFWHO, mask, "End of /WHO list.")
}

func sendWhoReply(s *Server, u *User, channel string, peer *User) {
	status := "H"
	if peer.Away != "" {
		status = "G"
	}
	s.reply(u, RPL_WHOREPLY, channel, peer.UserName, peer.Host, s.Registry.ServerName, peer.Nick, status, "0 "+peer.RealName)
}

func sharesChannelWith(s *Server, a, b *User) bool {
	return len(s.Registry.SharedChannels(a, b)) > 0
}

// handleWhois implements WHOIS (311/312/317/318), supplemented from
// original_source (SPEC_FULL.md) since the teacher has no WHOIS at all.
func handleWhois(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNoNicknameGiven(s, u)
		return
	}
	target := s.Registry.FindUser(args[0])
	if target == nil {
		errNoSuchNick(s, u, args[0])
		return
	}

	s.reply(u, RPL_WHOISUSER, target.Nick, target.UserName, target.Host, "*", target.RealName)
	s.reply(u, RPL_WHOISSERVER, target.Nick, s.Registry.ServerName, "mantatail IRC server")
	if target.Away != "" {
		s.reply(u, RPL_AWAY, target.Nick, target.Away)
	}
	s.reply(u, RPL_WHOISIDLE, target.Nick, strconv.FormatInt(target.IdleSeconds(), 10), "seconds idle")
	s.reply(u, RPL_ENDOFWHOIS, target.Nick, "End of /WHOIS list.")
}

// handleList implements LIST (321/322/323), grounded on the teacher's
// listChannels (irc/server.go).
func handleList(s *Server, u *User, _ []string) {
	s.reply(u, RPL_LISTSTART, "Channel", "Users Name")
	for _, ch := range s.Registry.Channels() {
		s.reply(u, RPL_LIST, ch.Name, strconv.Itoa(len(ch.Members)), ch.Topic)
	}
	s.reply(u, RPL_LISTEND, "End of /LIST")
}
