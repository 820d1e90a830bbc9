package irc

import "time"

func handlePrivmsg(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNoRecipient(s, u, "PRIVMSG")
		return
	}
	if len(args) == 1 {
		errNoTextToSend(s, u)
		return
	}
	target, text := args[0], args[1]
	u.LastSeen = time.Now()

	if len(target) > 0 && target[0] == '#' {
		ch := s.Registry.FindChannel(target)
		if ch == nil {
			errNoSuchChannel(s, u, target)
			return
		}
		if !ch.IsMember(u) {
			errNotOnChannel(s, u, target)
			return
		}
		if ch.IsBanned(u.UserMask()) {
			errCannotSendToChan(s, u, target)
			return
		}
		for member := range ch.Members {
			if member != u {
				member.Enqueue("PRIVMSG "+target+" :"+text, u.UserMask())
			}
		}
		return
	}

	recipient := s.Registry.FindUser(target)
	if recipient == nil {
		errNoSuchNick(s, u, target)
		return
	}
	recipient.Enqueue("PRIVMSG "+target+" :"+text, u.UserMask())
	if recipient.Away != "" {
		s.reply(u, RPL_AWAY, recipient.Nick, recipient.Away)
	}
}

func handleAway(s *Server, u *User, args []string) {
	if len(args) > 0 && args[0] != "" {
		u.Away = args[0]
		s.reply(u, RPL_NOWAWAY, "You have been marked as being away")
	} else {
		u.Away = ""
		s.reply(u, RPL_UNAWAY, "You are no longer marked as being away")
	}

	for peer := range s.Registry.UsersSharingChannelsWith(u) {
		if peer.CapList["away-notify"] {
			peer.Enqueue("AWAY :"+u.Away, u.UserMask())
		}
	}
}
