package irc

import (
	"regexp"
	"strings"
)

// channelNamePattern is a full-match version of spec.md §6's channel-name
// grammar. spec.md §9 explicitly calls out the original's prefix-match
// quirk (re.match instead of a full match) and says not to replicate it;
// this anchors both ends.
var channelNamePattern = regexp.MustCompile(`^#[^ \x07,]{1,49}$`)

func handleJoin(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNotEnoughParams(s, u, "JOIN")
		return
	}
	channelName := args[0]

	if !channelNamePattern.MatchString(channelName) {
		errNoSuchChannel(s, u, channelName)
		return
	}

	ch := s.Registry.FindChannel(channelName)
	if ch == nil {
		ch = NewChannel(channelName, u)
		s.Registry.AddChannel(ch)
	} else {
		if ch.IsBanned(u.UserMask()) {
			errBannedFromChan(s, u, channelName)
			return
		}
		if ch.IsMember(u) {
			return
		}
		ch.Members[u] = true
	}

	for member := range ch.Members {
		member.Enqueue("JOIN "+ch.Name, u.UserMask())
	}

	sendTopic(s, u, ch)

	names := namesReplyLine(ch)
	u.Enqueue(RPL_NAMREPLY+" "+u.Nick+" = "+ch.Name+" :"+names, s.Registry.ServerName)
	u.Enqueue(RPL_ENDOFNAMES+" "+u.Nick+" "+ch.Name+" :End of /NAMES list.", s.Registry.ServerName)

	if u.Away != "" {
		notifyAway(s, ch, u)
	}
}

func namesReplyLine(ch *Channel) string {
	var names []string
	for m := range ch.Members {
		if ch.IsOperator(m) {
			names = append(names, "@"+m.Nick)
		} else {
			names = append(names, m.Nick)
		}
	}
	return strings.Join(names, " ")
}

func sendTopic(s *Server, u *User, ch *Channel) {
	if ch.Topic == "" {
		return
	}
	u.Enqueue(RPL_TOPIC+" "+u.Nick+" "+ch.Name+" :"+ch.Topic, s.Registry.ServerName)
	u.Enqueue(RPL_TOPICWHOTIME+" "+u.Nick+" "+ch.Name+" "+ch.TopicWho, s.Registry.ServerName)
}

func notifyAway(s *Server, ch *Channel, u *User) {
	for member := range ch.Members {
		if member != u && member.CapList["away-notify"] {
			member.Enqueue("AWAY :"+u.Away, u.UserMask())
		}
	}
}

func handlePart(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNotEnoughParams(s, u, "PART")
		return
	}
	channelName := args[0]
	ch := s.Registry.FindChannel(channelName)
	if ch == nil {
		errNoSuchChannel(s, u, channelName)
		return
	}
	if !ch.IsMember(u) {
		errNotOnChannel(s, u, channelName)
		return
	}

	delete(ch.Operators, u)
	for member := range ch.Members {
		member.Enqueue("PART "+ch.Name, u.UserMask())
	}
	delete(ch.Members, u)
	if len(ch.Members) == 0 {
		s.Registry.RemoveChannel(ch.Name)
	}
}

func handleTopic(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNotEnoughParams(s, u, "TOPIC")
		return
	}
	channelName := args[0]
	ch := s.Registry.FindChannel(channelName)
	if ch == nil {
		errNoSuchChannel(s, u, channelName)
		return
	}

	if len(args) == 1 {
		if ch.Topic == "" {
			s.reply(u, RPL_NOTOPIC, ch.Name, "No topic is set.")
		} else {
			sendTopic(s, u, ch)
		}
		return
	}

	if ch.Modes['t'] && !ch.IsOperator(u) {
		errNoOperatorPrivileges(s, u, ch.Name)
		return
	}

	text := args[1]
	ch.SetTopic(u, text)
	for member := range ch.Members {
		member.Enqueue("TOPIC "+ch.Name+" :"+text, u.UserMask())
	}
}

func handleKick(s *Server, u *User, args []string) {
	if len(args) < 2 {
		errNotEnoughParams(s, u, "KICK")
		return
	}
	channelName, targetNick := args[0], args[1]

	ch := s.Registry.FindChannel(channelName)
	if ch == nil {
		errNoSuchChannel(s, u, channelName)
		return
	}
	target := s.Registry.FindUser(targetNick)
	if target == nil {
		errNoSuchNick(s, u, targetNick)
		return
	}
	if !ch.IsOperator(u) {
		errNoOperatorPrivileges(s, u, ch.Name)
		return
	}
	if !ch.IsMember(target) {
		errUserNotInChannel(s, u, target.Nick, ch.Name)
		return
	}

	reason := target.Nick
	if len(args) >= 3 {
		reason = args[2]
	}
	message := "KICK " + ch.Name + " " + target.Nick + " :" + reason
	for member := range ch.Members {
		member.Enqueue(message, u.UserMask())
	}

	delete(ch.Members, target)
	delete(ch.Operators, target)
	if len(ch.Members) == 0 {
		s.Registry.RemoveChannel(ch.Name)
	}
}
