package irc

import "fmt"

// Error emitter: constructs and enqueues numeric error replies to a user.
// Grounded on original_source/mantatail/errors.py, translated one-for-one
// onto reply(user, ...) the way the teacher's s.reply does.

func (s *Server) reply(u *User, code string, rest ...string) {
	args := append([]string{code, u.Nick}, rest...)
	s.replyRaw(u, args)
}

// replyRaw joins args with spaces, treating the last argument as the
// trailing parameter (prefixed with ":") the way every numeric reply in
// this protocol works, and enqueues it from the server.
func (s *Server) replyRaw(u *User, args []string) {
	if len(args) == 0 {
		return
	}
	msg := args[0]
	for i, a := range args[1:] {
		if i == len(args)-2 {
			msg += " :" + a
		} else {
			msg += " " + a
		}
	}
	u.Enqueue(msg, s.Registry.ServerName)
}

func errNotEnoughParams(s *Server, u *User, command string) {
	s.reply(u, ERR_NEEDMOREPARAMS, command, "Not enough parameters")
}

func errNotRegistered(s *Server, u *User) {
	u.Enqueue(fmt.Sprintf("%s * :You have not registered", ERR_NOTREGISTERED), s.Registry.ServerName)
}

func errNoMOTD(s *Server, u *User) {
	s.reply(u, ERR_NOMOTD, "MOTD File is missing")
}

func errErroneousNickname(s *Server, u *User, nick string) {
	u.Enqueue(fmt.Sprintf("%s %s %s :Erroneous nickname", ERR_ERRONEUSNICKNAME, nickOrStar(u), nick), s.Registry.ServerName)
}

func errNicknameInUse(s *Server, u *User, nick string) {
	s.reply(u, ERR_NICKNAMEINUSE, nick, "Nickname is already in use")
}

func errNoNicknameGiven(s *Server, u *User) {
	u.Enqueue(fmt.Sprintf("%s %s :No nickname given", ERR_NONICKNAMEGIVEN, nickOrStar(u)), s.Registry.ServerName)
}

func errNoSuchNick(s *Server, u *User, target string) {
	s.reply(u, ERR_NOSUCHNICK, target, "No such nick/channel")
}

func errNoSuchChannel(s *Server, u *User, channel string) {
	s.reply(u, ERR_NOSUCHCHANNEL, channel, "No such channel")
}

func errNotOnChannel(s *Server, u *User, channel string) {
	s.reply(u, ERR_NOTONCHANNEL, channel, "You're not on that channel")
}

func errUserNotInChannel(s *Server, u *User, targetNick, channel string) {
	s.reply(u, ERR_USERNOTINCHANNEL, targetNick, channel, "They aren't on that channel")
}

func errCannotSendToChan(s *Server, u *User, channel string) {
	s.reply(u, ERR_CANNOTSENDTOCHAN, channel, "Cannot send to nick/channel")
}

func errBannedFromChan(s *Server, u *User, channel string) {
	s.reply(u, ERR_BANNEDFROMCHAN, channel, "Cannot join channel (+b) - you are banned")
}

func errNoOperatorPrivileges(s *Server, u *User, channel string) {
	s.reply(u, ERR_CHANOPRIVSNEEDED, channel, "You're not channel operator")
}

func errNoRecipient(s *Server, u *User, command string) {
	u.Enqueue(fmt.Sprintf("%s %s :No recipient given (%s)", ERR_NORECIPIENT, u.Nick, command), s.Registry.ServerName)
}

func errNoTextToSend(s *Server, u *User) {
	s.reply(u, ERR_NOTEXTTOSEND, "No text to send")
}

func errUnknownMode(s *Server, u *User, mode string) {
	s.reply(u, ERR_UNKNOWNMODE, mode, "is an unknown mode char to me")
}

func errNoOrigin(s *Server, u *User) {
	s.reply(u, ERR_NOORIGIN, "No origin specified")
}

func errUnknownCommand(s *Server, u *User, command string) {
	s.reply(u, ERR_UNKNOWNCOMMAND, command, "Unknown command")
}
