package irc

// MODE target [changespec [params...]]
//
// Grounded on original_source/server.py's process_channel_modes (for the
// "o" letter) generalized to the full letter set spec.md §4.4 names ("b",
// "o", "t"), and on the teacher's blanket "MODE unsupported" stub
// (irc/server.go / irc/commands.go), which this module actually implements.
func handleMode(s *Server, u *User, args []string) {
	if len(args) == 0 {
		errNotEnoughParams(s, u, "MODE")
		return
	}
	target := args[0]
	if len(target) > 0 && target[0] == '#' {
		processChannelMode(s, u, target, args[1:])
		return
	}
	processUserMode(s, u, target, args[1:])
}

// processUserMode implements spec.md §4.4's deliberate stand-in: only a
// user's own modes may be queried/modified; any other nick is reported as
// 403 (spec.md §9 Open Question notes 502 as the eventual correct code
// once user modes grow beyond "i").
func processUserMode(s *Server, u *User, target string, _ []string) {
	if target != u.Nick {
		errNoSuchChannel(s, u, target)
		return
	}
	// No user-mode mutation is specified beyond the default "i"; querying
	// one's own modes is accepted as a no-op.
}

func processChannelMode(s *Server, u *User, channelName string, rest []string) {
	ch := s.Registry.FindChannel(channelName)
	if ch == nil {
		errNoSuchChannel(s, u, channelName)
		return
	}
	if len(rest) == 0 {
		s.reply(u, RPL_CHANNELMODEIS, ch.Name, ch.ModeString())
		return
	}

	changeSpec := rest[0]
	params := rest[1:]
	if changeSpec == "" || (changeSpec[0] != '+' && changeSpec[0] != '-') {
		errUnknownMode(s, u, changeSpec)
		return
	}
	op := changeSpec[0]
	letters := changeSpec[1:]

	for i := 0; i < len(letters); i++ {
		letter := letters[i]
		if !s.Registry.ParamModes[letter] && !s.Registry.NoParamModes[letter] {
			errUnknownMode(s, u, string(letter))
			return
		}
	}

	// "MODE #chan +b" / "MODE #chan -b" with no further arguments lists
	// the ban list instead of treating the missing parameter as an error
	// (spec.md §4.4's "b (ban) with no parameter" case).
	if letters == "b" && len(params) == 0 {
		sendBanList(s, u, ch)
		return
	}

	paramIdx := 0
	for i := 0; i < len(letters); i++ {
		letter := letters[i]
		var param string
		if s.Registry.ParamModes[letter] {
			if paramIdx >= len(params) {
				errNotEnoughParams(s, u, "MODE")
				return
			}
			param = params[paramIdx]
			paramIdx++
		}

		switch letter {
		case 'o':
			applyOperatorMode(s, u, ch, op, param)
		case 'b':
			applyBanMode(s, u, ch, op, param)
		case 't':
			applyTopicLockMode(s, u, ch, op)
		}
	}
}

func applyOperatorMode(s *Server, u *User, ch *Channel, op byte, targetNick string) {
	if !ch.IsOperator(u) {
		errNoOperatorPrivileges(s, u, ch.Name)
		return
	}
	target := s.Registry.FindUser(targetNick)
	if target == nil || !ch.IsMember(target) {
		errUserNotInChannel(s, u, targetNick, ch.Name)
		return
	}

	switch op {
	case '+':
		if ch.IsOperator(target) {
			return
		}
		ch.Operators[target] = true
	case '-':
		if !ch.IsOperator(target) {
			return
		}
		delete(ch.Operators, target)
	}

	message := "MODE " + ch.Name + " " + string(op) + "o " + target.Nick
	for member := range ch.Members {
		member.Enqueue(message, u.UserMask())
	}
}

func applyBanMode(s *Server, u *User, ch *Channel, op byte, rawMask string) {
	if !ch.IsOperator(u) {
		errNoOperatorPrivileges(s, u, ch.Name)
		return
	}
	mask := CanonicalBanMask(rawMask)
	_, alreadyBanned := ch.BanList[mask]

	switch op {
	case '+':
		if alreadyBanned {
			return
		}
		ch.BanList[mask] = u.UserMask()
	case '-':
		if !alreadyBanned {
			return
		}
		delete(ch.BanList, mask)
	}

	message := "MODE " + ch.Name + " " + string(op) + "b " + mask
	for member := range ch.Members {
		member.Enqueue(message, u.UserMask())
	}
}

func applyTopicLockMode(s *Server, u *User, ch *Channel, op byte) {
	if !ch.IsOperator(u) {
		errNoOperatorPrivileges(s, u, ch.Name)
		return
	}
	want := op == '+'
	if ch.Modes['t'] == want {
		return
	}
	ch.Modes['t'] = want

	message := "MODE " + ch.Name + " " + string(op) + "t"
	for member := range ch.Members {
		member.Enqueue(message, u.UserMask())
	}
}

func sendBanList(s *Server, u *User, ch *Channel) {
	for mask, setter := range ch.BanList {
		s.reply(u, RPL_BANLIST, ch.Name, mask, setter)
	}
	s.reply(u, RPL_ENDOFBANLIST, ch.Name, "End of channel ban list")
}
