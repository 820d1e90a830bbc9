package irc

import "strings"

// handlerFunc is one command handler. It runs with the registry lock held
// (spec.md §4.3) and must never block on I/O beyond enqueuing frames.
type handlerFunc func(s *Server, u *User, args []string)

// commandTable maps an upper-cased verb to its handler. Grounded on the
// teacher's cmdSet (irc/commands.go), expanded to the full verb set
// spec.md §6 lists plus the WHOIS/LIST additions from SPEC_FULL.md.
var commandTable = map[string]handlerFunc{
	"NICK":    handleNick,
	"USER":    handleUser,
	"CAP":     handleCap,
	"PING":    handlePing,
	"PONG":    handlePong,
	"QUIT":    handleQuit,
	"JOIN":    handleJoin,
	"PART":    handlePart,
	"PRIVMSG": handlePrivmsg,
	"MODE":    handleMode,
	"KICK":    handleKick,
	"TOPIC":   handleTopic,
	"AWAY":    handleAway,
	"WHO":     handleWho,
	"WHOIS":   handleWhois,
	"LIST":    handleList,
}

// preRegistrationCommands is the subset of verbs accepted before the
// registration gate opens (spec.md §4.3, §9's NEW/GOT_* state machine).
var preRegistrationCommands = map[string]bool{
	"USER": true,
	"NICK": true,
	"PONG": true,
	"CAP":  true,
	"QUIT": true,
}

// Dispatch looks up and runs the handler for command, or emits
// ERR_UNKNOWNCOMMAND. Caller must hold the registry lock.
func Dispatch(s *Server, u *User, command string, args []string) {
	handler, ok := commandTable[strings.ToUpper(command)]
	if !ok {
		errUnknownCommand(s, u, command)
		return
	}
	handler(s, u, args)
}
