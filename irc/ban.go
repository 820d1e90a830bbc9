package irc

import (
	"regexp"
	"strings"
)

// CanonicalBanMask normalises a ban target into nick!user@host form, filling
// any missing segment with "*". Grounded on
// original_source/server.py's Channel.check_if_banned and spec.md §4.5.
//
// canon(canon(x)) == canon(x): once a mask is in nick!user@host form, every
// segment is already present, so re-canonicalising is a no-op.
func CanonicalBanMask(target string) string {
	nick, rest, hasBang := strings.Cut(target, "!")
	user, host := "*", "*"

	if hasBang {
		u, h, hasAt := strings.Cut(rest, "@")
		if u != "" {
			user = u
		}
		if hasAt && h != "" {
			host = h
		}
	} else {
		// no "!": either "user@host" or "@host" or a bare nick.
		u, h, hasAt := strings.Cut(nick, "@")
		if hasAt {
			if u != "" {
				user = u
			}
			if h != "" {
				host = h
			}
			nick = "*"
		}
	}

	if nick == "" {
		nick = "*"
	}
	return nick + "!" + user + "@" + host
}

// MatchesBan reports whether a user mask (nick!user@host) matches a
// canonicalised ban mask, using shell-glob semantics ("*" any run, "?" one
// char) per spec.md §4.5.
func MatchesBan(userMask, banMask string) bool {
	expr := regexp.QuoteMeta(banMask)
	expr = strings.ReplaceAll(expr, `\*`, `.*`)
	expr = strings.ReplaceAll(expr, `\?`, `.`)
	ok, err := regexp.MatchString(`(?s)^`+expr+`$`, userMask)
	return err == nil && ok
}
