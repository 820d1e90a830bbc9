package irc

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// lineReader frames a byte stream into lines, accepting either "\r\n" or a
// lone "\n" as the terminator (client's choice — spec.md §4.1). It wraps
// bufio.Reader so partial reads are carried across calls instead of the
// teacher's/original's "accumulate until newline, reset buffer" approach;
// the wire behavior (either terminator accepted, nothing truncated) is the
// same either way.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// ReadLine returns the next decoded line with its terminator stripped, or
// an error (including io.EOF) if the connection ended or failed.
func (lr *lineReader) ReadLine() (string, error) {
	raw, err := lr.br.ReadBytes('\n')
	if len(raw) == 0 {
		return "", err
	}
	line := DecodeLatin1(raw)
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF {
		// a final, unterminated line: still deliver it, the next call
		// will return io.EOF with no bytes.
		return line, nil
	}
	return line, nil
}

// ParseLine splits one line into (command, params), per spec.md §4.1: the
// first whitespace-delimited token starting with ':' opens the trailing
// parameter, which is the remainder of the line (that token and everything
// after it, joined by single spaces) with its leading ':' stripped. Tokens
// before it are individual parameters. The very first token is ordinarily
// the command; if the line begins with the trailing marker itself (no
// parseable command), the trailing text becomes the "command" and there are
// no params, matching the reference implementation's literal behavior.
func ParseLine(line string) (command string, params []string) {
	tokens := strings.Split(line, " ")
	for i, tok := range tokens {
		if strings.HasPrefix(tok, ":") {
			trailing := strings.TrimPrefix(strings.Join(tokens[i:], " "), ":")
			parsed := make([]string, 0, i+1)
			parsed = append(parsed, tokens[:i]...)
			parsed = append(parsed, trailing)
			return parsed[0], parsed[1:]
		}
	}
	return tokens[0], tokens[1:]
}

// DecodeLatin1 converts raw wire bytes into a Go string where each input
// byte becomes exactly one rune of the same value. Latin-1 is a fixed-width
// 8-bit mapping with no invalid sequences, so this never fails and
// round-trips arbitrary byte sequences, including invalid UTF-8 payloads
// (spec.md §4.1, tested property in §8).
func DecodeLatin1(b []byte) string {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// EncodeLatin1 is the inverse of DecodeLatin1, used when framing an
// outbound line back onto the wire.
func EncodeLatin1(s string) []byte {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// frameLine renders a payload with its optional source prefix into the
// wire's ":prefix payload\r\n" form (":payload\r\n" when prefix is empty),
// latin-1 encoded.
func frameLine(payload, prefix string) []byte {
	var b strings.Builder
	b.WriteByte(':')
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte(' ')
	}
	b.WriteString(payload)
	b.WriteString("\r\n")
	return EncodeLatin1(b.String())
}
