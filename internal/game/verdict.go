package game

import (
	"strconv"
	"strings"
)

// Verdict is the outcome of comparing a guess against the secret.
type Verdict int

const (
	// Less means the guess is below the secret.
	Less Verdict = iota - 1
	// Equal means the guess is the secret.
	Equal
	// Greater means the guess is above the secret.
	Greater
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Message returns the line printed to the player for this verdict.
func (v Verdict) Message() string {
	switch v {
	case Less:
		return MsgTooSmall
	case Greater:
		return MsgTooBig
	case Equal:
		return MsgWin
	default:
		return ""
	}
}

// Compare returns the three-way comparison of guess against secret.
func Compare(guess, secret uint32) Verdict {
	switch {
	case guess < secret:
		return Less
	case guess > secret:
		return Greater
	default:
		return Equal
	}
}

// ParseGuess trims surrounding whitespace, including the line terminator,
// and parses the rest as a base-10 unsigned 32-bit integer.
// A single leading '+' is accepted. Empty input, a minus sign, non-digits
// and overflow all report ok == false.
func ParseGuess(line string) (uint32, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, false
	}
	// ParseUint rejects any sign, so "++5" and "+-5" still fail here.
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
