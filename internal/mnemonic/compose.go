package mnemonic

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Level selects how a credential is composed.
type Level string

const (
	LevelPIN      Level = "pin"
	LevelStandard Level = "standard"
	LevelMaster   Level = "master"
)

var ErrUnknownLevel = errors.New("unknown credential level")

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelPIN, LevelStandard, LevelMaster:
		return l, nil
	}
	return "", ErrUnknownLevel
}

// Compose builds a credential from core digits and a service name.
//
//	pin:      digits
//	standard: Capitalize(service) + digits + symbol
//	master:   Alternate(service) + symbol + digits
//
// Levels other than standard and master compose as pin. The length of
// digits is not checked.
func Compose(level Level, digits, service, symbol string) string {
	switch level {
	case LevelStandard:
		return Capitalize(service) + digits + symbol
	case LevelMaster:
		return Alternate(service) + symbol + digits
	default:
		return digits
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Capitalize removes whitespace and upper-cases the first character,
// leaving the rest as given.
func Capitalize(s string) string {
	s = stripSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Alternate removes whitespace, then upper-cases characters at even
// positions and lower-cases those at odd positions.
func Alternate(s string) string {
	var b strings.Builder
	i := 0
	for _, r := range stripSpace(s) {
		if i%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i++
	}
	return b.String()
}
