package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reZIP     = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	reEmail   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reSession = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func ZIP(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reZIP.MatchString(s)
}

// SessionID accepts any opaque client token of sane shape (uuids included).
func SessionID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reSession.MatchString(s)
}

// Qty clamps an add-to-cart quantity into [1,50].
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// ID parses a positive integer path parameter.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

// Name validates a displayable customer name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Q trims and bounds a catalog search query.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
