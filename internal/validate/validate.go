package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 ._'\\-]{1,50}$`)
	reSKU   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// SKU validates a catalog identifier.
func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSKU.MatchString(s)
}

// Qty parses a quantity string, clamping into [1, 999].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 999 {
		return 999
	}
	return n
}

// Rating parses a star value and reports whether it is in 1..5.
func Rating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, n >= 1 && n <= 5
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// Subject validates a contact subject line.
func Subject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 180 {
		return "", false
	}
	return s, true
}

// MessageBody validates a contact message body.
func MessageBody(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 4000 {
		return "", false
	}
	return s, true
}
