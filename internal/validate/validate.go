package validate

import (
	"regexp"
	"strings"

	"lookdehoje/internal/domain"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates a resource identifier taken from a path parameter.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Status validates the piece status enum.
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == domain.StatusAvailable || s == domain.StatusRented
}

// Name validates a displayable name with the catalog's max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}
