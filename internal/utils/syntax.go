package utils

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)

// maxAgeYears bounds how far back a birthday may lie.
const maxAgeYears = 112

// EmailSyntax reports whether content looks like an email address.
func EmailSyntax(content string) bool {
	return emailPattern.MatchString(content)
}

// DateSyntax reports whether content parses as a date within the accepted
// year range. Any common date layout is accepted.
func DateSyntax(content string) bool {
	date, err := dateparse.ParseAny(content)
	if err != nil {
		return false
	}
	return time.Now().Year()-date.Year() <= maxAgeYears
}

// NormalizeDate parses content as a date and renders it in ISO-8601.
func NormalizeDate(content string) (string, error) {
	date, err := dateparse.ParseAny(content)
	if err != nil {
		return "", err
	}
	return date.Format(time.RFC3339), nil
}
