package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailSyntax(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last+tag@sub.example.co.uk",
		"user_123@example.io",
	}
	for _, email := range valid {
		require.True(t, EmailSyntax(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"ada@example",
		"ada example@example.com",
	}
	for _, email := range invalid {
		require.False(t, EmailSyntax(email), email)
	}
}

func TestDateSyntax(t *testing.T) {
	valid := []string{
		"1990-04-12",
		"02-01-2005",
		"April 12, 1990",
	}
	for _, date := range valid {
		require.True(t, DateSyntax(date), date)
	}

	invalid := []string{
		"",
		"not a date",
		"1234-01-01",
	}
	for _, date := range invalid {
		require.False(t, DateSyntax(date), date)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("1990-04-12")
	require.NoError(t, err)
	require.Equal(t, "1990-04-12T00:00:00Z", got)

	_, err = NormalizeDate("not a date")
	require.Error(t, err)
}

func TestNewAPIKey(t *testing.T) {
	first := NewAPIKey()
	second := NewAPIKey()
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)
}
