package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Plain ASCII", "Plain ASCII"},
		{"Olá, coração", "Olá, coração"},
		{"line\nbreak\ttab", "line break tab"},
		{"bell\x07", "bell"},
		{"“quoted” — dash…", "\"quoted\" - dash..."},
		{"Dvořák", "Dvorák"},
		{"emoji 😀 gone", "emoji  gone"},
		{"a b", "a b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitizePreformatted(t *testing.T) {
	assert.Equal(t, "a\n    b\nc", SanitizePreformatted("a\r\n\tb\nc"))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "caf\xe9", Encode("café"))
	assert.Equal(t, "\x95", Encode("•"))
	assert.Equal(t, "plain", Encode("plain"))
}
