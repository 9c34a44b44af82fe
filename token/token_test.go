package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{IF, "if"},
		{ELSE, "else"},
		{FUNCTION, "function"},
		{NUMBER, "NUMBER"},
		{VARIABLE, "VARIABLE"},
		{SEMICOLON, ";"},
		{LEFT_PAREN, "("},
		{RIGHT_PAREN, ")"},
		{LEFT_BRACE, "{"},
		{RIGHT_BRACE, "}"},
		{EOF, "EOF"},
		{DOT_EQUAL, ".="},
		{EQUAL_EQUAL_EQUAL, "==="},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		ident    string
		expected Kind
	}{
		{"if", IF},
		{"elseif", ELSEIF},
		{"function", FUNCTION},
		{"echo", ECHO},
		{"foreach", FOREACH},
		{"as", AS},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"myFunc", IDENTIFIER},
		{"_underscore", IDENTIFIER},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LookupIdentifier(tt.ident), tt.ident)
	}
}

func TestIllegalKindStringDoesNotPanic(t *testing.T) {
	assert.Equal(t, "ILLEGAL", Kind(-1).String())
	assert.Equal(t, "ILLEGAL", Kind(9999).String())
}
