package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Punctuated", "662.815.870-57", true},
		{"Raw digits", "66281587057", true},
		{"Another valid", "529.982.247-25", true},
		{"Check digit zero", "123.456.789-09", true},
		{"Surrounding spaces", "  52998224725 ", true},
		{"Wrong first check digit", "662.815.870-67", false},
		{"Wrong second check digit", "66281587058", false},
		{"Repeated digits", "111.111.111-11", false},
		{"All zeros", "00000000000", false},
		{"Too short", "6628158705", false},
		{"Misplaced punctuation", "662-815-870.57", false},
		{"Letters", "66281587a57", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidCPF(tt.input))
		})
	}
}

func TestNormalizeAndFormatCPF(t *testing.T) {
	digits, ok := NormalizeCPF("662.815.870-57")
	assert.True(t, ok)
	assert.Equal(t, "66281587057", digits)

	assert.Equal(t, "662.815.870-57", FormatCPF(digits))
	assert.Equal(t, "123", FormatCPF("123"))

	_, ok = NormalizeCPF("662.815.870/57")
	assert.False(t, ok)
}
