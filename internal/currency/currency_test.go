package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"JPY", "¥"},
		{"XYZ", "XYZ "},
		{"", " "},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Symbol(tt.code))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.50", Format(12.5, "USD"))
	assert.Equal(t, "XYZ 3.00", Format(3, "XYZ"))
}
