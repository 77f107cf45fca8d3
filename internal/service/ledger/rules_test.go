package ledger

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"text", "Cash", false},
		{"padded text", "  Cash ", false},
		{"empty is left to Required", "", false},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n", true},
		{"nil pointer", (*string)(nil), false},
		{"blank pointer", ptr(" "), true},
		{"text pointer", ptr("Bank"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, notBlank)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
