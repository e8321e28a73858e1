package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUserIDLength = 64

type validatedRequest struct {
	UserID string `validate:"required,max=64,excludesall=\x00\n\r\t"`
	Sport  string `validate:"sport"`
}

func TestValidator_SportValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		sport   string
		wantErr bool
	}{
		{"valid nfl", "nfl", false},
		{"valid nba", "nba", false},
		{"valid mlb", "mlb", false},
		{"valid nhl", "nhl", false},

		// Empty passes; required is a separate tag
		{"empty sport allowed", "", false},

		// Case insensitive
		{"uppercase sport", "NFL", false},
		{"mixed case sport", "Nhl", false},

		{"unknown league", "cricket", true},
		{"typo", "nlf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validatedRequest{
				UserID: "user-1",
				Sport:  tt.sport,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UserIDValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{"valid id", "user-1", false},
		{"uuid style", "d2f1c9a0-9f63-4a1e-b7a7-1f2b3c4d5e6f", false},

		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", maxUserIDLength), false},
		{"over max length", strings.Repeat("a", maxUserIDLength+1), true},

		{"empty id", "", true},
		{"with newline", "user\n1", true},
		{"with tab", "user\t1", true},
		{"with null byte", "user\x001", true},
		{"with carriage return", "user\r1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validatedRequest{
				UserID: tt.userID,
				Sport:  "nfl",
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("every failing field gets its own message", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{UserID: "", Sport: "cricket"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["userid"])
		assert.Equal(t, ErrMsgInvalidSportError, fields["sport"])
	})

	t.Run("non-validator error gets a generic message", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil error formats to nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
