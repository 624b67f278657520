package validator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

func TestParseID(t *testing.T) {
	valid := uuid.New()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"canonical", valid.String(), false},
		{"upper case", "A8098C1A-F86E-11DA-BD1A-00112444BE1E", false},
		{"empty", "", true},
		{"garbage", "not-a-uuid", true},
		{"no hyphens", "a8098c1af86e11dabd1a00112444be1e", true},
		{"braces", "{a8098c1a-f86e-11da-bd1a-00112444be1e}", true},
		{"urn", "urn:uuid:a8098c1a-f86e-11da-bd1a-00112444be1e", true},
		{"bad hex", "g8098c1a-f86e-11da-bd1a-00112444be1e", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.raw)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerror.ErrInvalidIdentifierFormat))
			assert.Equal(t, "Invalid UUID format: "+tt.raw, err.Error())
		})
	}
}

func TestParseOptionalID(t *testing.T) {
	id, err := ParseOptionalID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = ParseOptionalID("abc")
	assert.ErrorIs(t, err, domainerror.ErrInvalidIdentifierFormat)
}

func TestHasConflict(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name      string
		candidate uuid.UUID
		matches   []uuid.UUID
		want      bool
	}{
		{"create without matches", uuid.Nil, nil, false},
		{"create with a match", uuid.Nil, []uuid.UUID{other}, true},
		{"update matching itself", self, []uuid.UUID{self}, false},
		{"update matching another record", self, []uuid.UUID{other}, true},
		{"update matching itself and another record", self, []uuid.UUID{self, other}, true},
		{"update without matches", self, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.candidate, tt.matches...))
		})
	}
}
