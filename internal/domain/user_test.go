package domain_test

import (
	"encoding/hex"
	"testing"

	"delivery_orders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIToken(t *testing.T) {
	t.Run("fixed length hex", func(t *testing.T) {
		u := domain.User{Name: "Alice", Email: "a@x.com"}

		token, err := u.GenerateAPIToken(32)
		require.NoError(t, err)

		assert.Len(t, token, 64)
		assert.Equal(t, token, u.APIToken)
		_, err = hex.DecodeString(token)
		assert.NoError(t, err)
	})

	t.Run("no collisions", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			var u domain.User
			token, err := u.GenerateAPIToken(32)
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup, "token generated twice")
			seen[token] = struct{}{}
		}
	})

	t.Run("length follows byte count", func(t *testing.T) {
		var u domain.User
		token, err := u.GenerateAPIToken(48)
		require.NoError(t, err)
		assert.Len(t, token, 96)
	})
}
