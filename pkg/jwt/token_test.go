package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv(AccessTokenSecret, "")

		_, _, err := Sign(map[string]interface{}{"id": 7}, time.Hour)
		assert.Error(t, err)
	})

	t.Run("round trip claims", func(t *testing.T) {
		t.Setenv(AccessTokenSecret, "secret")

		token, exp, err := Sign(map[string]interface{}{"id": 7, "email": "a@b.c"}, time.Hour)
		require.NoError(t, err)
		assert.Greater(t, exp, time.Now().Unix())

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)

		user, err := UserFromClaims(parsed.Claims.(jwt.MapClaims))
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "a@b.c", user.Email)
	})
}

func TestUserFromClaims(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		wantID  int64
		wantErr bool
	}{
		{"float id", jwt.MapClaims{"id": float64(9)}, 9, false},
		{"missing id", jwt.MapClaims{"email": "x"}, 0, true},
		{"string id", jwt.MapClaims{"id": "9"}, 0, true},
		{"zero id", jwt.MapClaims{"id": float64(0)}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			user, err := UserFromClaims(c.claims)
			if c.wantErr {
				assert.ErrorIs(t, err, ErrMissingUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantID, user.ID)
		})
	}
}
