package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellwisher/wellwisher-backend/internal/modules/user"
)

func testUser() *user.User {
	return &user.User{
		ID:    uuid.New(),
		Role:  user.RoleUser,
		Name:  "Ann",
		Email: "ann@x.com",
	}
}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	u := testUser()

	tok, err := GenerateToken(u, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Role, claims.Role)
}

func TestGenerateToken_ExpirySetFromTTL(t *testing.T) {
	t.Parallel()

	u := testUser()
	before := time.Now()
	tok, err := GenerateToken(u, []byte("k"), time.Hour)
	require.NoError(t, err)
	after := time.Now()

	claims, err := ParseToken(tok, []byte("k"))
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)

	exp := claims.ExpiresAt.Time
	// NumericDate truncates to whole seconds, hence the widened bounds.
	assert.False(t, exp.Before(before.Add(time.Hour).Truncate(time.Second)))
	assert.False(t, exp.After(after.Add(time.Hour).Add(time.Second)))
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	u := testUser()
	tok, err := GenerateToken(u, []byte("k"), -1*time.Second)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("k"))
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(testUser(), []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	assert.Error(t, err)
}

func TestParseToken_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "anyone",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("k"))
	assert.Error(t, err)
}
