package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("u1")
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestTokenManager_Expired(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	token, err := m.Issue("u1")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.Verify(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m1, err := NewTokenManager("secret-1", time.Hour)
	require.NoError(t, err)
	m2, err := NewTokenManager("secret-2", time.Hour)
	require.NoError(t, err)

	token, err := m1.Issue("u1")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RejectsNoneAlg(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_Garbage(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewTokenManager_Validation(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", 0)
	assert.Error(t, err)
}
