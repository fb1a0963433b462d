package security

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tapacademy.com/attendance/attendance/model"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIdentityTokenRoundTrip(t *testing.T) {
	want := Identity{UserID: "u1", Role: model.RoleManager}

	token, err := CreateIdentityToken(want, testSecret, time.Hour)
	require.NoError(t, err)

	got, err := ParseIdentityToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.IsManager())
}

func TestParseIdentityTokenRejects(t *testing.T) {
	valid, err := CreateIdentityToken(Identity{UserID: "u1", Role: model.RoleEmployee}, testSecret, time.Hour)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Identity: Identity{UserID: "u1", Role: model.RoleEmployee},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Identity: Identity{UserID: "u1"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{name: "Wrong secret", token: valid, secret: []byte("another-secret")},
		{name: "Expired", token: expired, secret: testSecret},
		{name: "Missing role", token: noRole, secret: testSecret},
		{name: "Garbage", token: "not.a.token", secret: testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentityToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDecodeSecret(t *testing.T) {
	secret, err := DecodeSecret(base64.StdEncoding.EncodeToString(testSecret))
	require.NoError(t, err)
	assert.Equal(t, testSecret, secret)

	_, err = DecodeSecret("%%%")
	assert.Error(t, err)

	_, err = DecodeSecret("")
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	ok, err := CheckPassword(hash, "s3cret!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-hash", "s3cret!")
	assert.Error(t, err)
}
