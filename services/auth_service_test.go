package services

import (
	"testing"

	"phrasebingo/apperr"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	assert := assert.New(t)
	svc := NewAuthService(newTestDB(t), "test-secret")

	resp, err := svc.Register(&RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})
	assert.NoError(err)
	assert.NotEmpty(resp.Token)
	assert.Empty(resp.User.Password, "hash must not serialize")

	login, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "correct horse"})
	assert.NoError(err)
	assert.Equal(resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	assert := assert.New(t)
	svc := NewAuthService(newTestDB(t), "test-secret")

	_, err := svc.Register(&RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "correct horse"})
	assert.NoError(err)

	_, err = svc.Register(&RegisterRequest{Email: "alice@example.com", Name: "Alice2", Password: "other password"})
	assert.True(apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	assert := assert.New(t)
	svc := NewAuthService(newTestDB(t), "test-secret")

	svc.Register(&RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "correct horse"})

	_, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.True(apperr.IsKind(err, apperr.KindForbidden))

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	assert.True(apperr.IsKind(err, apperr.KindForbidden))
}
