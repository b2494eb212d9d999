package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "go-doc-vault",
		TokenDuration: 30 * time.Minute,
	}
	return NewAuthService(repo, crypto.NewKeyChainService(), inlinePool{}, cfg, logger.Nop())
}

func TestRegisterUser_Success(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	user, err := auth.RegisterUser(ctx, "john", "hunter2", models.RoleFinance)
	require.NoError(t, err)

	assert.Equal(t, "john", user.Username)
	assert.Equal(t, models.RoleFinance, user.Role)
	assert.Len(t, user.UUID, 64, "uuid is hex(SHA-256(...))")
	assert.NotEmpty(t, user.HashedPassword)
	assert.Len(t, user.Salt, 16)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterUser_DefaultsToGeneralRole(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())

	user, err := auth.RegisterUser(context.Background(), "john", "hunter2", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGeneral, user.Role)
}

func TestRegisterUser_Validation(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"empty username", "", "hunter2", ""},
		{"empty password", "john", "", ""},
		{"unknown role", "john", "hunter2", "superuser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.RegisterUser(ctx, tt.username, tt.password, tt.role)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	_, err := auth.RegisterUser(ctx, "john", "hunter2", "")
	require.NoError(t, err)

	_, err = auth.RegisterUser(ctx, "john", "different", "")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestLogin_RoundTrip(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	registered, err := auth.RegisterUser(ctx, "john", "hunter2", "")
	require.NoError(t, err)

	loggedIn, err := auth.Login(ctx, "john", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, registered.UUID, loggedIn.UUID)
	assert.Equal(t, registered.Salt, loggedIn.Salt)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	_, err := auth.RegisterUser(ctx, "john", "hunter2", "")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "john", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLogin_UnknownUserIndistinguishableFromWrongPassword(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())

	_, err := auth.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	user, err := auth.RegisterUser(ctx, "john", "hunter2", "")
	require.NoError(t, err)

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "john", parsed.Username)
}

func TestParseToken_Invalid(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())

	_, err := auth.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_TamperedSignature(t *testing.T) {
	auth := newTestAuthService(newMemUserRepository())
	ctx := context.Background()

	user, err := auth.RegisterUser(ctx, "john", "hunter2", "")
	require.NoError(t, err)

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)

	tampered := token.SignedString[:len(token.SignedString)-2] + "xx"
	_, err = auth.ParseToken(ctx, tampered)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestUUIDDeterminism(t *testing.T) {
	keyChain := crypto.NewKeyChainService()

	hashed := []byte("stable-hash")
	salt := []byte("0123456789abcdef")

	first := keyChain.DeriveUserID("john", hashed, salt)
	second := keyChain.DeriveUserID("john", hashed, salt)
	assert.Equal(t, first, second)

	other := keyChain.DeriveUserID("jane", hashed, salt)
	assert.NotEqual(t, first, other)
}
