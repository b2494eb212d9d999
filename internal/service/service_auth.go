package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and the key chain for
// all credential-derived material.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// keyChain performs salt generation, password hashing/verification and
	// the deterministic user identity derivation.
	keyChain crypto.KeyChainService

	// pool runs the adaptive password hash off the request-dispatch path.
	pool CryptoPool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and key chain, populated with token parameters from cfg.
//
// When cfg.TokenSignKey is empty an ephemeral per-process secret is
// generated: every restart then invalidates all previously issued tokens.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, keyChain crypto.KeyChainService, pool CryptoPool, cfg config.App, logger *logger.Logger) AuthService {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		secret := make([]byte, 32)
		_, _ = rand.Read(secret)
		signKey = hex.EncodeToString(secret)
		logger.Warn().Msg("no token sign key configured, generated an ephemeral per-process secret; tokens will not survive a restart")
	}

	return &authService{
		userRepository: userRepository,
		keyChain:       keyChain,
		pool:           pool,
		tokenSignKey:   signKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The duplicate-username check runs before any credential material is
// derived, so a conflicting registration never burns a bcrypt computation.
// On the happy path the service generates a fresh salt, hashes the password
// on the worker pool, derives the immutable user UUID from the stored
// credential material, and persists the account.
//
// Returns the persisted user (with the server-assigned CreatedAt) or:
//   - ErrValidation if username or password is empty, or role is unknown.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - A wrapped storage or crypto error otherwise.
func (a *authService) RegisterUser(ctx context.Context, username, password, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if role == "" {
		role = models.RoleGeneral
	}
	if !models.IsValidRole(role) {
		log.Error().Str("role", role).Msg("unknown role provided")
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	// conflict check before any key material is derived
	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", username).Msg("user lookup failed during registration")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	salt, err := a.keyChain.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	var hashedPassword []byte
	var hashErr error
	if err := a.pool.Do(ctx, func() {
		hashedPassword, hashErr = a.keyChain.HashPassword(password)
	}); err != nil {
		return models.User{}, fmt.Errorf("password hashing did not complete: %w", err)
	}
	if hashErr != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", hashErr)
	}

	user := models.User{
		UUID:           a.keyChain.DeriveUserID(username, hashedPassword, salt),
		Username:       username,
		HashedPassword: hashedPassword,
		Salt:           salt,
		Role:           models.Canonical(role),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both collapse to
// ErrWrongCredentials; the bcrypt comparison runs on the worker pool.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	var matches bool
	if err := a.pool.Do(ctx, func() {
		matches = a.keyChain.VerifyPassword(password, foundUser.HashedPassword)
	}); err != nil {
		return models.User{}, fmt.Errorf("password verification did not complete: %w", err)
	}
	if !matches {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// GetUserByUsername resolves the full account record for an authenticated
// username, as carried in a verified token subject.
func (a *authService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the username as the "sub" claim, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
