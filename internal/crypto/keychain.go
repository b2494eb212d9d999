// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching call sites.
	kdfIterations int
	kdfKeyLen     int

	// bcryptCost controls the adaptive password hash work factor.
	bcryptCost int
}

// NewKeyChainService constructs a [KeyChainService] with the production
// parameters:
//   - PBKDF2-HMAC-SHA256, 480 000 iterations, 32-byte (256-bit) output
//   - bcrypt cost 12 (>100ms on commodity hardware)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		kdfIterations: 480_000,
		kdfKeyLen:     32, // 256 bits
		bcryptCost:    12,
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword implements [KeyChainService]. bcrypt embeds its own salt and
// cost in the output, so the stored hash is self-describing.
func (k *keyChainService) HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), k.bcryptCost)
}

// VerifyPassword implements [KeyChainService]. bcrypt's comparison is
// constant-time with respect to the stored hash format.
func (k *keyChainService) VerifyPassword(password string, storedHash []byte) bool {
	return bcrypt.CompareHashAndPassword(storedHash, []byte(password)) == nil
}

// DeriveUserID implements [KeyChainService]. The digest binds the identity
// to the exact credential material created at registration; it is computed
// exactly once and never recomputed from client-supplied values.
func (k *keyChainService) DeriveUserID(username string, hashedPassword, salt []byte) string {
	h := sha256.New()
	h.Write([]byte(username))
	h.Write(hashedPassword)
	h.Write(salt)
	return hex.EncodeToString(h.Sum(nil))
}

// DeriveKey implements [KeyChainService]. The iteration count is a design
// choice: even though the hash and salt are already server-side secrets, the
// expensive derivation raises the bar for brute-forcing the document key
// should the credential material ever leak.
func (k *keyChainService) DeriveKey(hashedPassword, salt []byte) []byte {
	return pbkdf2.Key(hashedPassword, salt, k.kdfIterations, k.kdfKeyLen, sha256.New)
}

// Seal implements [KeyChainService]. A random 12-byte nonce is prepended to
// the ciphertext so that Open can locate it: blob = nonce || ciphertext.
func (k *keyChainService) Seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Open implements [KeyChainService]. Every failure collapses into
// [ErrIntegrity]: a caller (or attacker) observing the error cannot tell a
// wrong key from a corrupted or truncated blob.
func (k *keyChainService) Open(key, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrIntegrity
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrIntegrity
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrIntegrity
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrity
	}

	return plaintext, nil
}
