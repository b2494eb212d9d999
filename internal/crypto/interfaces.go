// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns every credential-derived cryptographic operation of
// the document vault: salt generation, adaptive password hashing, the
// deterministic user identity derivation, the PBKDF2 document-key
// derivation, and the authenticated envelope cipher that seals document
// content at rest.
//
// The derived document key is a pure function of the stored credential
// material (bcrypt hash + salt). It is never persisted anywhere; it is
// recomputed on demand each time content must be sealed or unsealed.
package crypto

// KeyChainService is the single entry point for all key material handling.
// Implementations must be safe for concurrent use; all methods are pure or
// draw only from the OS CSPRNG.
type KeyChainService interface {
	// GenerateSalt returns 16 cryptographically random bytes.
	GenerateSalt() ([]byte, error)

	// HashPassword computes the adaptive bcrypt hash of password.
	HashPassword(password string) ([]byte, error)

	// VerifyPassword reports whether password matches storedHash.
	// The comparison is constant-time with respect to the stored hash format.
	VerifyPassword(password string, storedHash []byte) bool

	// DeriveUserID computes the immutable user identity:
	// hex(SHA-256(username || hashedPassword || salt)).
	DeriveUserID(username string, hashedPassword, salt []byte) string

	// DeriveKey derives the 256-bit document encryption key from the user's
	// stored credential material via PBKDF2-HMAC-SHA256. Deterministic:
	// identical inputs always yield the identical key. Deliberately
	// expensive; callers must route it off latency-sensitive paths.
	DeriveKey(hashedPassword, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM. Every call uses a
	// fresh random nonce, so sealing identical plaintext twice yields
	// distinct blobs. The blob layout is nonce || ciphertext.
	Seal(key, plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Any failure — wrong key,
	// truncation, or tampering — is reported as the single undifferentiated
	// [ErrIntegrity] so the externally visible message never distinguishes
	// a wrong key from corrupted data.
	Open(key, blob []byte) ([]byte, error)
}
