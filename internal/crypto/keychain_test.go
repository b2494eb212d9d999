package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	hash, err := svc.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !svc.VerifyPassword("correct horse battery staple", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if svc.VerifyPassword("wrong password", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestDeriveUserID_DeterministicAndSensitive(t *testing.T) {
	svc := NewKeyChainService()

	hash := []byte("$2a$12$fakehashfakehashfakehash")
	salt := bytes.Repeat([]byte{0xAB}, 16)

	id1 := svc.DeriveUserID("alice", hash, salt)
	id2 := svc.DeriveUserID("alice", hash, salt)
	if id1 != id2 {
		t.Fatalf("expected identical ids for identical inputs")
	}
	if len(id1) != 64 {
		t.Fatalf("id length = %d, want 64 hex chars", len(id1))
	}

	if svc.DeriveUserID("bob", hash, salt) == id1 {
		t.Fatalf("expected different id for different username")
	}
	otherSalt := bytes.Repeat([]byte{0xCD}, 16)
	if svc.DeriveUserID("alice", hash, otherSalt) == id1 {
		t.Fatalf("expected different id for different salt")
	}
}

func TestDeriveKey_StableAndDistinct(t *testing.T) {
	svc := NewKeyChainService()

	hash := []byte("stored-bcrypt-hash-material")
	salt := bytes.Repeat([]byte{0x01}, 16)

	k1 := svc.DeriveKey(hash, salt)
	k2 := svc.DeriveKey(hash, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}

	otherSalt := bytes.Repeat([]byte{0x02}, 16)
	if bytes.Equal(svc.DeriveKey(hash, otherSalt), k1) {
		t.Fatalf("expected different keys for different salts")
	}
	if bytes.Equal(svc.DeriveKey([]byte("other-material"), salt), k1) {
		t.Fatalf("expected different keys for different hash material")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte("quarterly revenue report, confidential")

	blob, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	opened, err := svc.Open(key, blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", opened, plaintext)
	}
}

func TestSeal_NonDeterministic(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte("same plaintext")

	b1, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(b1, b2) {
		t.Fatalf("expected distinct blobs for identical plaintext and key")
	}
}

func TestOpen_WrongKeyFailsWithIntegrityError(t *testing.T) {
	svc := NewKeyChainService()
	key1 := bytes.Repeat([]byte{0x01}, 32)
	key2 := bytes.Repeat([]byte{0x02}, 32)

	blob, err := svc.Seal(key1, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := svc.Open(key2, blob); err != ErrIntegrity {
		t.Fatalf("Open with wrong key: got %v, want ErrIntegrity", err)
	}
}

func TestOpen_TamperedAndTruncatedBlobs(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x07}, 32)

	blob, err := svc.Seal(key, []byte("audit trail entry"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	tampered := append([]byte(nil), blob...)
	tampered[len(tampered)-1] ^= 0xFF
	if _, err := svc.Open(key, tampered); err != ErrIntegrity {
		t.Fatalf("Open with tampered blob: got %v, want ErrIntegrity", err)
	}

	if _, err := svc.Open(key, blob[:8]); err != ErrIntegrity {
		t.Fatalf("Open with truncated blob: got %v, want ErrIntegrity", err)
	}
}
