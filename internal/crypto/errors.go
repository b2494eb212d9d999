package crypto

import "errors"

// ErrIntegrity is returned by [KeyChainService.Open] for every decryption
// failure: wrong key, truncated blob, or tampered ciphertext. The cases are
// deliberately undifferentiated to avoid acting as a decryption oracle.
var ErrIntegrity = errors.New("document integrity check failed")
