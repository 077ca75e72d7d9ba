// Package bip39 implements mnemonic codes: entropy-to-phrase and back,
// and the PBKDF2-HMAC-SHA512 bridge from a phrase to a BIP-32 seed.
package bip39

import "errors"

// Sentinel errors for the mnemonic bridge, matching the error kinds a
// caller must distinguish when entropy or a phrase is malformed.
var (
	ErrInvalidEntropyLength = errors.New("bip39: entropy length must be 128, 160, 192, 224, or 256 bits")
	ErrInvalidWordCount     = errors.New("bip39: mnemonic must have 12, 15, 18, 21, or 24 words")
	ErrInvalidWord          = errors.New("bip39: word not found in wordlist")
	ErrInvalidChecksum      = errors.New("bip39: checksum mismatch")
	ErrUnknownLanguage      = errors.New("bip39: unknown language")
)
