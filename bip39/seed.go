package bip39

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length in bytes of a mnemonic-derived seed.
	SeedSize = 64

	// pbkdf2Iterations is fixed by BIP-39.
	pbkdf2Iterations = 2048

	saltPrefix = "mnemonic"
)

// MnemonicToSeed derives the 64-byte seed from phrase and an optional
// passphrase. Both inputs are NFKD-normalized, the
// passphrase is prefixed with the literal salt "mnemonic", and the result
// is PBKDF2-HMAC-SHA512 with 2048 iterations. The seed is
// language-independent given the same phrase bytes post-NFKD.
func MnemonicToSeed(phrase, passphrase string) []byte {
	normPhrase := norm.NFKD.String(phrase)
	normPass := norm.NFKD.String(passphrase)
	salt := saltPrefix + normPass
	return pbkdf2.Key([]byte(normPhrase), []byte(salt), pbkdf2Iterations, SeedSize, sha512.New)
}
