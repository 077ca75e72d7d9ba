package bip32

import "errors"

// Sentinel errors for every failure kind named in the BIP-32 derivation and
// codec design. Call sites wrap these with github.com/pkg/errors to attach
// context; errors.Is against these values keeps working through the wrap
// chain.
var (
	ErrInvalidSeed             = errors.New("bip32: invalid seed")
	ErrInvalidPrivateKey       = errors.New("bip32: invalid private key")
	ErrInvalidPublicKey        = errors.New("bip32: invalid public key")
	ErrHardenedFromPublic      = errors.New("bip32: cannot derive a hardened child from a public extended key")
	ErrDepthOverflow           = errors.New("bip32: parent depth is already 255")
	ErrInvalidChildIndex       = errors.New("bip32: child index out of range")
	ErrInvalidPath             = errors.New("bip32: invalid derivation path")
	ErrInvalidChecksum         = errors.New("bip32: base58check checksum mismatch")
	ErrInvalidLength           = errors.New("bip32: invalid serialized key length")
	ErrUnknownVersion          = errors.New("bip32: unknown version bytes")
	ErrInvalidPrivateKeyPrefix = errors.New("bip32: private key data must begin with 0x00")
	ErrInvalidPublicKeyPrefix  = errors.New("bip32: public key data must begin with 0x02 or 0x03")
	ErrInvalidMasterMetadata   = errors.New("bip32: depth 0 requires a zero parent fingerprint and zero child index")
	ErrKeyDerivationRetry      = errors.New("bip32: derived key invalid at this index, retry with index+1")
)
