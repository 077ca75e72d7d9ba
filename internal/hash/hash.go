// Package hash provides the keyed and compound hash primitives the BIP-32
// derivation engine and BIP-39 mnemonic bridge are built on: HMAC-SHA512,
// HASH160 (RIPEMD-160 of SHA-256), and the double-SHA-256 checksum used by
// Base58Check.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// HMACSHA512 computes HMAC-SHA512(key, msg) and returns the 64-byte digest.
func HMACSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// SHA256 returns SHA-256(x).
func SHA256(x []byte) [32]byte {
	return sha256.Sum256(x)
}

// DoubleSHA256 returns SHA-256(SHA-256(x)).
func DoubleSHA256(x []byte) [32]byte {
	a := sha256.Sum256(x)
	return sha256.Sum256(a[:])
}

// Checksum4 returns the first 4 bytes of DoubleSHA256(x), the Base58Check
// checksum suffix.
func Checksum4(x []byte) [4]byte {
	d := DoubleSHA256(x)
	var out [4]byte
	copy(out[:], d[:4])
	return out
}

// Hash160 returns RIPEMD-160(SHA-256(x)), a 20-byte compact hash used for
// extended-key fingerprints.
func Hash160(x []byte) []byte {
	s := sha256.Sum256(x)
	r := ripemd160.New()
	r.Write(s[:])
	return r.Sum(nil)
}
