// Package bip32 implements hierarchical deterministic key derivation for
// secp256k1 extended keys per BIP-32: master-key generation from a seed,
// parent-to-child derivation (CKDpriv, CKDpub) for both normal and
// hardened children, derivation-path parsing and walking, and the 78-byte
// canonical serialization with its Base58Check encoding.
//
// Every ExtendedKey is an immutable value. There is no shared mutable
// state and no lifecycle beyond construction: callers who hold a private
// extended key are responsible for calling Zero on it once done, since Go
// has no destructors to do that automatically.
//
// Reference: https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
package bip32
