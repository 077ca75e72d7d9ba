package bip32

import (
	"github.com/dianecloud/hdwallet/internal/hash"
	"github.com/dianecloud/hdwallet/internal/secutil"
)

// HardenedKeyStart is the first hardened child index (2^31), the boundary
// between the normal and hardened index ranges.
const HardenedKeyStart uint32 = 1 << 31

// IsHardened reports whether index i falls in the hardened range.
func IsHardened(i uint32) bool { return i >= HardenedKeyStart }

// Hardened returns the hardened index corresponding to i (conventionally
// rendered i' or iH). i must already be below HardenedKeyStart.
func Hardened(i uint32) uint32 { return i + HardenedKeyStart }

// PrivateKey is a secp256k1 scalar in [1, n-1], the private half of a key
// pair. Storage is zeroed on Zero(); String and GoString redact the scalar
// rather than printing it.
type PrivateKey struct {
	scalar [32]byte
}

// NewPrivateKey validates and wraps a 32-byte big-endian scalar.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidPrivateKey
	}
	if !scalarIsValid(b) {
		return nil, ErrInvalidPrivateKey
	}
	pk := &PrivateKey{}
	copy(pk.scalar[:], b)
	return pk, nil
}

// Bytes returns a copy of the 32-byte big-endian scalar.
func (p *PrivateKey) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, p.scalar[:])
	return out
}

// PublicKey computes the public key corresponding to this private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{compressed: toArray33(compressedFromPrivate(p.scalar[:]))}
}

// Zero overwrites the scalar's storage with zero bytes. Callers must call
// this when a PrivateKey (or anything holding one, such as an ExtendedKey)
// is no longer needed.
func (p *PrivateKey) Zero() {
	if p == nil {
		return
	}
	secutil.Zero(p.scalar[:])
}

// String redacts the scalar: debug/printing surfaces for private keys
// must never emit the raw bytes.
func (p *PrivateKey) String() string { return secutil.Redacted }

// GoString redacts the scalar for %#v formatting too.
func (p *PrivateKey) GoString() string { return "bip32.PrivateKey(" + secutil.Redacted + ")" }

// PublicKey is a point on secp256k1 in 33-byte compressed SEC1 form.
type PublicKey struct {
	compressed [33]byte
}

// ParsePublicKey validates and wraps a 33-byte compressed SEC1 point.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != 33 {
		return nil, ErrInvalidPublicKey
	}
	if _, _, ok := parsePubkeyCompressed(b); !ok {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{compressed: toArray33(b)}, nil
}

// Bytes returns a copy of the 33-byte compressed point.
func (p *PublicKey) Bytes() []byte {
	out := make([]byte, 33)
	copy(out, p.compressed[:])
	return out
}

func toArray33(b []byte) [33]byte {
	var out [33]byte
	copy(out[:], b)
	return out
}

// ExtendedKey is either variant (private or public) of a BIP-32 node:
// network, tree position (depth/parent fingerprint/child index), chain
// code, and key material.
type ExtendedKey struct {
	network    Network
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
	chainCode  [32]byte
	priv       *PrivateKey // nil for a public extended key
	pub        *PublicKey  // always set
}

// IsPrivate reports whether this extended key carries a private scalar.
func (k *ExtendedKey) IsPrivate() bool { return k.priv != nil }

// Network returns the network this extended key serializes under.
func (k *ExtendedKey) Network() Network { return k.network }

// Depth returns the tree depth (0 for master).
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ParentFingerprint returns the 4-byte parent fingerprint (zero at depth 0).
func (k *ExtendedKey) ParentFingerprint() [4]byte { return k.parentFP }

// ChildIndex returns the index used to derive this node (0 at depth 0).
func (k *ExtendedKey) ChildIndex() uint32 { return k.childIndex }

// ChainCode returns a copy of the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// PrivateKey returns the private key, or nil if this is a public extended
// key.
func (k *ExtendedKey) PrivateKey() *PrivateKey { return k.priv }

// PublicKey returns the public key (always available, computed from the
// private key when needed).
func (k *ExtendedKey) PublicKey() *PublicKey { return k.pub }

// Fingerprint returns HASH160(compressed public key)[0:4], the identifier
// a child node stores as its parent fingerprint.
func (k *ExtendedKey) Fingerprint() [4]byte {
	h := hash.Hash160(k.pub.Bytes())
	var out [4]byte
	copy(out[:], h[:4])
	return out
}

// Public returns the public-only counterpart of this extended key. If k is
// already public, it is returned unchanged.
func (k *ExtendedKey) Public() *ExtendedKey {
	if !k.IsPrivate() {
		return k
	}
	return &ExtendedKey{
		network:    k.network,
		depth:      k.depth,
		parentFP:   k.parentFP,
		childIndex: k.childIndex,
		chainCode:  k.chainCode,
		pub:        k.pub,
	}
}

// Zero wipes the chain code and, if present, the private scalar. The
// public key material is not secret and is left intact.
func (k *ExtendedKey) Zero() {
	secutil.Zero(k.chainCode[:])
	k.priv.Zero()
}

func newMasterMetadataValid(depth uint8, parentFP [4]byte, childIndex uint32) bool {
	if depth != 0 {
		return true
	}
	return parentFP == [4]byte{} && childIndex == 0
}
