package bip32

import (
	"encoding/binary"

	"github.com/ModChain/base58"
	"github.com/dianecloud/hdwallet/internal/hash"
	"github.com/pkg/errors"
)

const (
	serializedPayloadLen = 78
	serializedTotalLen   = serializedPayloadLen + 4 // + checksum
)

// MarshalBinary encodes k in the canonical 78-byte layout:
// version(4) || depth(1) || parent fingerprint(4) || child index(4) ||
// chain code(32) || key data(33). It implements encoding.BinaryMarshaler.
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, serializedPayloadLen)

	var version Version
	if k.IsPrivate() {
		version = k.network.Private
	} else {
		version = k.network.Public
	}
	out = append(out, version[:]...)
	out = append(out, k.depth)
	out = append(out, k.parentFP[:]...)

	var childIndexBytes [4]byte
	binary.BigEndian.PutUint32(childIndexBytes[:], k.childIndex)
	out = append(out, childIndexBytes[:]...)
	out = append(out, k.chainCode[:]...)

	if k.IsPrivate() {
		out = append(out, 0x00)
		out = append(out, k.priv.Bytes()...)
	} else {
		out = append(out, k.pub.Bytes()...)
	}

	return out, nil
}

// String Base58Check-encodes k: the 78-byte payload plus a 4-byte
// double-SHA-256 checksum, 111 characters for every valid extended key.
func (k *ExtendedKey) String() string {
	payload, _ := k.MarshalBinary()
	checksum := hash.Checksum4(payload)
	full := append(append([]byte{}, payload...), checksum[:]...)
	return base58.Bitcoin.Encode(full)
}

// ParseExtendedKey decodes a Base58Check-encoded extended key string,
// applying every hard-rejection rule for a malformed or inconsistent key.
func ParseExtendedKey(s string) (*ExtendedKey, error) {
	raw, err := base58.Bitcoin.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidChecksum, err.Error())
	}
	return UnmarshalExtendedKey(raw)
}

// UnmarshalExtendedKey decodes the raw Base58Check bytes (payload +
// checksum) of an extended key, applying the same validation as
// ParseExtendedKey. It implements encoding.BinaryUnmarshaler-like
// semantics but returns a new value rather than mutating a receiver, since
// ExtendedKey is a value type.
func UnmarshalExtendedKey(raw []byte) (*ExtendedKey, error) {
	if len(raw) != serializedTotalLen {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d", len(raw), serializedTotalLen)
	}

	payload := raw[:serializedPayloadLen]
	wantChecksum := raw[serializedPayloadLen:]
	gotChecksum := hash.Checksum4(payload)
	if !bytesEqual(gotChecksum[:], wantChecksum) {
		return nil, ErrInvalidChecksum
	}

	var version Version
	copy(version[:], payload[0:4])
	network, isPrivate, ok := lookupVersion(version)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVersion, "version bytes % x", version)
	}

	depth := payload[4]
	var parentFP [4]byte
	copy(parentFP[:], payload[5:9])
	childIndex := binary.BigEndian.Uint32(payload[9:13])
	chainCode := payload[13:45]
	keyData := payload[45:78]

	if !newMasterMetadataValid(depth, parentFP, childIndex) {
		return nil, ErrInvalidMasterMetadata
	}

	k := &ExtendedKey{
		network:    network,
		depth:      depth,
		parentFP:   parentFP,
		childIndex: childIndex,
	}
	copy(k.chainCode[:], chainCode)

	if isPrivate {
		if keyData[0] != 0x00 {
			return nil, ErrInvalidPrivateKeyPrefix
		}
		priv, err := NewPrivateKey(keyData[1:])
		if err != nil {
			return nil, ErrInvalidPrivateKey
		}
		k.priv = priv
		k.pub = priv.PublicKey()
		return k, nil
	}

	if keyData[0] != 0x02 && keyData[0] != 0x03 {
		return nil, ErrInvalidPublicKeyPrefix
	}
	pub, err := ParsePublicKey(keyData)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	k.pub = pub
	return k, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
