package bip32

import (
	"encoding/binary"
	"math/big"

	"github.com/dianecloud/hdwallet/internal/hash"
	"github.com/dianecloud/hdwallet/internal/secutil"
	"github.com/pkg/errors"
)

// ChildAt computes the single CKD step (CKDpriv or CKDpub, selected by
// whether k is private) for index i. If the HMAC output would yield an
// invalid intermediate, it returns ErrKeyDerivationRetry without advancing
// i — the caller must retry at i+1. Child wraps this with the advance loop
// for callers who don't need to observe individual retries.
func (k *ExtendedKey) ChildAt(i uint32) (*ExtendedKey, error) {
	if k.depth == 0xff {
		return nil, ErrDepthOverflow
	}

	hardened := IsHardened(i)
	if hardened && !k.IsPrivate() {
		return nil, ErrHardenedFromPublic
	}

	data := make([]byte, 37)
	if hardened {
		// Case 1: 0x00 || ser256(parentPrivateKey) || ser32(i)
		copy(data[1:33], k.priv.Bytes())
	} else {
		// Case 2/3: serP(parentPublicKey) || ser32(i)
		copy(data[0:33], k.pub.Bytes())
	}
	binary.BigEndian.PutUint32(data[33:], i)

	I := hash.HMACSHA512(k.chainCode[:], data)
	il, ir := I[:32], I[32:]
	defer secutil.Zero(il)

	if new(big.Int).SetBytes(il).Cmp(curveOrder()) >= 0 {
		return nil, ErrKeyDerivationRetry
	}

	fp := k.Fingerprint()

	if k.IsPrivate() {
		parentScalar := k.priv.Bytes()
		defer secutil.Zero(parentScalar)

		childScalar, ok := scalarAddModN(il, parentScalar)
		if !ok {
			return nil, ErrKeyDerivationRetry
		}
		defer secutil.Zero(childScalar)

		childPriv, err := NewPrivateKey(childScalar)
		if err != nil {
			// unreachable: childScalar is already reduced mod n and scalarAddModN
			// rejected a zero sum above, but kept for defense in depth against a
			// future curve swap.
			return nil, ErrKeyDerivationRetry
		}

		child := &ExtendedKey{
			network:    k.network,
			depth:      k.depth + 1,
			childIndex: i,
			priv:       childPriv,
		}
		copy(child.parentFP[:], fp[:])
		copy(child.chainCode[:], ir)
		child.pub = childPriv.PublicKey()
		return child, nil
	}

	// CKDpub: parent is public, i must already be non-hardened (checked above).
	px, py, ok := parsePubkeyCompressed(k.pub.Bytes())
	if !ok {
		return nil, ErrInvalidPublicKey
	}
	cx, cy, ok := pubkeyTweakAdd(px, py, il)
	if !ok {
		return nil, ErrKeyDerivationRetry
	}
	childPub, err := ParsePublicKey(serializeCompressed(cx, cy))
	if err != nil {
		return nil, err
	}

	child := &ExtendedKey{
		network:    k.network,
		depth:      k.depth + 1,
		childIndex: i,
		pub:        childPub,
	}
	copy(child.parentFP[:], fp[:])
	copy(child.chainCode[:], ir)
	return child, nil
}

// Child derives the child at index i, silently advancing to i+1, i+2, ...
// whenever ChildAt reports ErrKeyDerivationRetry, and returns the key
// actually produced. Inspect the result's ChildIndex to learn which index
// was used when a retry occurred.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	for {
		child, err := k.ChildAt(i)
		if err == nil {
			return child, nil
		}
		if !errors.Is(err, ErrKeyDerivationRetry) {
			return nil, err
		}
		if i == 0xffffffff {
			return nil, errors.Wrap(ErrInvalidChildIndex, "index space exhausted while retrying derivation")
		}
		i++
	}
}

// Derive walks path from k, folding each segment through Child in order.
// An empty path returns k unchanged. A hardened segment applied to a
// public extended key fails at the first such segment with
// ErrHardenedFromPublic.
func (k *ExtendedKey) Derive(path DerivationPath) (*ExtendedKey, error) {
	cur := k
	for _, idx := range path.indices {
		next, err := cur.Child(idx)
		if err != nil {
			return nil, errors.Wrapf(err, "deriving path segment %d", idx)
		}
		cur = next
	}
	return cur, nil
}

// DeriveString parses path and derives it from k in one step.
func (k *ExtendedKey) DeriveString(path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.Derive(p)
}
