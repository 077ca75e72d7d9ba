package bip32

import (
	"github.com/dianecloud/hdwallet/internal/hash"
	"github.com/dianecloud/hdwallet/internal/secutil"
	"github.com/pkg/errors"
)

// masterSecret is the fixed HMAC key BIP-32 uses to derive a master node
// from a seed.
var masterSecret = []byte("Bitcoin seed")

// NewMasterKey derives the master extended private key for seed on
// Mainnet. seed must be 16-64 bytes.
func NewMasterKey(seed []byte) (*ExtendedKey, error) {
	return NewMasterKeyForNetwork(seed, Mainnet)
}

// NewMasterKeyForNetwork derives the master extended private key for seed,
// tagged for network n.
func NewMasterKeyForNetwork(seed []byte, n Network) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, errors.Wrapf(ErrInvalidSeed, "seed length %d outside [16,64]", len(seed))
	}

	i := hash.HMACSHA512(masterSecret, seed)
	defer secutil.Zero(i)
	il, ir := i[:32], i[32:]

	priv, err := NewPrivateKey(il)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSeed, "IL is zero or >= curve order")
	}

	k := &ExtendedKey{
		network: n,
		depth:   0,
		priv:    priv,
	}
	copy(k.chainCode[:], ir)
	k.pub = priv.PublicKey()
	return k, nil
}
