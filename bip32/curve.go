package bip32

import (
	"crypto/elliptic"
	"math/big"

	"github.com/ModChain/secp256k1"
)

// curve is the single shared secp256k1 context, constructed once and
// shared immutably across calls; it holds no per-operation state, so a
// package-level value is safe under concurrent use.
var curve = secp256k1.S256()

// curveOrder is the secp256k1 group order n.
func curveOrder() *big.Int {
	return curve.Params().N
}

// scalarIsValid reports whether b is a valid private scalar: non-zero and
// less than the curve order.
func scalarIsValid(b []byte) bool {
	k := new(big.Int).SetBytes(b)
	return k.Sign() != 0 && k.Cmp(curveOrder()) < 0
}

// scalarAddModN returns (a+b) mod n, or (nil, false) if the sum reduces to
// zero.
func scalarAddModN(a, b []byte) ([]byte, bool) {
	sum := new(big.Int).Add(new(big.Int).SetBytes(a), new(big.Int).SetBytes(b))
	sum.Mod(sum, curveOrder())
	if sum.Sign() == 0 {
		return nil, false
	}
	return leftPad32(sum.Bytes()), true
}

// pubkeyFromScalar computes k*G via the curve's base-point scalar
// multiplication.
func pubkeyFromScalar(k []byte) (x, y *big.Int) {
	return curve.ScalarBaseMult(k)
}

// pubkeyTweakAdd returns P + t*G. ok is false if the result is the point
// at infinity.
func pubkeyTweakAdd(px, py *big.Int, t []byte) (x, y *big.Int, ok bool) {
	tx, ty := curve.ScalarBaseMult(t)
	x, y = curve.Add(px, py, tx, ty)
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil, false
	}
	return x, y, true
}

// serializeCompressed encodes a point in 33-byte compressed SEC1 form.
func serializeCompressed(x, y *big.Int) []byte {
	format := byte(secp256k1.PubKeyFormatCompressedEven)
	if y.Bit(0) == 1 {
		format = secp256k1.PubKeyFormatCompressedOdd
	}
	out := make([]byte, 33)
	out[0] = format
	x.FillBytes(out[1:])
	return out
}

// parsePubkeyCompressed validates that b decodes to a point on the curve
// and returns its affine coordinates, or ok=false.
func parsePubkeyCompressed(b []byte) (x, y *big.Int, ok bool) {
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, nil, false
	}
	return pk.X(), pk.Y(), true
}

// compressedFromPrivate derives the 33-byte compressed public key for a
// 32-byte private scalar.
func compressedFromPrivate(priv []byte) []byte {
	x, y := curve.ScalarBaseMult(priv)
	return serializeCompressed(x, y)
}

func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

var _ elliptic.Curve = curve
