// Package secutil holds the secret-material hygiene helpers shared by
// bip32.PrivateKey and its transient derivation buffers: storage holding a
// private scalar must be zeroed once its owner releases it. Go has no
// destructors, so callers invoke Zero explicitly instead of relying on a
// zeroize-on-drop wrapper.
package secutil

// Zero overwrites every byte of b with 0x00 in place. It is a no-op for a
// nil or empty slice.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Redacted is the fixed placeholder every private-key Debug/String surface
// must emit instead of scalar bytes.
const Redacted = "<redacted>"
