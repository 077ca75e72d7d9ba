package bip39_test

import (
	"testing"

	"github.com/dianecloud/hdwallet/bip32"
	"github.com/dianecloud/hdwallet/bip39"
)

// Full mnemonic -> seed -> master key -> derive m/0 two
// ways (from the private master, and from its public-only counterpart)
// and confirm they agree, exercising the whole mnemonic->seed->tree data
// flow this package and bip32 compose together.
func TestMnemonicToMasterKeyToChild(t *testing.T) {
	const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	if !bip39.ValidateMnemonic(phrase, bip39.English) {
		t.Fatalf("expected phrase to validate")
	}

	seed := bip39.MnemonicToSeed(phrase, "")
	if len(seed) != bip39.SeedSize {
		t.Fatalf("seed length = %d, want %d", len(seed), bip39.SeedSize)
	}

	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	if !master.IsPrivate() {
		t.Fatalf("expected a private master key")
	}

	childFromPriv, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child(0): %v", err)
	}

	childFromPub, err := master.Public().Child(0)
	if err != nil {
		t.Fatalf("Public().Child(0): %v", err)
	}

	if childFromPriv.Public().String() != childFromPub.String() {
		t.Errorf("public-path derivation diverged: %s != %s", childFromPriv.Public().String(), childFromPub.String())
	}
}
