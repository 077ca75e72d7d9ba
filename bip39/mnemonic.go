package bip39

import (
	"crypto/sha256"
	"strings"

	"github.com/pkg/errors"
)

// validEntropyBitLengths are the only entropy sizes BIP-39 accepts.
var validEntropyBitLengths = [...]int{128, 160, 192, 224, 256}

func isValidEntropyBits(bits int) bool {
	for _, v := range validEntropyBitLengths {
		if v == bits {
			return true
		}
	}
	return false
}

func isValidWordCount(n int) bool {
	return n == 12 || n == 15 || n == 18 || n == 21 || n == 24
}

// EntropyToMnemonic encodes entropy as a phrase in language l. entropy
// must be 16, 20, 24, 28, or 32 bytes.
func EntropyToMnemonic(entropy []byte, l Language) (string, error) {
	entBits := len(entropy) * 8
	if !isValidEntropyBits(entBits) {
		return "", errors.Wrapf(ErrInvalidEntropyLength, "got %d bits", entBits)
	}

	wl, err := lookupWordlist(l)
	if err != nil {
		return "", err
	}

	csBits := entBits / 32
	checksum := sha256.Sum256(entropy)

	totalBits := entBits + csBits
	bits := make([]bool, totalBits)
	for i := 0; i < entBits; i++ {
		bits[i] = entropy[i/8]&(1<<(7-uint(i%8))) != 0
	}
	for i := 0; i < csBits; i++ {
		bits[entBits+i] = checksum[0]&(1<<(7-uint(i))) != 0
	}

	words := make([]string, totalBits/11)
	for i := range words {
		idx := 0
		for j := 0; j < 11; j++ {
			idx <<= 1
			if bits[i*11+j] {
				idx |= 1
			}
		}
		words[i] = wl.wordAt(idx)
	}

	return strings.Join(words, l.Separator()), nil
}

// MnemonicToEntropy decodes phrase (in language l) back to its entropy,
// verifying the embedded checksum. Word-not-in-list -> ErrInvalidWord;
// wrong word count -> ErrInvalidWordCount; checksum mismatch ->
// ErrInvalidChecksum.
func MnemonicToEntropy(phrase string, l Language) ([]byte, error) {
	words := splitPhrase(phrase)
	if !isValidWordCount(len(words)) {
		return nil, errors.Wrapf(ErrInvalidWordCount, "got %d words", len(words))
	}

	wl, err := lookupWordlist(l)
	if err != nil {
		return nil, err
	}

	totalBits := len(words) * 11
	bits := make([]bool, totalBits)
	for i, w := range words {
		idx, ok := wl.indexOfWord(w)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidWord, "word %q not in %s wordlist", w, l)
		}
		for j := 0; j < 11; j++ {
			bits[i*11+j] = idx&(1<<(10-uint(j))) != 0
		}
	}

	csBits := len(words) / 3
	entBits := totalBits - csBits

	entropy := make([]byte, entBits/8)
	for i := 0; i < entBits; i++ {
		if bits[i] {
			entropy[i/8] |= 1 << (7 - uint(i%8))
		}
	}

	checksum := sha256.Sum256(entropy)
	for i := 0; i < csBits; i++ {
		want := checksum[0]&(1<<(7-uint(i))) != 0
		if bits[entBits+i] != want {
			return nil, ErrInvalidChecksum
		}
	}

	return entropy, nil
}

// ValidateMnemonic reports whether phrase is a well-formed, checksum-valid
// mnemonic in language l.
func ValidateMnemonic(phrase string, l Language) bool {
	_, err := MnemonicToEntropy(phrase, l)
	return err == nil
}

// splitPhrase tokenizes on ASCII space, tab, LF and CR, and on the
// ideographic space U+3000 Japanese phrases use as a separator.
func splitPhrase(phrase string) []string {
	return strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == '　' || r == '\t' || r == '\n' || r == '\r'
	})
}
