package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DerivationPath is an ordered sequence of child indices plus the marker
// that the path originates at the master node.
type DerivationPath struct {
	fromMaster bool
	indices    []uint32
}

// Indices returns the parsed child indices in order.
func (p DerivationPath) Indices() []uint32 {
	out := make([]uint32, len(p.indices))
	copy(out, p.indices)
	return out
}

// FromMaster reports whether the path was written with the "m" prefix.
func (p DerivationPath) FromMaster() bool { return p.fromMaster }

// String renders the path back to its canonical textual form,
// "m/a/b'/c/...", using ' for hardened segments.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p.indices {
		b.WriteByte('/')
		if IsHardened(idx) {
			b.WriteString(strconv.FormatUint(uint64(idx-HardenedKeyStart), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// ParsePath parses a textual derivation path: "m" for the master node
// itself, or "m/a/b'/c/..." where each segment is a decimal index,
// optionally suffixed with ', h, or H to mark it hardened. An empty
// segment, non-decimal content, a missing "m" prefix, or an index outside
// 0..2^31-1 before the hardened marker is a parse error.
func ParsePath(s string) (DerivationPath, error) {
	if s == "" {
		return DerivationPath{}, errors.Wrap(ErrInvalidPath, "empty path")
	}

	segments := strings.Split(s, "/")
	if segments[0] != "m" {
		return DerivationPath{}, errors.Wrapf(ErrInvalidPath, "path %q must start with \"m\"", s)
	}

	rest := segments[1:]
	indices := make([]uint32, 0, len(rest))
	for _, seg := range rest {
		idx, err := parseSegment(seg)
		if err != nil {
			return DerivationPath{}, err
		}
		indices = append(indices, idx)
	}

	return DerivationPath{fromMaster: true, indices: indices}, nil
}

func parseSegment(seg string) (uint32, error) {
	if seg == "" {
		return 0, errors.Wrap(ErrInvalidPath, "empty path segment")
	}

	hardened := false
	numPart := seg
	switch seg[len(seg)-1] {
	case '\'', 'h', 'H':
		hardened = true
		numPart = seg[:len(seg)-1]
	}
	if numPart == "" {
		return 0, errors.Wrapf(ErrInvalidPath, "segment %q has no index before its hardened marker", seg)
	}

	n, err := strconv.ParseUint(numPart, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPath, "segment %q is not a decimal index", seg)
	}
	if n >= uint64(HardenedKeyStart) {
		return 0, errors.Wrapf(ErrInvalidChildIndex, "index %d in segment %q must be below 2^31", n, seg)
	}

	idx := uint32(n)
	if hardened {
		idx = Hardened(idx)
	}
	return idx, nil
}
