package bip32

import "testing"

func TestParsePath(t *testing.T) {
	cases := []struct {
		in      string
		wantLen int
		wantErr bool
	}{
		{"m", 0, false},
		{"m/0", 1, false},
		{"m/0'/1/2h/3H", 4, false},
		{"m/2147483647", 1, false},
		{"", 0, true},
		{"0/1", 0, true},          // missing "m" prefix
		{"m/", 0, true},           // empty trailing segment
		{"m//1", 0, true},         // empty segment
		{"m/abc", 0, true},        // non-decimal
		{"m/2147483648", 0, true}, // >= 2^31 before hardening
		{"m/'", 0, true},          // hardened marker with no index
	}

	for _, tc := range cases {
		p, err := ParsePath(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePath(%q): expected error, got none", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if len(p.Indices()) != tc.wantLen {
			t.Errorf("ParsePath(%q): got %d indices, want %d", tc.in, len(p.Indices()), tc.wantLen)
		}
	}
}

func TestParsePathHardenedFlag(t *testing.T) {
	p, err := ParsePath("m/44'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	idx := p.Indices()
	want := []bool{true, true, true, false, false}
	for i, w := range want {
		if got := IsHardened(idx[i]); got != w {
			t.Errorf("segment %d: IsHardened=%v, want %v", i, got, w)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, in := range []string{"m", "m/0", "m/0'/1/2'/2/1000000000"} {
		p, err := ParsePath(in)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("round trip %q: got %q", in, got)
		}
	}
}
