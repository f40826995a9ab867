package project

import "testing"

func TestParseRemapping(t *testing.T) {
	tests := []struct {
		line       string
		wantOK     bool
		wantCtx    string
		wantPrefix string
		wantTarget string
	}{
		{line: "@oz/=lib/openzeppelin-contracts/contracts/", wantOK: true, wantPrefix: "@oz/", wantTarget: "lib/openzeppelin-contracts/contracts/"},
		{line: "lib/foo:@bar/=lib/baz/", wantOK: true, wantCtx: "lib/foo", wantPrefix: "@bar/", wantTarget: "lib/baz/"},
		{line: "", wantOK: false},
		{line: "# a comment", wantOK: false},
		{line: "no-equals-sign", wantOK: false},
		{line: "=target-with-no-prefix", wantOK: false},
	}
	for _, tt := range tests {
		r, ok := ParseRemapping(tt.line)
		if ok != tt.wantOK {
			t.Fatalf("ParseRemapping(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if r.Context != tt.wantCtx || r.Prefix != tt.wantPrefix || r.Target != tt.wantTarget {
			t.Fatalf("ParseRemapping(%q) = %+v", tt.line, r)
		}
	}
}

func TestRemapSetLongestPrefixWins(t *testing.T) {
	rs := RemapSet{
		{Prefix: "@oz/", Target: "lib/oz-v4/"},
		{Prefix: "@oz/token/", Target: "lib/oz-v5/token/"},
	}
	target, matched, ambiguous := rs.Apply("src", "@oz/token/ERC20.sol")
	if ambiguous {
		t.Fatal("did not expect ambiguity")
	}
	if !matched || target != "lib/oz-v5/token/ERC20.sol" {
		t.Fatalf("target = %q matched = %v, want lib/oz-v5/token/ERC20.sol", target, matched)
	}
}

func TestRemapSetNoMatch(t *testing.T) {
	rs := RemapSet{{Prefix: "@oz/", Target: "lib/oz/"}}
	_, matched, _ := rs.Apply("src", "@other/Foo.sol")
	if matched {
		t.Fatal("did not expect a match")
	}
}

func TestRemapSetAmbiguous(t *testing.T) {
	rs := RemapSet{
		{Prefix: "@oz/", Target: "lib/oz-a/"},
		{Prefix: "@oz/", Target: "lib/oz-b/"},
	}
	_, matched, ambiguous := rs.Apply("src", "@oz/Foo.sol")
	if !matched || !ambiguous {
		t.Fatalf("matched = %v ambiguous = %v, want true/true", matched, ambiguous)
	}
}

func TestRemapSetContextScoping(t *testing.T) {
	rs := RemapSet{
		{Context: "test", Prefix: "@oz/", Target: "lib/oz-test/"},
	}
	if _, matched, _ := rs.Apply("src/contracts", "@oz/Foo.sol"); matched {
		t.Fatal("remapping scoped to test/ should not apply to src/contracts")
	}
	target, matched, _ := rs.Apply("test/unit", "@oz/Foo.sol")
	if !matched || target != "lib/oz-test/Foo.sol" {
		t.Fatalf("target = %q matched = %v", target, matched)
	}
}
