package dex

import "testing"

func TestSortTypesCommutative(t *testing.T) {
	x := "0xAB::a::A"
	y := "0xCD::b::B"

	x1, y1 := SortTypes(x, y)
	x2, y2 := SortTypes(y, x)

	if x1 != x2 || y1 != y2 {
		t.Fatalf("sort not commutative: (%s, %s) vs (%s, %s)", x1, y1, x2, y2)
	}
}

func TestTypeLessByteOrder(t *testing.T) {
	if !TypeLess("0xa::m::AAA", "0xa::m::BBB") {
		t.Fatalf("AAA should sort before BBB")
	}
	if TypeLess("0xa::m::BBB", "0xa::m::AAA") {
		t.Fatalf("BBB should not sort before AAA")
	}
}

func TestTypeLessPrefixTie(t *testing.T) {
	// Shorter sorts first when one encoding is a byte-prefix of the other.
	if !TypeLess("0xa::m::COIN", "0xa::m::COINX") {
		t.Fatalf("shorter string should sort first on prefix tie")
	}
	if TypeLess("0xa::m::COINX", "0xa::m::COIN") {
		t.Fatalf("longer string should not sort first on prefix tie")
	}
}

func TestTypeLessEqual(t *testing.T) {
	if TypeLess("0xa::m::A", "0xa::m::A") {
		t.Fatalf("equal types must not compare as less")
	}
}

// The comparison runs over the full length-prefixed encoding, so for short
// strings the length byte participates before any content byte.
func TestTypeLessLengthPrefixParticipates(t *testing.T) {
	if !TypeLess("z", "aa") {
		t.Fatalf("one-byte string should sort before two-byte string")
	}
}

func TestLPName(t *testing.T) {
	name := LPName("0xbb::m::B", "0xaa::m::A")
	if name != "LP-aa::m::A-bb::m::B" {
		t.Fatalf("lp name mismatch: %s", name)
	}

	// Order independent.
	if other := LPName("0xaa::m::A", "0xbb::m::B"); other != name {
		t.Fatalf("lp name not commutative: %s vs %s", other, name)
	}
}

func TestLPType(t *testing.T) {
	x, y, lpType := LPType("0xpkg", "0xbb::m::B", "0xaa::m::A")
	if x != "0xaa::m::A" || y != "0xbb::m::B" {
		t.Fatalf("pair not canonical: (%s, %s)", x, y)
	}
	if lpType != "0xpkg::manage::LP<0xaa::m::A, 0xbb::m::B>" {
		t.Fatalf("lp type mismatch: %s", lpType)
	}
}

func TestRouterTarget(t *testing.T) {
	target := RouterTarget("0xpkg", EntrySwapExactXToY)
	if target != "0xpkg::router::swap_exact_x_to_y" {
		t.Fatalf("target mismatch: %s", target)
	}
}
