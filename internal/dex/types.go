package dex

import "strings"

// The on-chain registry indexes pools by the canonical (X, Y) ordering of
// their coin types. The contract derives that ordering from the BCS
// serialization of the type name, so the client must compare the same
// length-prefixed bytes or pool lookups miss.

// bcsString encodes a string the way BCS does: ULEB128 length prefix
// followed by the raw bytes.
func bcsString(s string) []byte {
	raw := []byte(s)
	out := make([]byte, 0, len(raw)+2)
	n := uint(len(raw))
	for {
		c := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			out = append(out, c)
			break
		}
		out = append(out, c|0x80)
	}
	return append(out, raw...)
}

func bytesLess(left, right []byte) bool {
	min := len(left)
	if len(right) < min {
		min = len(right)
	}
	for i := 0; i < min; i++ {
		if left[i] < right[i] {
			return true
		}
		if left[i] > right[i] {
			return false
		}
	}
	return len(left) < len(right)
}

// TypeLess reports whether coin type x sorts before coin type y under the
// on-chain ordering.
func TypeLess(x, y string) bool {
	return bytesLess(bcsString(x), bcsString(y))
}

// SortTypes returns the pair in canonical (X, Y) order regardless of
// argument order.
func SortTypes(x, y string) (string, string) {
	if TypeLess(x, y) {
		return x, y
	}
	return y, x
}

// LPName derives the registry key for a pair: "LP-X-Y" over the canonical
// ordering, with any leading "0x" stripped from each member.
func LPName(x, y string) string {
	x = strings.TrimPrefix(x, "0x")
	y = strings.TrimPrefix(y, "0x")
	x, y = SortTypes(x, y)
	return "LP-" + x + "-" + y
}

// LPType returns the canonical pair together with the fully qualified LP
// coin type minted by the manage module.
func LPType(packageID, x, y string) (string, string, string) {
	x, y = SortTypes(x, y)
	return x, y, packageID + "::manage::LP<" + x + ", " + y + ">"
}
