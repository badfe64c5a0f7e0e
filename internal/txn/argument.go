package txn

// ArgKind discriminates the Argument union.
type ArgKind string

const (
	ArgObject ArgKind = "object"
	ArgU64    ArgKind = "u64"
	ArgResult ArgKind = "result"
)

// Argument is one move call argument: a shared/owned object id, a pure u64
// value, or a reference to an earlier command's result.
type Argument struct {
	Kind   ArgKind `json:"kind"`
	Object string  `json:"object,omitempty"`
	U64    uint64  `json:"u64,omitempty"`
	Result int     `json:"result,omitempty"`
}

// Object references an on-chain object by id.
func Object(id string) Argument {
	return Argument{Kind: ArgObject, Object: id}
}

// U64 passes a pure unsigned 64-bit value.
func U64(v uint64) Argument {
	return Argument{Kind: ArgU64, U64: v}
}

// Result references the output of the command at the given plan index.
func Result(index int) Argument {
	return Argument{Kind: ArgResult, Result: index}
}
