package indices

// An index packs a name, a type tag and a raised/lowered state into an int:
//
//	bit  30     raised (upper) index
//	bits 24..29 type tag
//	bits 0..15  name
//
// Bits 16..23 are unused, and indices are never negative.
const (
	nameMask   = 0xFFFF
	tagShift   = 24
	tagMask    = 0x3F
	raisedMask = 1 << 30

	// MaxName is the largest name an index can carry.
	MaxName = nameMask
	// MaxTag is the largest type tag an index can carry.
	MaxTag = tagMask
)

// Make builds a lowered index with the given type tag and name.
func Make(tag byte, name int) int {
	return int(tag&tagMask)<<tagShift | name&nameMask
}

// Name returns the name of an index.
func Name(index int) int {
	return index & nameMask
}

// Tag returns the type tag of an index.
func Tag(index int) byte {
	return byte((index >> tagShift) & tagMask)
}

// Raised reports whether index is an upper index.
func Raised(index int) bool {
	return index&raisedMask != 0
}

// Raise returns index as an upper index.
func Raise(index int) int {
	return index | raisedMask
}

// Lower returns index as a lower index.
func Lower(index int) int {
	return index &^ raisedMask
}
