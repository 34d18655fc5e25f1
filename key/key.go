// Package key provides 64-bit identifiers for the unknowns in an
// estimation problem, plus the symbol encoding that packs a one-character
// namespace tag and an integer index into a single identifier.
package key

import (
	"fmt"
	"strconv"
)

// Key identifies one unknown. Keys are totally ordered by their numeric
// value; stores and graphs iterate them in ascending order.
type Key uint64

// indexBits is the number of low bits reserved for the symbol index.
// The top 8 bits carry the tag character.
const indexBits = 56

const indexMask = (Key(1) << indexBits) - 1

// Symbol pairs a single-character tag with an integer index, e.g. poses
// under 'x' and landmarks under 'l'.
type Symbol struct {
	Chr   byte
	Index uint64
}

// NewSymbol builds a Symbol from a tag character and index.
func NewSymbol(chr byte, index uint64) Symbol {
	return Symbol{Chr: chr, Index: index}
}

// Key packs the symbol into a single identifier. Indices wider than 56
// bits are truncated; callers must bound their index ranges.
func (s Symbol) Key() Key {
	return Key(s.Chr)<<indexBits | (Key(s.Index) & indexMask)
}

func (s Symbol) String() string {
	return fmt.Sprintf("%c%d", s.Chr, s.Index)
}

// Symbol decodes the tag character and index from a key. Keys built from
// raw indices decode with a zero tag.
func (k Key) Symbol() Symbol {
	return Symbol{Chr: byte(k >> indexBits), Index: uint64(k & indexMask)}
}

// String renders symbolic keys as tag+index (e.g. "x7") and raw keys as
// their decimal value.
func (k Key) String() string {
	s := k.Symbol()
	if s.Chr >= 'A' && s.Chr <= 'z' {
		return s.String()
	}
	return strconv.FormatUint(uint64(k), 10)
}

// FromIndices converts raw indices to keys, preserving input order.
func FromIndices(indices []uint64) []Key {
	keys := make([]Key, len(indices))
	for i, j := range indices {
		keys[i] = Key(j)
	}
	return keys
}

// FromSymbolIndices converts indices to symbolic keys under the given
// tag, preserving input order. Only the first byte of tag is used; longer
// tags are silently truncated to their first character.
func FromSymbolIndices(tag string, indices []uint64) []Key {
	c := tag[0]
	keys := make([]Key, len(indices))
	for i, j := range indices {
		keys[i] = NewSymbol(c, j).Key()
	}
	return keys
}

// SetFromIndices converts raw indices to an unordered key set.
func SetFromIndices(indices []uint64) map[Key]struct{} {
	set := make(map[Key]struct{}, len(indices))
	for _, j := range indices {
		set[Key(j)] = struct{}{}
	}
	return set
}

// SetFromSymbolIndices converts indices to an unordered set of symbolic
// keys under the first byte of tag.
func SetFromSymbolIndices(tag string, indices []uint64) map[Key]struct{} {
	c := tag[0]
	set := make(map[Key]struct{}, len(indices))
	for _, j := range indices {
		set[NewSymbol(c, j).Key()] = struct{}{}
	}
	return set
}
