package huffman

import "cmp"

// Symbol is the constraint on alphabet members. The natural order of the
// type breaks ties between equally weighted leaves, so it must be total:
// floating-point alphabets must not contain NaN.
//
// Any type whose underlying type is an integer, float or string qualifies,
// named types included. Structs and other composite types do not; map them
// to such a type (an index, a key string) before coding.
type Symbol interface {
	cmp.Ordered
}
