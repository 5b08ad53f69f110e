// Package locale resolves &name& macros against the localized string table
package locale

const (
	fnvOffsetBasis uint64 = 0xCBF29CE484222325
	fnvPrime       uint64 = 0x100000001B3
)

// Hash returns the locale table key for a macro name: 64-bit FNV-1a over the
// UTF-8 bytes of name, shifted right by one bit. The shift is part of the key
// scheme used by the stored locale table and must not be dropped.
func Hash(name string) uint64 {
	state := fnvOffsetBasis
	for i := 0; i < len(name); i++ {
		state ^= uint64(name[i])
		state *= fnvPrime
	}
	return state >> 1
}
