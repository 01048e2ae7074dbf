package mnemonic

import "strconv"

// djb2 over the UTF-8 bytes of s, wrapped to 32 bits.
func djb2(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// DeriveFixedLength returns exactly length digits derived from word. The
// encoded word is used first; a hash of the word fills in when nothing
// encodes, and hashes of word+digits extend short results.
func DeriveFixedLength(word string, length int) string {
	if length <= 0 {
		return ""
	}
	digits := Encode(word)
	if digits == "" {
		digits = strconv.FormatUint(uint64(djb2(word)), 10)
	}
	for len(digits) < length {
		digits += strconv.FormatUint(uint64(djb2(word+digits)), 10)
	}
	return digits[:length]
}
