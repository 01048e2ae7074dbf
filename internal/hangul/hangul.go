// Package hangul decomposes precomposed Hangul syllables.
package hangul

const (
	syllableBase = 0xAC00
	syllableEnd  = 0xD7A3
	jongN        = 28
	jungN        = 21
)

// Initial consonants in syllable order, as compatibility jamo.
var choseong = [...]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
	'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var initialSet = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(choseong))
	for _, r := range choseong {
		m[r] = struct{}{}
	}
	return m
}()

// IsSyllable reports whether r is a precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableEnd
}

// IsInitial reports whether r is one of the 19 compatibility jamo that can
// start a syllable.
func IsInitial(r rune) bool {
	_, ok := initialSet[r]
	return ok
}

// Chosung returns the initial consonant of a precomposed syllable.
// Anything that is not a syllable yields false.
func Chosung(r rune) (rune, bool) {
	if !IsSyllable(r) {
		return 0, false
	}
	code := int(r) - syllableBase
	return choseong[code/(jongN*jungN)], true
}

// Initials returns the initial consonants in syllable order.
func Initials() []rune {
	return append([]rune(nil), choseong[:]...)
}
