package classify

import "unicode"

// LetterCounts holds the number of occurrences of each Latin letter in a
// sentence, indexed A=0 through Z=25. Every letter is always present; a
// letter that does not occur has count 0.
type LetterCounts [26]int

// Count upper-cases the sentence rune by rune and counts the letters A-Z.
// Everything else (digits, punctuation, whitespace, accented or non-Latin
// letters, invalid UTF-8) is ignored.
func Count(sentence string) LetterCounts {
	var counts LetterCounts
	for _, r := range sentence {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			counts[r-'A']++
		}
	}
	return counts
}

// Get returns the count for letter, which may be given in either case.
// Runes outside A-Z return 0.
func (c LetterCounts) Get(letter rune) int {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return c[letter-'A']
}

// Total returns the number of letters counted.
func (c LetterCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Map returns the counts keyed by upper-case letter, always with 26 entries.
func (c LetterCounts) Map() map[string]int {
	m := make(map[string]int, len(c))
	for i, n := range c {
		m[string(rune('A'+i))] = n
	}
	return m
}
