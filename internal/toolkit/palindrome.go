package toolkit

import "strings"

// IsPalindrome reports whether s reads the same forwards and backwards.
// Comparison is case-insensitive and ignores spaces; other punctuation is
// significant. The empty string is a palindrome.
func IsPalindrome(s string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(s), " ", "")
	runes := []rune(normalized)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
