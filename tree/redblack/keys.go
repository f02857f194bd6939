package redblack

import "strings"

// Reverse returns a compare func that orders keys opposite to "compare".
// Passing it to NewFunc() makes Min() return the largest key, Floor() become
// a ceiling, and so on.
func Reverse[K any](compare func(a, b K) int) func(a, b K) int {
	return func(a, b K) int {
		return compare(b, a)
	}
}

// FoldString orders strings by their lower case form, so keys differing only in
// case are the same key and the last one stored wins its value.
func FoldString(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
