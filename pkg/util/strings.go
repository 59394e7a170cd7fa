package util

import "strings"

// DigitsOnly strips every non-digit character from s.
// The intake form applies this to phone input before validation, so only
// bare digits ever reach the phone field.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitTags turns a comma-separated tag string into a list of trimmed,
// non-empty tokens. Order is preserved.
func SplitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags is the inverse of SplitTags for trimmed tokens.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// YesNo renders a boolean the way the submissions sheet expects it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
