package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5551234567", DigitsOnly("(555) 123-4567 ext"))
	assert.Equal(t, "5551234567", DigitsOnly("5551234567"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
	assert.Equal(t, "123", DigitsOnly(" 1-2-3 "))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTags("a, b ,c"))
	assert.Equal(t, []string{"solo"}, SplitTags("solo"))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{}, SplitTags(" , ,, "))
}

func TestJoinTags_RoundTrip(t *testing.T) {
	// Re-joining the split result must be lossless for trimmed tokens.
	tags := SplitTags("a, b ,c")
	joined := JoinTags(tags)
	assert.Equal(t, "a, b, c", joined)
	assert.Equal(t, tags, SplitTags(joined))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}
