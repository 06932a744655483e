package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Category", "my-category"},
		{"Hello, World!", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
		{"Go 1.25 Released", "go-1-25-released"},
		{"ALLCAPS", "allcaps"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.title), "Make(%q)", tt.title)
	}
}

func TestWithSuffixFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^my-post-[0-9a-f]{2}$`)
	s := WithSuffix("My Post")
	assert.True(t, pattern.MatchString(s), "unexpected slug %q", s)
	assert.True(t, strings.HasPrefix(s, Make("My Post")+"-"))
}

func TestWithSuffixDistinct(t *testing.T) {
	// 2 hex chars give 256 values; 50 draws should produce at least a few
	// distinct slugs even with collisions.
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[WithSuffix("Duplicate Title")] = true
	}
	assert.Greater(t, len(seen), 1)
}
