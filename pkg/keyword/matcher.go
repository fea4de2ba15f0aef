// Package keyword finds whole-word, case-insensitive keyword occurrences in text.
package keyword

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of compiled patterns kept in memory.
const DefaultCacheSize = 2048

// Matcher matches keywords on word boundaries. It is safe for concurrent use.
type Matcher struct {
	patterns *lru.Cache[string, *regexp.Regexp]
}

// NewMatcher creates a Matcher caching up to size compiled patterns.
func NewMatcher(size int) *Matcher {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &Matcher{patterns: cache}
}

var defaultMatcher = NewMatcher(DefaultCacheSize)

// Match runs the package default Matcher.
func Match(text string, keywords []string) []string {
	return defaultMatcher.Match(text, keywords)
}

// Contains reports whether kw occurs in text as a whole word.
func Contains(text, kw string) bool {
	return defaultMatcher.Contains(text, kw)
}

// Match returns every keyword occurring in text as a whole word, in the order
// the keywords were given. Empty text or keywords yields nil.
func (m *Matcher) Match(text string, keywords []string) []string {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return nil
	}

	var found []string
	for _, kw := range keywords {
		if m.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// Contains reports whether kw occurs in text as a whole word.
func (m *Matcher) Contains(text, kw string) bool {
	kw = strings.TrimSpace(kw)
	if kw == "" || text == "" {
		return false
	}
	return m.pattern(kw).MatchString(text)
}

func (m *Matcher) pattern(kw string) *regexp.Regexp {
	key := strings.ToLower(kw)
	if re, ok := m.patterns.Get(key); ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	m.patterns.Add(key, re)
	return re
}
