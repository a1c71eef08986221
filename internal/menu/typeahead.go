package menu

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const defaultTypeaheadTimeout = 500 * time.Millisecond

type typeahead struct {
	timeout time.Duration
	now     func() time.Time
	query   string
	last    time.Time
}

func newTypeahead(timeout time.Duration, now func() time.Time) *typeahead {
	if timeout <= 0 {
		timeout = defaultTypeaheadTimeout
	}
	return &typeahead{timeout: timeout, now: now}
}

func isTypeaheadKey(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func (t *typeahead) push(key string) string {
	now := t.now()
	if t.query != "" && now.Sub(t.last) > t.timeout {
		t.query = ""
	}
	t.last = now
	t.query += key
	return t.query
}

func (t *typeahead) reset() {
	t.query = ""
	t.last = time.Time{}
}

// match returns the index of the item to focus for query, or -1. A single
// character cycles through items starting after current; longer queries
// keep current when it still matches. Prefix matches win over fuzzy ones.
func (t *typeahead) match(query string, labels []string, current int) int {
	n := len(labels)
	if n == 0 || query == "" {
		return -1
	}
	start := current
	if start < 0 {
		start = 0
	} else if utf8.RuneCountInString(query) == 1 {
		start = (current + 1) % n
	}
	lowered := strings.ToLower(query)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if strings.HasPrefix(strings.ToLower(labels[idx]), lowered) {
			return idx
		}
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if fuzzy.MatchFold(query, labels[idx]) {
			return idx
		}
	}
	return -1
}
