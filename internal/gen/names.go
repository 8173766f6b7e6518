package gen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// exported converts an XML name to an exported Go identifier, e.g.
// "first-name" to "FirstName". Returns an empty string if name contains
// no letters or digits.
func exported(name string) string {
	id := pascal(name)
	if first, _ := utf8.DecodeRuneInString(id); len(id) > 0 && !unicode.IsUpper(first) {
		id = "X" + id
	}

	return id
}

// pascal drops everything but letters and digits from name and upper
// cases the first letter of every remaining word.
func pascal(name string) string {
	var b strings.Builder
	upper := true

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}

		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

func firstLower(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(first)) + s[size:]
}

// scope hands out unique identifiers within a package or a struct.
type scope struct {
	used map[string]bool
}

func newScope(reserved ...string) *scope {
	s := &scope{used: make(map[string]bool)}

	for _, r := range reserved {
		s.used[r] = true
	}

	return s
}

// add reserves id, or id with the smallest numeric suffix that is still
// free, and returns it. fallback is used when id is empty.
func (s *scope) add(id string, fallback string) string {
	if len(id) == 0 {
		id = fallback
	}

	unique := id
	for i := 2; s.used[unique]; i += 1 {
		unique = fmt.Sprintf("%s%d", id, i)
	}

	s.used[unique] = true
	return unique
}
