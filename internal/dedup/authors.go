// Package dedup finds citations that describe the same paper: records sharing
// an identifier, or records whose titles match and whose author lists overlap.
package dedup

import (
	"strings"
	"unicode"

	"github.com/helixir/medline/internal/domain"
)

// personName is a normalized author name split into given names and surname.
type personName struct {
	given []string
	last  string
}

func parseName(name string) personName {
	fields := strings.Fields(NormalizeName(name))
	if len(fields) == 0 {
		return personName{}
	}
	return personName{given: fields[:len(fields)-1], last: fields[len(fields)-1]}
}

// NormalizeName lowercases name, rewrites "Last, First" as "First Last",
// drops everything but letters and single spaces.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if last, first, ok := strings.Cut(name, ","); ok {
		name = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	}
	return lettersOnly(name, unicode.IsLetter)
}

// lettersOnly keeps runes accepted by keep and collapses whitespace runs.
func lettersOnly(s string, keep func(rune) bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case keep(r):
			if space && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
			space = false
		case unicode.IsSpace(r):
			space = true
		}
	}
	return sb.String()
}

// similarity scores two parsed names:
// 1.0 same surname and given names, 0.9 when one given name is the other's
// initial, 0.7 when either lacks given names, 0.3 for other given names with
// the same surname, 0 otherwise.
func (a personName) similarity(b personName) float64 {
	if a.last == "" || a.last != b.last {
		return 0
	}
	if len(a.given) == 0 || len(b.given) == 0 {
		return 0.7
	}
	if strings.Join(a.given, " ") == strings.Join(b.given, " ") {
		return 1
	}
	if initialOf(a.given[0], b.given[0]) || initialOf(b.given[0], a.given[0]) {
		return 0.9
	}
	return 0.3
}

// initialOf reports whether short is the single-letter initial of long.
func initialOf(short, long string) bool {
	return len(short) == 1 && len(long) > 1 && short[0] == long[0]
}

// AuthorOverlap scores how much two author lists agree, from 0 (nothing in
// common or either list empty) to 1 (identical). Each author of the shorter
// list is greedily paired with its best unmatched counterpart; the summed
// pair scores are divided by the size of the union.
func AuthorOverlap(a, b []domain.Author) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	short, long := parseAuthors(a), parseAuthors(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	taken := make([]bool, len(long))
	var total float64
	pairs := 0
	for _, name := range short {
		best, bestIdx := 0.0, -1
		for j, other := range long {
			if taken[j] {
				continue
			}
			if s := name.similarity(other); s > best {
				best, bestIdx = s, j
			}
		}
		if bestIdx >= 0 {
			taken[bestIdx] = true
			total += best
			pairs++
		}
	}

	return total / float64(len(short)+len(long)-pairs)
}

func parseAuthors(authors []domain.Author) []personName {
	names := make([]personName, len(authors))
	for i, a := range authors {
		names[i] = parseName(a.Name)
	}
	return names
}
