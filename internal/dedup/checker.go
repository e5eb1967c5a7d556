package dedup

import (
	"strings"
	"unicode"

	"github.com/helixir/medline/internal/domain"
)

// Reason names why two citations were judged duplicates.
type Reason string

const (
	ReasonPMID  Reason = "pmid"
	ReasonDOI   Reason = "doi"
	ReasonPMCID Reason = "pmcid"
	ReasonTitle Reason = "title"
)

// CheckerConfig holds the configuration for the duplicate checker.
type CheckerConfig struct {
	// AuthorThreshold is the author overlap at or above which two papers with
	// matching titles and years are considered duplicates (e.g. 0.5).
	AuthorThreshold float64

	// MinTitleLength is the shortest normalized title compared by title.
	// Shorter titles such as "Editorial" are too generic to match on.
	MinTitleLength int
}

// CheckResult contains the result of a duplicate check for a single paper.
type CheckResult struct {
	// IsDuplicate indicates whether the paper duplicates one seen earlier.
	IsDuplicate bool

	// DuplicateOf is the PMID of the earlier paper. Empty if not a duplicate.
	DuplicateOf string

	// Reason is what matched.
	Reason Reason

	// Score is 1 for identifier matches and the author overlap for title matches.
	Score float64
}

type seenPaper struct {
	pmid    string
	year    int
	authors []domain.Author
}

// Checker remembers every paper passed to Check and reports later papers that
// share an identifier or a title with one of them. It is not safe for
// concurrent use.
type Checker struct {
	cfg     CheckerConfig
	byID    map[string]string
	byTitle map[string][]seenPaper
}

// NewChecker creates a new Checker.
func NewChecker(cfg CheckerConfig) *Checker {
	return &Checker{
		cfg:     cfg,
		byID:    make(map[string]string),
		byTitle: make(map[string][]seenPaper),
	}
}

// Check determines whether paper duplicates a paper checked before, then
// records it. Identifier matches (PMID, DOI, PMCID) win over title matches.
// A title match additionally needs the same publication year, when both are
// known, and author overlap at or above the threshold.
func (c *Checker) Check(paper *domain.Paper) CheckResult {
	ids := []struct {
		key    string
		reason Reason
	}{
		{key: idKey("pmid", paper.PMID), reason: ReasonPMID},
		{key: idKey("doi", strings.ToLower(paper.DOI)), reason: ReasonDOI},
		{key: idKey("pmcid", strings.ToUpper(paper.PMCID)), reason: ReasonPMCID},
	}

	var result CheckResult
	for _, id := range ids {
		if id.key == "" {
			continue
		}
		if prev, ok := c.byID[id.key]; ok && !result.IsDuplicate {
			result = CheckResult{IsDuplicate: true, DuplicateOf: prev, Reason: id.reason, Score: 1}
		}
	}

	title := NormalizeTitle(paper.Title)
	if len(title) < c.cfg.MinTitleLength {
		title = ""
	}
	if !result.IsDuplicate && title != "" {
		for _, prev := range c.byTitle[title] {
			if prev.year != 0 && paper.PublicationYear != 0 && prev.year != paper.PublicationYear {
				continue
			}
			overlap := AuthorOverlap(paper.Authors, prev.authors)
			if overlap >= c.cfg.AuthorThreshold && overlap > 0 {
				result = CheckResult{IsDuplicate: true, DuplicateOf: prev.pmid, Reason: ReasonTitle, Score: overlap}
				break
			}
		}
	}

	for _, id := range ids {
		if _, ok := c.byID[id.key]; id.key != "" && !ok {
			c.byID[id.key] = paper.PMID
		}
	}
	if title != "" {
		c.byTitle[title] = append(c.byTitle[title], seenPaper{
			pmid:    paper.PMID,
			year:    paper.PublicationYear,
			authors: paper.Authors,
		})
	}

	return result
}

func idKey(kind, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return kind + ":" + value
}

// NormalizeTitle lowercases title and keeps only letters, digits and single
// spaces, so punctuation and the trailing period MEDLINE adds do not matter.
func NormalizeTitle(title string) string {
	return lettersOnly(strings.ToLower(title), func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}
