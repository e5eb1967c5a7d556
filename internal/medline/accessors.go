package medline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PMID returns the citation's PubMed identifier.
func (a PubmedArticle) PMID() string { return a.MedlineCitation.PMID.Value }

// DOI returns the article DOI. A DOI ELocationID not flagged invalid wins over
// the ArticleIdList entry.
func (a PubmedArticle) DOI() string {
	for _, eloc := range a.MedlineCitation.Article.ELocationIDs {
		if eloc.EIdType == EIdTypeDOI && eloc.EffectiveValidYN().Bool() {
			return eloc.Value
		}
	}
	return a.ArticleID(ArticleIdTypeDOI)
}

// PMCID returns the PubMed Central identifier, including its "PMC" prefix.
func (a PubmedArticle) PMCID() string { return a.ArticleID(ArticleIdTypePMC) }

// ArticleID returns the first identifier of the given type from PubmedData.
func (a PubmedArticle) ArticleID(t ArticleIdType) string {
	if a.PubmedData == nil {
		return ""
	}
	for _, id := range a.PubmedData.ArticleIdList.ArticleIds {
		if id.EffectiveIdType() == t {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}

// MajorTopics returns descriptor names flagged as major topics, either on the
// descriptor itself or on any of its qualifiers.
func (c MedlineCitation) MajorTopics() []string {
	if c.MeshHeadingList == nil {
		return nil
	}
	var topics []string
	for _, mh := range c.MeshHeadingList.MeshHeadings {
		major := mh.DescriptorName.IsMajorTopic()
		for _, q := range mh.QualifierNames {
			major = major || q.IsMajorTopic()
		}
		if major {
			topics = append(topics, mh.DescriptorName.Value)
		}
	}
	return topics
}

// HasPublicationType reports whether the article carries the named publication
// type. The comparison ignores case.
func (c MedlineCitation) HasPublicationType(name string) bool {
	ptl := c.Article.PublicationTypeList
	if ptl == nil {
		return false
	}
	for _, pt := range ptl.PublicationTypes {
		if strings.EqualFold(strings.TrimSpace(pt.Value), name) {
			return true
		}
	}
	return false
}

func (c MedlineCitation) IsReview() bool { return c.HasPublicationType("Review") }

// IsRetraction reports whether the citation is itself a retraction notice.
func (c MedlineCitation) IsRetraction() bool {
	return c.HasPublicationType("Retraction of Publication") || c.hasRef(RefTypeRetractionOf)
}

// IsRetracted reports whether the article has been retracted.
func (c MedlineCitation) IsRetracted() bool {
	return c.HasPublicationType("Retracted Publication") || c.hasRef(RefTypeRetractionIn)
}

// RetractedInPMID returns the PMID of the retraction notice, if linked.
func (c MedlineCitation) RetractedInPMID() string {
	if c.CommentsCorrectionsList == nil {
		return ""
	}
	for _, cc := range c.CommentsCorrectionsList.CommentsCorrections {
		if cc.RefType == RefTypeRetractionIn && cc.PMID != nil {
			return cc.PMID.Value
		}
	}
	return ""
}

func (c MedlineCitation) hasRef(t RefType) bool {
	if c.CommentsCorrectionsList == nil {
		return false
	}
	for _, cc := range c.CommentsCorrectionsList.CommentsCorrections {
		if cc.RefType == t {
			return true
		}
	}
	return false
}

// DisplayName returns the collective name, or "ForeName LastName".
func (a Author) DisplayName() string {
	if a.CollectiveName != nil && *a.CollectiveName != "" {
		return *a.CollectiveName
	}
	parts := make([]string, 0, 2)
	if a.ForeName != nil && *a.ForeName != "" {
		parts = append(parts, *a.ForeName)
	}
	if a.LastName != nil && *a.LastName != "" {
		parts = append(parts, *a.LastName)
	}
	return strings.Join(parts, " ")
}

// PubDateKind identifies which PubDate representation is populated.
type PubDateKind int

const (
	PubDateEmpty PubDateKind = iota
	PubDateYMD
	PubDateSeason
	PubDateMedline
)

func (k PubDateKind) String() string {
	switch k {
	case PubDateYMD:
		return "ymd"
	case PubDateSeason:
		return "season"
	case PubDateMedline:
		return "medline"
	default:
		return "empty"
	}
}

// Kind reports the populated representation. MedlineDate wins over Season,
// which wins over a bare Year/Month/Day.
func (d PubDate) Kind() PubDateKind {
	switch {
	case d.MedlineDate != nil:
		return PubDateMedline
	case d.Season != nil:
		return PubDateSeason
	case d.Year != nil:
		return PubDateYMD
	default:
		return PubDateEmpty
	}
}

// PublicationYear returns the year of publication. For MedlineDate values such
// as "1998 Dec-1999 Jan" or "2020-2021" the leading year is used.
func (d PubDate) PublicationYear() (int, bool) {
	if d.Year != nil {
		if y, err := strconv.Atoi(strings.TrimSpace(*d.Year)); err == nil {
			return y, true
		}
	}
	if d.MedlineDate != nil {
		if y := leadingYear(*d.MedlineDate); y > 0 {
			return y, true
		}
	}
	return 0, false
}

func leadingYear(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	head, _, _ := strings.Cut(fields[0], "-")
	y, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return y
}

// Time returns the date at midnight UTC.
func (d Date) Time() (time.Time, error) {
	return ymd(d.Year, d.Month, d.Day)
}

// Time returns the date at midnight UTC.
func (d ArticleDate) Time() (time.Time, error) {
	return ymd(d.Year, d.Month, d.Day)
}

// Time returns the event time in UTC. Missing hour, minute or second count as zero.
func (d PubMedPubDate) Time() (time.Time, error) {
	t, err := ymd(d.Year, d.Month, d.Day)
	if err != nil {
		return time.Time{}, err
	}
	var clock [3]int
	for i, p := range []*string{d.Hour, d.Minute, d.Second} {
		if p == nil {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(*p))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse time %q: %w", *p, err)
		}
		clock[i] = n
	}
	return t.Add(time.Duration(clock[0])*time.Hour +
		time.Duration(clock[1])*time.Minute +
		time.Duration(clock[2])*time.Second), nil
}

func ymd(year, month, day string) (time.Time, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %w", year, err)
	}
	m, ok := ParseMonth(month)
	if !ok {
		return time.Time{}, fmt.Errorf("parse month %q", month)
	}
	dd, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", day, err)
	}
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC), nil
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseMonth parses a MEDLINE month: a number 1-12, a three-letter
// abbreviation or a full English name.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}
	m, ok := monthNames[strings.ToLower(s)]
	return m, ok
}
