// Package summary flattens MEDLINE records into domain.Paper values.
package summary

import (
	"strconv"
	"strings"
	"time"

	"github.com/helixir/medline/internal/domain"
	"github.com/helixir/medline/internal/medline"
)

// FromArticle converts a PubmedArticle to a domain.Paper.
func FromArticle(article medline.PubmedArticle) *domain.Paper {
	paper := FromCitation(article.MedlineCitation)

	paper.DOI = article.DOI()
	paper.PMCID = article.PMCID()
	if article.PubmedData != nil {
		paper.PubStatus = article.PubmedData.PublicationStatus
	}
	// PMC deposits are free to read.
	paper.OpenAccess = paper.PMCID != ""

	setIdentity(paper)
	return paper
}

// FromCitation converts a MedlineCitation to a domain.Paper. Identifiers that
// only PubmedData carries (PMC, ArticleIdList DOIs) are not available here.
func FromCitation(citation medline.MedlineCitation) *domain.Paper {
	article := citation.Article

	pubDate, pubYear := extractPublicationDate(article)

	journal := deref(article.Journal.Title)
	abbrev := deref(article.Journal.ISOAbbreviation)
	if abbrev == "" {
		abbrev = citation.MedlineJournalInfo.MedlineTA
	}
	if journal == "" {
		journal = abbrev
	}

	paper := &domain.Paper{
		PMID:             citation.PMID.Value,
		DOI:              extractDOI(article),
		Title:            strings.TrimSpace(article.ArticleTitle.Text()),
		Abstract:         extractAbstract(article.Abstract),
		Authors:          extractAuthors(article.AuthorList),
		PublicationDate:  pubDate,
		PublicationYear:  pubYear,
		Journal:          journal,
		JournalAbbrev:    abbrev,
		Volume:           deref(article.Journal.JournalIssue.Volume),
		Issue:            deref(article.Journal.JournalIssue.Issue),
		Pages:            extractPages(article.Pagination),
		Languages:        article.Languages,
		PublicationTypes: extractPublicationTypes(article.PublicationTypeList),
		MeshTerms:        extractMeshTerms(citation.MeshHeadingList),
		MajorTopics:      citation.MajorTopics(),
		Keywords:         extractKeywords(citation.KeywordLists),
		CitationStatus:   string(citation.Status),
		Retracted:        citation.IsRetracted(),
	}

	setIdentity(paper)
	return paper
}

func setIdentity(p *domain.Paper) {
	p.CanonicalID = domain.GenerateCanonicalID(domain.PaperIdentifiers{
		DOI:      p.DOI,
		PubMedID: p.PMID,
		PMCID:    p.PMCID,
	})
	if p.HasIdentifier() {
		p.ID = domain.PaperID(p.CanonicalID)
	}
}

// extractDOI returns the first valid DOI ELocationID.
func extractDOI(article medline.Article) string {
	for _, eloc := range article.ELocationIDs {
		if eloc.EIdType == medline.EIdTypeDOI && eloc.EffectiveValidYN().Bool() {
			return strings.TrimSpace(eloc.Value)
		}
	}
	return ""
}

// extractPublicationDate extracts the publication date from the article.
// Returns the parsed date and year. Uses ArticleDate if available, otherwise PubDate.
func extractPublicationDate(article medline.Article) (*time.Time, int) {
	// ArticleDate is more precise
	for _, ad := range article.ArticleDates {
		if ad.EffectiveDateType() != "Electronic" {
			continue
		}
		if t, err := ad.Time(); err == nil {
			return &t, t.Year()
		}
	}

	pubDate := article.Journal.JournalIssue.PubDate
	year, ok := pubDate.PublicationYear()
	if !ok {
		return nil, 0
	}

	month := time.January
	day := 1
	if pubDate.Kind() == medline.PubDateYMD {
		if pubDate.Month != nil {
			if m, ok := medline.ParseMonth(*pubDate.Month); ok {
				month = m
			}
		}
		if pubDate.Day != nil {
			if d, err := strconv.Atoi(strings.TrimSpace(*pubDate.Day)); err == nil && d >= 1 && d <= 31 {
				day = d
			}
		}
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t, year
}

// extractAbstract concatenates multiple abstract sections into a single string.
func extractAbstract(abstract *medline.Abstract) string {
	if abstract == nil || abstract.AbstractTexts.Len() == 0 {
		return ""
	}

	// If only one section without label, return it directly
	if abstract.AbstractTexts.Len() == 1 && deref(abstract.AbstractTexts[0].Label) == "" {
		return strings.TrimSpace(abstract.AbstractTexts[0].Text())
	}

	var parts []string
	for _, at := range abstract.AbstractTexts {
		text := strings.TrimSpace(at.Text())
		if text == "" {
			continue
		}
		if label := deref(at.Label); label != "" {
			parts = append(parts, label+": "+text)
		} else {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

// extractAuthors converts MEDLINE authors to domain authors.
func extractAuthors(authorList *medline.AuthorList) []domain.Author {
	if authorList == nil || authorList.Authors.Len() == 0 {
		return nil
	}

	authors := make([]domain.Author, 0, authorList.Authors.Len())
	for _, a := range authorList.Authors {
		if !a.EffectiveValidYN().Bool() {
			continue
		}

		name := a.DisplayName()
		if name == "" {
			continue
		}

		var affiliation string
		if len(a.AffiliationInfo) > 0 {
			affiliation = strings.TrimSpace(a.AffiliationInfo[0].Affiliation)
		}

		authors = append(authors, domain.Author{
			Name:        name,
			Affiliation: affiliation,
			ORCID:       findORCID(a),
		})
	}

	return authors
}

func findORCID(a medline.Author) string {
	for _, ids := range []medline.List[medline.NameID]{a.Identifiers, a.NameIDs} {
		for _, id := range ids {
			if strings.EqualFold(id.Source, "ORCID") {
				return strings.TrimSpace(id.Value)
			}
		}
	}
	return ""
}

// extractPages formats the page information.
func extractPages(pagination *medline.Pagination) string {
	if pagination == nil {
		return ""
	}

	if pgn := deref(pagination.MedlinePgn); pgn != "" {
		return pgn
	}

	start := deref(pagination.StartPage)
	end := deref(pagination.EndPage)
	if start != "" {
		if end != "" && end != start {
			return start + "-" + end
		}
		return start
	}

	return ""
}

func extractPublicationTypes(ptl *medline.PublicationTypeList) []string {
	if ptl == nil {
		return nil
	}
	out := make([]string, 0, ptl.PublicationTypes.Len())
	for _, pt := range ptl.PublicationTypes {
		out = append(out, strings.TrimSpace(pt.Value))
	}
	return out
}

func extractMeshTerms(mhl *medline.MeshHeadingList) []string {
	if mhl == nil {
		return nil
	}
	out := make([]string, 0, mhl.MeshHeadings.Len())
	for _, mh := range mhl.MeshHeadings {
		out = append(out, mh.DescriptorName.Value)
	}
	return out
}

func extractKeywords(lists medline.List[medline.KeywordList]) []string {
	var all []string
	for _, kl := range lists {
		for _, kw := range kl.Keywords {
			all = append(all, kw.Value)
		}
	}
	return domain.UniqueKeywords(all)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
