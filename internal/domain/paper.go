// Package domain provides the flattened paper records derived from MEDLINE citations.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// paperNamespace seeds the name-based UUIDs derived from canonical IDs.
var paperNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://pubmed.ncbi.nlm.nih.gov/"))

// PaperIdentifiers holds the identifiers a PubMed record can carry.
type PaperIdentifiers struct {
	DOI      string
	PubMedID string
	PMCID    string
}

// GenerateCanonicalID generates a canonical identifier from paper identifiers.
// Priority order: DOI > PubMed > PMC
// Returns empty string if no identifiers are available.
func GenerateCanonicalID(ids PaperIdentifiers) string {
	if doi := strings.TrimSpace(ids.DOI); doi != "" {
		// DOIs are case-insensitive
		return "doi:" + strings.ToLower(doi)
	}

	if pmid := strings.TrimSpace(ids.PubMedID); pmid != "" {
		return "pubmed:" + pmid
	}

	if pmc := strings.TrimSpace(ids.PMCID); pmc != "" {
		return "pmc:" + strings.ToUpper(pmc)
	}

	return ""
}

// PaperID returns a stable UUID for a canonical identifier, so the same record
// summarized twice gets the same ID.
func PaperID(canonicalID string) uuid.UUID {
	return uuid.NewSHA1(paperNamespace, []byte(canonicalID))
}

// Author represents a paper author with optional affiliation and ORCID.
type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty"`
}

// String returns a formatted string representation of the author.
func (a Author) String() string {
	var sb strings.Builder
	sb.WriteString(a.Name)

	if a.Affiliation != "" {
		sb.WriteString(" (")
		sb.WriteString(a.Affiliation)
		sb.WriteString(")")
	}

	if a.ORCID != "" {
		sb.WriteString(" [")
		sb.WriteString(a.ORCID)
		sb.WriteString("]")
	}

	return sb.String()
}

// Paper is the flattened summary of one citation, written as a JSON line by
// the summary command.
type Paper struct {
	ID               uuid.UUID  `json:"id"`
	CanonicalID      string     `json:"canonical_id"`
	PMID             string     `json:"pmid"`
	DOI              string     `json:"doi,omitempty"`
	PMCID            string     `json:"pmcid,omitempty"`
	Title            string     `json:"title"`
	Abstract         string     `json:"abstract,omitempty"`
	Authors          []Author   `json:"authors,omitempty"`
	PublicationDate  *time.Time `json:"publication_date,omitempty"`
	PublicationYear  int        `json:"publication_year,omitempty"`
	Journal          string     `json:"journal,omitempty"`
	JournalAbbrev    string     `json:"journal_abbrev,omitempty"`
	Volume           string     `json:"volume,omitempty"`
	Issue            string     `json:"issue,omitempty"`
	Pages            string     `json:"pages,omitempty"`
	Languages        []string   `json:"languages,omitempty"`
	PublicationTypes []string   `json:"publication_types,omitempty"`
	MeshTerms        []string   `json:"mesh_terms,omitempty"`
	MajorTopics      []string   `json:"major_topics,omitempty"`
	Keywords         []string   `json:"keywords,omitempty"`
	CitationStatus   string     `json:"citation_status"`
	PubStatus        string     `json:"publication_status,omitempty"`
	Retracted        bool       `json:"retracted,omitempty"`
	OpenAccess       bool       `json:"open_access,omitempty"`
}

// HasIdentifier returns true if the paper has at least one identifier.
func (p *Paper) HasIdentifier() bool {
	return p.CanonicalID != ""
}
