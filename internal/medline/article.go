package medline

// Article contains the bibliographic description of the cited work.
// Either Pagination or at least one ELocationID must be present.
type Article struct {
	PubModel PubModel `xml:"PubModel,attr,omitempty" validate:"required,enum"`

	Journal             Journal              `xml:"Journal" validate:"required"`
	ArticleTitle        Markup               `xml:"ArticleTitle" validate:"required"`
	Pagination          *Pagination          `xml:"Pagination" validate:"required_without=ELocationIDs"`
	ELocationIDs        List[ELocationID]    `xml:"ELocationID" validate:"dive"`
	Abstract            *Abstract            `xml:"Abstract"`
	Affiliation         *string              `xml:"Affiliation"`
	AuthorList          *AuthorList          `xml:"AuthorList"`
	Languages           List[string]         `xml:"Language" validate:"min=1"`
	DataBankList        *DataBankList        `xml:"DataBankList"`
	GrantList           *GrantList           `xml:"GrantList"`
	PublicationTypeList *PublicationTypeList `xml:"PublicationTypeList"`
	VernacularTitle     *Markup              `xml:"VernacularTitle"`
	ArticleDates        List[ArticleDate]    `xml:"ArticleDate" validate:"dive"`
}

// Journal identifies the journal issue an article appeared in.
type Journal struct {
	ISSN            *ISSN        `xml:"ISSN"`
	JournalIssue    JournalIssue `xml:"JournalIssue" validate:"required"`
	Title           *string      `xml:"Title"`
	ISOAbbreviation *string      `xml:"ISOAbbreviation"`
}

// ISSN is a journal ISSN tagged with its medium.
type ISSN struct {
	IssnType IssnType `xml:"IssnType,attr,omitempty" validate:"required,enum"`
	Value    string   `xml:",chardata"`
}

// JournalIssue holds volume, issue and publication date.
type JournalIssue struct {
	CitedMedium CitedMedium `xml:"CitedMedium,attr,omitempty" validate:"required,enum"`
	Volume      *string     `xml:"Volume"`
	Issue       *string     `xml:"Issue"`
	PubDate     PubDate     `xml:"PubDate" validate:"required"`
}

// PubDate is the journal issue date. The schema offers three representations:
// Year with optional Month and Day, Year with Season, or a free-text MedlineDate.
// Real documents do not always keep them exclusive, so none is enforced; see Kind.
type PubDate struct {
	Year        *string `xml:"Year"`
	Month       *string `xml:"Month"`
	Day         *string `xml:"Day"`
	Season      *string `xml:"Season"`
	MedlineDate *string `xml:"MedlineDate"`
}

// Pagination is either StartPage with optional EndPage/MedlinePgn, or MedlinePgn alone.
type Pagination struct {
	StartPage  *string `xml:"StartPage" validate:"required_without=MedlinePgn"`
	EndPage    *string `xml:"EndPage"`
	MedlinePgn *string `xml:"MedlinePgn"`
}

// ELocationID is an electronic location identifier (DOI or PII).
type ELocationID struct {
	EIdType EIdType `xml:"EIdType,attr,omitempty" validate:"required,enum"`
	ValidYN YesNo   `xml:"ValidYN,attr,omitempty" validate:"omitempty,enum"`
	Value   string  `xml:",chardata"`
}

// EffectiveValidYN applies the schema default Y.
func (e ELocationID) EffectiveValidYN() YesNo { return orDefault(e.ValidYN, Yes) }

// Abstract is the article abstract, possibly split into labelled sections.
type Abstract struct {
	AbstractTexts        List[AbstractText] `xml:"AbstractText" validate:"min=1,dive"`
	CopyrightInformation *string            `xml:"CopyrightInformation"`
}

// AbstractText is one section of an abstract. Value holds the inner XML,
// inline formatting included.
type AbstractText struct {
	Label       *string     `xml:"Label,attr"`
	NlmCategory NlmCategory `xml:"NlmCategory,attr,omitempty" validate:"omitempty,enum"`
	Value       string      `xml:",innerxml"`
}

// Text returns the section text with inline tags removed.
func (a AbstractText) Text() string { return markupText(a.Value) }

// AuthorList is the ordered author list of an article.
type AuthorList struct {
	CompleteYN YesNo        `xml:"CompleteYN,attr,omitempty" validate:"omitempty,enum"`
	Authors    List[Author] `xml:"Author" validate:"min=1,dive"`
}

// EffectiveCompleteYN applies the schema default Y.
func (l AuthorList) EffectiveCompleteYN() YesNo { return orDefault(l.CompleteYN, Yes) }

// IsComplete reports whether the list names every author.
func (l AuthorList) IsComplete() bool { return l.EffectiveCompleteYN().Bool() }

// Author is a personal or collective author. A personal author carries a LastName,
// a collective one a CollectiveName.
type Author struct {
	ValidYN         YesNo                 `xml:"ValidYN,attr,omitempty" validate:"omitempty,enum"`
	LastName        *string               `xml:"LastName" validate:"required_without=CollectiveName"`
	ForeName        *string               `xml:"ForeName"`
	Initials        *string               `xml:"Initials"`
	Suffix          *string               `xml:"Suffix"`
	CollectiveName  *string               `xml:"CollectiveName"`
	NameIDs         List[NameID]          `xml:"NameID" validate:"dive"`
	Identifiers     List[NameID]          `xml:"Identifier" validate:"dive"`
	AffiliationInfo List[AffiliationInfo] `xml:"AffiliationInfo" validate:"dive"`
}

// EffectiveValidYN applies the schema default Y.
func (a Author) EffectiveValidYN() YesNo { return orDefault(a.ValidYN, Yes) }

// NameID is an external identifier for a person, tagged with the issuing source
// (for example ORCID). The schema declares Source as free text.
type NameID struct {
	Source string `xml:"Source,attr" validate:"required"`
	Value  string `xml:",chardata"`
}

// AffiliationInfo is a per-author affiliation.
type AffiliationInfo struct {
	Affiliation string       `xml:"Affiliation" validate:"required"`
	Identifiers List[NameID] `xml:"Identifier" validate:"dive"`
}

// DataBankList lists the data banks an article deposited data in.
type DataBankList struct {
	CompleteYN YesNo          `xml:"CompleteYN,attr,omitempty" validate:"omitempty,enum"`
	DataBanks  List[DataBank] `xml:"DataBank" validate:"min=1,dive"`
}

// EffectiveCompleteYN applies the schema default Y.
func (l DataBankList) EffectiveCompleteYN() YesNo { return orDefault(l.CompleteYN, Yes) }

// IsComplete reports whether the list is complete.
func (l DataBankList) IsComplete() bool { return l.EffectiveCompleteYN().Bool() }

type DataBank struct {
	DataBankName        string               `xml:"DataBankName" validate:"required"`
	AccessionNumberList *AccessionNumberList `xml:"AccessionNumberList"`
}

type AccessionNumberList struct {
	AccessionNumbers List[string] `xml:"AccessionNumber" validate:"min=1"`
}

// GrantList lists the grants that funded the work.
type GrantList struct {
	CompleteYN YesNo       `xml:"CompleteYN,attr,omitempty" validate:"omitempty,enum"`
	Grants     List[Grant] `xml:"Grant" validate:"min=1,dive"`
}

// EffectiveCompleteYN applies the schema default Y.
func (l GrantList) EffectiveCompleteYN() YesNo { return orDefault(l.CompleteYN, Yes) }

// IsComplete reports whether the list is complete.
func (l GrantList) IsComplete() bool { return l.EffectiveCompleteYN().Bool() }

type Grant struct {
	GrantID *string `xml:"GrantID"`
	Acronym *string `xml:"Acronym"`
	Agency  string  `xml:"Agency" validate:"required"`
	Country string  `xml:"Country" validate:"required"`
}

type PublicationTypeList struct {
	PublicationTypes List[PublicationType] `xml:"PublicationType" validate:"min=1,dive"`
}

// PublicationType is a publication type term such as "Review".
type PublicationType struct {
	UI    *string `xml:"UI,attr"`
	Value string  `xml:",chardata"`
}

// ArticleDate is the electronic publication date.
type ArticleDate struct {
	DateType *string `xml:"DateType,attr"`
	Year     string  `xml:"Year" validate:"required"`
	Month    string  `xml:"Month" validate:"required"`
	Day      string  `xml:"Day" validate:"required"`
}

// EffectiveDateType applies the schema's fixed value "Electronic".
func (d ArticleDate) EffectiveDateType() string {
	if d.DateType == nil {
		return "Electronic"
	}
	return *d.DateType
}
