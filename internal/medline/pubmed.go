package medline

import "encoding/xml"

// PubmedArticleSet is the root of an efetch/baseline article export.
type PubmedArticleSet struct {
	XMLName        xml.Name            `xml:"PubmedArticleSet" json:"-"`
	PubmedArticles List[PubmedArticle] `xml:"PubmedArticle" validate:"dive"`
}

// PubmedArticle pairs a citation with its PubMed processing data.
type PubmedArticle struct {
	MedlineCitation MedlineCitation `xml:"MedlineCitation" validate:"required"`
	PubmedData      *PubmedData     `xml:"PubmedData"`
}

// PubmedData holds PubMed's processing history and identifiers for an article.
type PubmedData struct {
	History           *History            `xml:"History"`
	PublicationStatus string              `xml:"PublicationStatus" validate:"required"`
	ArticleIdList     ArticleIdList       `xml:"ArticleIdList" validate:"required"`
	ObjectList        *ObjectList         `xml:"ObjectList"`
	ReferenceLists    List[ReferenceList] `xml:"ReferenceList" validate:"dive"`
}

type History struct {
	PubMedPubDates List[PubMedPubDate] `xml:"PubMedPubDate" validate:"min=1,dive"`
}

// PubMedPubDate is a dated processing event such as "received" or "entrez".
type PubMedPubDate struct {
	PubStatus PubStatus `xml:"PubStatus,attr,omitempty" validate:"required,enum"`
	Year      string    `xml:"Year" validate:"required"`
	Month     string    `xml:"Month" validate:"required"`
	Day       string    `xml:"Day" validate:"required"`
	Hour      *string   `xml:"Hour"`
	Minute    *string   `xml:"Minute"`
	Second    *string   `xml:"Second"`
}

type ArticleIdList struct {
	ArticleIds List[ArticleId] `xml:"ArticleId" validate:"min=1,dive"`
}

// ArticleId is an identifier for the article in some scheme (pubmed, doi, pmc, ...).
type ArticleId struct {
	IdType ArticleIdType `xml:"IdType,attr,omitempty" validate:"omitempty,enum"`
	Value  string        `xml:",chardata"`
}

// EffectiveIdType applies the schema default pubmed.
func (a ArticleId) EffectiveIdType() ArticleIdType { return orDefault(a.IdType, ArticleIdTypePubMed) }

type ObjectList struct {
	Objects List[Object] `xml:"Object" validate:"min=1,dive"`
}

// Object is a typed bag of named parameters attached to an article.
type Object struct {
	Type   string      `xml:"Type,attr" validate:"required"`
	Params List[Param] `xml:"Param" validate:"dive"`
}

type Param struct {
	Name  string `xml:"Name,attr" validate:"required"`
	Value string `xml:",chardata"`
}

// ReferenceList is the cited-reference section PubMed attaches to newer records.
type ReferenceList struct {
	Title      *string         `xml:"Title"`
	References List[Reference] `xml:"Reference" validate:"dive"`
}

type Reference struct {
	Citation      string         `xml:"Citation" validate:"required"`
	ArticleIdList *ArticleIdList `xml:"ArticleIdList"`
}
