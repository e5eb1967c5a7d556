package medline

// MedlineCitation is one citation record. It always carries exactly one PMID,
// one DateCreated and one Article.
type MedlineCitation struct {
	Owner       CitationOwner  `xml:"Owner,attr,omitempty" validate:"omitempty,enum"`
	Status      CitationStatus `xml:"Status,attr,omitempty" validate:"required,enum"`
	VersionID   *string        `xml:"VersionID,attr"`
	VersionDate *string        `xml:"VersionDate,attr"`

	PMID                    PMID                     `xml:"PMID" validate:"required"`
	DateCreated             Date                     `xml:"DateCreated" validate:"required"`
	DateCompleted           *Date                    `xml:"DateCompleted"`
	DateRevised             *Date                    `xml:"DateRevised"`
	Article                 Article                  `xml:"Article" validate:"required"`
	MedlineJournalInfo      MedlineJournalInfo       `xml:"MedlineJournalInfo" validate:"required"`
	ChemicalList            *ChemicalList            `xml:"ChemicalList"`
	SupplMeshList           *SupplMeshList           `xml:"SupplMeshList"`
	CitationSubsets         List[string]             `xml:"CitationSubset"`
	CommentsCorrectionsList *CommentsCorrectionsList `xml:"CommentsCorrectionsList"`
	GeneSymbolList          *GeneSymbolList          `xml:"GeneSymbolList"`
	MeshHeadingList         *MeshHeadingList         `xml:"MeshHeadingList"`
	NumberOfReferences      *string                  `xml:"NumberOfReferences"`
	PersonalNameSubjectList *PersonalNameSubjectList `xml:"PersonalNameSubjectList"`
	OtherIDs                List[OtherID]            `xml:"OtherID" validate:"dive"`
	OtherAbstracts          List[OtherAbstract]      `xml:"OtherAbstract" validate:"dive"`
	KeywordLists            List[KeywordList]        `xml:"KeywordList" validate:"dive"`
	SpaceFlightMissions     List[string]             `xml:"SpaceFlightMission"`
	InvestigatorList        *InvestigatorList        `xml:"InvestigatorList"`
	GeneralNotes            List[GeneralNote]        `xml:"GeneralNote" validate:"dive"`
}

// EffectiveOwner applies the schema default NLM.
func (c MedlineCitation) EffectiveOwner() CitationOwner {
	return orDefault(c.Owner, CitationOwnerNLM)
}

// PMID is a PubMed identifier: a digit string with an optional version.
type PMID struct {
	Version *string `xml:"Version,attr"`
	Value   string  `xml:",chardata"`
}

// String returns the identifier digits.
func (p PMID) String() string { return p.Value }

// Date is the Year/Month/Day triple used by DateCreated, DateCompleted and DateRevised.
type Date struct {
	Year  string `xml:"Year" validate:"required"`
	Month string `xml:"Month" validate:"required"`
	Day   string `xml:"Day" validate:"required"`
}

type MedlineJournalInfo struct {
	Country     *string `xml:"Country"`
	MedlineTA   string  `xml:"MedlineTA" validate:"required"`
	NlmUniqueID *string `xml:"NlmUniqueID"`
	ISSNLinking *string `xml:"ISSNLinking"`
}

type ChemicalList struct {
	Chemicals List[Chemical] `xml:"Chemical" validate:"min=1,dive"`
}

// Chemical is a substance indexed for the citation.
type Chemical struct {
	RegistryNumber  string `xml:"RegistryNumber" validate:"required"`
	NameOfSubstance string `xml:"NameOfSubstance" validate:"required"`
}

type SupplMeshList struct {
	SupplMeshNames List[SupplMeshName] `xml:"SupplMeshName" validate:"min=1,dive"`
}

// SupplMeshName is a supplementary concept name.
type SupplMeshName struct {
	Type  SupplMeshType `xml:"Type,attr,omitempty" validate:"required,enum"`
	UI    *string       `xml:"UI,attr"`
	Value string        `xml:",chardata"`
}

type CommentsCorrectionsList struct {
	CommentsCorrections List[CommentsCorrections] `xml:"CommentsCorrections" validate:"min=1,dive"`
}

// CommentsCorrections links the citation to a comment, erratum, retraction or
// similar record. The referenced PMID is not checked against any other citation.
type CommentsCorrections struct {
	RefType   RefType `xml:"RefType,attr,omitempty" validate:"required,enum"`
	RefSource string  `xml:"RefSource" validate:"required"`
	PMID      *PMID   `xml:"PMID"`
	Note      *string `xml:"Note"`
}

type GeneSymbolList struct {
	GeneSymbols List[string] `xml:"GeneSymbol" validate:"min=1"`
}

type MeshHeadingList struct {
	MeshHeadings List[MeshHeading] `xml:"MeshHeading" validate:"min=1,dive"`
}

// MeshHeading is a MeSH descriptor with its qualifiers.
type MeshHeading struct {
	DescriptorName DescriptorName      `xml:"DescriptorName" validate:"required"`
	QualifierNames List[QualifierName] `xml:"QualifierName" validate:"dive"`
}

// DescriptorName is a MeSH descriptor.
type DescriptorName struct {
	MajorTopicYN YesNo              `xml:"MajorTopicYN,attr,omitempty" validate:"omitempty,enum"`
	Type         DescriptorNameType `xml:"Type,attr,omitempty" validate:"omitempty,enum"`
	UI           *string            `xml:"UI,attr"`
	Value        string             `xml:",chardata"`
}

// EffectiveMajorTopicYN applies the schema default N.
func (d DescriptorName) EffectiveMajorTopicYN() YesNo { return orDefault(d.MajorTopicYN, No) }

// IsMajorTopic reports whether the descriptor is a major topic.
func (d DescriptorName) IsMajorTopic() bool { return d.EffectiveMajorTopicYN().Bool() }

// QualifierName is a MeSH qualifier (subheading).
type QualifierName struct {
	MajorTopicYN YesNo   `xml:"MajorTopicYN,attr,omitempty" validate:"omitempty,enum"`
	UI           *string `xml:"UI,attr"`
	Value        string  `xml:",chardata"`
}

// EffectiveMajorTopicYN applies the schema default N.
func (q QualifierName) EffectiveMajorTopicYN() YesNo { return orDefault(q.MajorTopicYN, No) }

// IsMajorTopic reports whether the qualifier is a major topic.
func (q QualifierName) IsMajorTopic() bool { return q.EffectiveMajorTopicYN().Bool() }

type PersonalNameSubjectList struct {
	PersonalNameSubjects List[PersonalNameSubject] `xml:"PersonalNameSubject" validate:"min=1,dive"`
}

// PersonalNameSubject is a person the article is about.
type PersonalNameSubject struct {
	LastName string  `xml:"LastName" validate:"required"`
	ForeName *string `xml:"ForeName"`
	Initials *string `xml:"Initials"`
	Suffix   *string `xml:"Suffix"`
}

// OtherID is an identifier assigned by an organization other than NLM.
type OtherID struct {
	Source OtherIDSource `xml:"Source,attr,omitempty" validate:"required,enum"`
	Value  string        `xml:",chardata"`
}

// OtherAbstract is an abstract supplied by a third party.
type OtherAbstract struct {
	Type                 OtherAbstractType  `xml:"Type,attr,omitempty" validate:"required,enum"`
	AbstractTexts        List[AbstractText] `xml:"AbstractText" validate:"min=1,dive"`
	CopyrightInformation *string            `xml:"CopyrightInformation"`
}

// KeywordList is a set of keywords assigned by one owner.
type KeywordList struct {
	Owner    KeywordOwner  `xml:"Owner,attr,omitempty" validate:"omitempty,enum"`
	Keywords List[Keyword] `xml:"Keyword" validate:"min=1,dive"`
}

// EffectiveOwner applies the schema default NLM.
func (l KeywordList) EffectiveOwner() KeywordOwner { return orDefault(l.Owner, KeywordOwnerNLM) }

type Keyword struct {
	MajorTopicYN YesNo  `xml:"MajorTopicYN,attr,omitempty" validate:"omitempty,enum"`
	Value        string `xml:",chardata"`
}

// EffectiveMajorTopicYN applies the schema default N.
func (k Keyword) EffectiveMajorTopicYN() YesNo { return orDefault(k.MajorTopicYN, No) }

type InvestigatorList struct {
	Investigators List[Investigator] `xml:"Investigator" validate:"min=1,dive"`
}

// Investigator is a member of a collective author or study group.
type Investigator struct {
	ValidYN     YesNo        `xml:"ValidYN,attr,omitempty" validate:"omitempty,enum"`
	LastName    string       `xml:"LastName" validate:"required"`
	ForeName    *string      `xml:"ForeName"`
	Initials    *string      `xml:"Initials"`
	Suffix      *string      `xml:"Suffix"`
	NameIDs     List[NameID] `xml:"NameID" validate:"dive"`
	Affiliation *string      `xml:"Affiliation"`
}

// EffectiveValidYN applies the schema default Y.
func (i Investigator) EffectiveValidYN() YesNo { return orDefault(i.ValidYN, Yes) }

// GeneralNote is a free-text note tagged with its owner.
type GeneralNote struct {
	Owner GeneralNoteOwner `xml:"Owner,attr,omitempty" validate:"omitempty,enum"`
	Value string           `xml:",chardata"`
}

// EffectiveOwner applies the schema default NLM.
func (n GeneralNote) EffectiveOwner() GeneralNoteOwner {
	return orDefault(n.Owner, GeneralNoteOwnerNLM)
}
