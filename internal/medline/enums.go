package medline

import "slices"

// enum is implemented by every closed attribute value set in this package.
// The empty string means the attribute was absent.
type enum interface {
	IsValid() bool
}

// orDefault returns def when the attribute was absent.
func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

// YesNo is the Y/N flag shared by ValidYN, CompleteYN and MajorTopicYN.
type YesNo string

const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

// IsValid reports whether v is one of the declared literals.
func (v YesNo) IsValid() bool { return v == Yes || v == No }

// Bool converts the flag, treating anything other than Y as false.
func (v YesNo) Bool() bool { return v == Yes }

// CitationOwner is the MedlineCitation Owner attribute.
type CitationOwner string

const (
	CitationOwnerNLM    CitationOwner = "NLM"
	CitationOwnerNASA   CitationOwner = "NASA"
	CitationOwnerPIP    CitationOwner = "PIP"
	CitationOwnerKIE    CitationOwner = "KIE"
	CitationOwnerNOTNLM CitationOwner = "NOTNLM"
	CitationOwnerHSR    CitationOwner = "HSR"
	CitationOwnerHMD    CitationOwner = "HMD"
)

var citationOwners = []CitationOwner{
	CitationOwnerNLM, CitationOwnerNASA, CitationOwnerPIP, CitationOwnerKIE,
	CitationOwnerNOTNLM, CitationOwnerHSR, CitationOwnerHMD,
}

func (v CitationOwner) IsValid() bool { return slices.Contains(citationOwners, v) }

// CitationStatus is the MedlineCitation Status attribute.
type CitationStatus string

const (
	CitationStatusCompleted        CitationStatus = "Completed"
	CitationStatusInProcess        CitationStatus = "In-Process"
	CitationStatusPubMedNotMEDLINE CitationStatus = "PubMed-not-MEDLINE"
	CitationStatusInDataReview     CitationStatus = "In-Data-Review"
	CitationStatusPublisher        CitationStatus = "Publisher"
	CitationStatusMEDLINE          CitationStatus = "MEDLINE"
	CitationStatusOLDMEDLINE       CitationStatus = "OLDMEDLINE"
)

var citationStatuses = []CitationStatus{
	CitationStatusCompleted, CitationStatusInProcess, CitationStatusPubMedNotMEDLINE,
	CitationStatusInDataReview, CitationStatusPublisher, CitationStatusMEDLINE,
	CitationStatusOLDMEDLINE,
}

func (v CitationStatus) IsValid() bool { return slices.Contains(citationStatuses, v) }

// PubModel describes the publication model of an Article.
type PubModel string

const (
	PubModelPrint                 PubModel = "Print"
	PubModelPrintElectronic       PubModel = "Print-Electronic"
	PubModelElectronic            PubModel = "Electronic"
	PubModelElectronicPrint       PubModel = "Electronic-Print"
	PubModelElectronicECollection PubModel = "Electronic-eCollection"
)

var pubModels = []PubModel{
	PubModelPrint, PubModelPrintElectronic, PubModelElectronic,
	PubModelElectronicPrint, PubModelElectronicECollection,
}

func (v PubModel) IsValid() bool { return slices.Contains(pubModels, v) }

// IssnType distinguishes print and electronic ISSNs.
type IssnType string

const (
	IssnTypeElectronic   IssnType = "Electronic"
	IssnTypePrint        IssnType = "Print"
	IssnTypeUndetermined IssnType = "Undetermined"
)

func (v IssnType) IsValid() bool {
	return v == IssnTypeElectronic || v == IssnTypePrint || v == IssnTypeUndetermined
}

// CitedMedium is the JournalIssue CitedMedium attribute.
type CitedMedium string

const (
	CitedMediumInternet CitedMedium = "Internet"
	CitedMediumPrint    CitedMedium = "Print"
)

func (v CitedMedium) IsValid() bool { return v == CitedMediumInternet || v == CitedMediumPrint }

// EIdType is the type of an electronic location identifier.
type EIdType string

const (
	EIdTypeDOI EIdType = "doi"
	EIdTypePII EIdType = "pii"
)

func (v EIdType) IsValid() bool { return v == EIdTypeDOI || v == EIdTypePII }

// NlmCategory labels a section of a structured abstract.
type NlmCategory string

const (
	NlmCategoryUnassigned  NlmCategory = "UNASSIGNED"
	NlmCategoryUnlabelled  NlmCategory = "UNLABELLED"
	NlmCategoryBackground  NlmCategory = "BACKGROUND"
	NlmCategoryObjective   NlmCategory = "OBJECTIVE"
	NlmCategoryMethods     NlmCategory = "METHODS"
	NlmCategoryResults     NlmCategory = "RESULTS"
	NlmCategoryConclusions NlmCategory = "CONCLUSIONS"
)

var nlmCategories = []NlmCategory{
	NlmCategoryUnassigned, NlmCategoryUnlabelled, NlmCategoryBackground, NlmCategoryObjective,
	NlmCategoryMethods, NlmCategoryResults, NlmCategoryConclusions,
}

func (v NlmCategory) IsValid() bool { return slices.Contains(nlmCategories, v) }

// RefType is the relationship recorded by a CommentsCorrections entry.
type RefType string

const (
	RefTypeAssociatedDataset      RefType = "AssociatedDataset"
	RefTypeAssociatedPublication  RefType = "AssociatedPublication"
	RefTypeCommentOn              RefType = "CommentOn"
	RefTypeCommentIn              RefType = "CommentIn"
	RefTypeErratumIn              RefType = "ErratumIn"
	RefTypeErratumFor             RefType = "ErratumFor"
	RefTypeExpressionOfConcernIn  RefType = "ExpressionOfConcernIn"
	RefTypeExpressionOfConcernFor RefType = "ExpressionOfConcernFor"
	RefTypePartialRetractionIn    RefType = "PartialRetractionIn"
	RefTypePartialRetractionOf    RefType = "PartialRetractionOf"
	RefTypeRepublishedFrom        RefType = "RepublishedFrom"
	RefTypeRepublishedIn          RefType = "RepublishedIn"
	RefTypeRetractionOf           RefType = "RetractionOf"
	RefTypeRetractionIn           RefType = "RetractionIn"
	RefTypeUpdateIn               RefType = "UpdateIn"
	RefTypeUpdateOf               RefType = "UpdateOf"
	RefTypeSummaryForPatientsIn   RefType = "SummaryForPatientsIn"
	RefTypeOriginalReportIn       RefType = "OriginalReportIn"
	RefTypeReprintOf              RefType = "ReprintOf"
	RefTypeReprintIn              RefType = "ReprintIn"
	RefTypeCites                  RefType = "Cites"
)

var refTypes = []RefType{
	RefTypeAssociatedDataset, RefTypeAssociatedPublication, RefTypeCommentOn, RefTypeCommentIn,
	RefTypeErratumIn, RefTypeErratumFor, RefTypeExpressionOfConcernIn, RefTypeExpressionOfConcernFor,
	RefTypePartialRetractionIn, RefTypePartialRetractionOf, RefTypeRepublishedFrom,
	RefTypeRepublishedIn, RefTypeRetractionOf, RefTypeRetractionIn, RefTypeUpdateIn, RefTypeUpdateOf,
	RefTypeSummaryForPatientsIn, RefTypeOriginalReportIn, RefTypeReprintOf, RefTypeReprintIn,
	RefTypeCites,
}

func (v RefType) IsValid() bool { return slices.Contains(refTypes, v) }

// SupplMeshType classifies a supplementary concept record.
type SupplMeshType string

const (
	SupplMeshTypeDisease  SupplMeshType = "Disease"
	SupplMeshTypeProtocol SupplMeshType = "Protocol"
	SupplMeshTypeOrganism SupplMeshType = "Organism"
)

func (v SupplMeshType) IsValid() bool {
	return v == SupplMeshTypeDisease || v == SupplMeshTypeProtocol || v == SupplMeshTypeOrganism
}

// DescriptorNameType marks geographic descriptors.
type DescriptorNameType string

const DescriptorNameTypeGeographic DescriptorNameType = "Geographic"

func (v DescriptorNameType) IsValid() bool { return v == DescriptorNameTypeGeographic }

// OtherIDSource names the organization that assigned an OtherID.
type OtherIDSource string

const (
	OtherIDSourceNASA  OtherIDSource = "NASA"
	OtherIDSourceKIE   OtherIDSource = "KIE"
	OtherIDSourcePIP   OtherIDSource = "PIP"
	OtherIDSourcePOP   OtherIDSource = "POP"
	OtherIDSourceARPL  OtherIDSource = "ARPL"
	OtherIDSourceCPC   OtherIDSource = "CPC"
	OtherIDSourceIND   OtherIDSource = "IND"
	OtherIDSourceCPFH  OtherIDSource = "CPFH"
	OtherIDSourceCLML  OtherIDSource = "CLML"
	OtherIDSourceNRCBL OtherIDSource = "NRCBL"
	OtherIDSourceNLM   OtherIDSource = "NLM"
	OtherIDSourceQCIM  OtherIDSource = "QCIM"
)

var otherIDSources = []OtherIDSource{
	OtherIDSourceNASA, OtherIDSourceKIE, OtherIDSourcePIP, OtherIDSourcePOP, OtherIDSourceARPL,
	OtherIDSourceCPC, OtherIDSourceIND, OtherIDSourceCPFH, OtherIDSourceCLML, OtherIDSourceNRCBL,
	OtherIDSourceNLM, OtherIDSourceQCIM,
}

func (v OtherIDSource) IsValid() bool { return slices.Contains(otherIDSources, v) }

// OtherAbstractType names the provider of an OtherAbstract.
type OtherAbstractType string

const (
	OtherAbstractTypeAAMC                 OtherAbstractType = "AAMC"
	OtherAbstractTypeAIDS                 OtherAbstractType = "AIDS"
	OtherAbstractTypeKIE                  OtherAbstractType = "KIE"
	OtherAbstractTypePIP                  OtherAbstractType = "PIP"
	OtherAbstractTypeNASA                 OtherAbstractType = "NASA"
	OtherAbstractTypePublisher            OtherAbstractType = "Publisher"
	OtherAbstractTypePlainLanguageSummary OtherAbstractType = "plain-language-summary"
)

var otherAbstractTypes = []OtherAbstractType{
	OtherAbstractTypeAAMC, OtherAbstractTypeAIDS, OtherAbstractTypeKIE, OtherAbstractTypePIP,
	OtherAbstractTypeNASA, OtherAbstractTypePublisher, OtherAbstractTypePlainLanguageSummary,
}

func (v OtherAbstractType) IsValid() bool { return slices.Contains(otherAbstractTypes, v) }

// KeywordOwner is the KeywordList Owner attribute.
type KeywordOwner string

const (
	KeywordOwnerNLM     KeywordOwner = "NLM"
	KeywordOwnerNLMAuto KeywordOwner = "NLM-AUTO"
	KeywordOwnerNASA    KeywordOwner = "NASA"
	KeywordOwnerPIP     KeywordOwner = "PIP"
	KeywordOwnerKIE     KeywordOwner = "KIE"
	KeywordOwnerNOTNLM  KeywordOwner = "NOTNLM"
	KeywordOwnerHHS     KeywordOwner = "HHS"
)

var keywordOwners = []KeywordOwner{
	KeywordOwnerNLM, KeywordOwnerNLMAuto, KeywordOwnerNASA, KeywordOwnerPIP,
	KeywordOwnerKIE, KeywordOwnerNOTNLM, KeywordOwnerHHS,
}

func (v KeywordOwner) IsValid() bool { return slices.Contains(keywordOwners, v) }

// GeneralNoteOwner is the GeneralNote Owner attribute.
type GeneralNoteOwner string

const (
	GeneralNoteOwnerNLM  GeneralNoteOwner = "NLM"
	GeneralNoteOwnerNASA GeneralNoteOwner = "NASA"
	GeneralNoteOwnerPIP  GeneralNoteOwner = "PIP"
	GeneralNoteOwnerKIE  GeneralNoteOwner = "KIE"
	GeneralNoteOwnerHSR  GeneralNoteOwner = "HSR"
	GeneralNoteOwnerHMD  GeneralNoteOwner = "HMD"
)

var generalNoteOwners = []GeneralNoteOwner{
	GeneralNoteOwnerNLM, GeneralNoteOwnerNASA, GeneralNoteOwnerPIP,
	GeneralNoteOwnerKIE, GeneralNoteOwnerHSR, GeneralNoteOwnerHMD,
}

func (v GeneralNoteOwner) IsValid() bool { return slices.Contains(generalNoteOwners, v) }

// PubStatus is the event recorded by a PubMedPubDate.
type PubStatus string

const (
	PubStatusReceived     PubStatus = "received"
	PubStatusAccepted     PubStatus = "accepted"
	PubStatusEPublish     PubStatus = "epublish"
	PubStatusPPublish     PubStatus = "ppublish"
	PubStatusRevised      PubStatus = "revised"
	PubStatusAheadOfPrint PubStatus = "aheadofprint"
	PubStatusRetracted    PubStatus = "retracted"
	PubStatusECollection  PubStatus = "ecollection"
	PubStatusPMC          PubStatus = "pmc"
	PubStatusPMCR         PubStatus = "pmcr"
	PubStatusPubMed       PubStatus = "pubmed"
	PubStatusPubMedR      PubStatus = "pubmedr"
	PubStatusPreMedline   PubStatus = "premedline"
	PubStatusMedline      PubStatus = "medline"
	PubStatusMedlineR     PubStatus = "medliner"
	PubStatusEntrez       PubStatus = "entrez"
	PubStatusPMCRelease   PubStatus = "pmc-release"
)

var pubStatuses = []PubStatus{
	PubStatusReceived, PubStatusAccepted, PubStatusEPublish, PubStatusPPublish, PubStatusRevised,
	PubStatusAheadOfPrint, PubStatusRetracted, PubStatusECollection, PubStatusPMC, PubStatusPMCR,
	PubStatusPubMed, PubStatusPubMedR, PubStatusPreMedline, PubStatusMedline, PubStatusMedlineR,
	PubStatusEntrez, PubStatusPMCRelease,
}

func (v PubStatus) IsValid() bool { return slices.Contains(pubStatuses, v) }

// ArticleIdType is the kind of identifier held by an ArticleId.
type ArticleIdType string

const (
	ArticleIdTypeDOI           ArticleIdType = "doi"
	ArticleIdTypePII           ArticleIdType = "pii"
	ArticleIdTypePMCPID        ArticleIdType = "pmcpid"
	ArticleIdTypePMPID         ArticleIdType = "pmpid"
	ArticleIdTypePMC           ArticleIdType = "pmc"
	ArticleIdTypeMID           ArticleIdType = "mid"
	ArticleIdTypeSICI          ArticleIdType = "sici"
	ArticleIdTypePubMed        ArticleIdType = "pubmed"
	ArticleIdTypeMedline       ArticleIdType = "medline"
	ArticleIdTypePMCID         ArticleIdType = "pmcid"
	ArticleIdTypePMCBook       ArticleIdType = "pmcbook"
	ArticleIdTypeBookAccession ArticleIdType = "bookaccession"
)

var articleIdTypes = []ArticleIdType{
	ArticleIdTypeDOI, ArticleIdTypePII, ArticleIdTypePMCPID, ArticleIdTypePMPID, ArticleIdTypePMC,
	ArticleIdTypeMID, ArticleIdTypeSICI, ArticleIdTypePubMed, ArticleIdTypeMedline,
	ArticleIdTypePMCID, ArticleIdTypePMCBook, ArticleIdTypeBookAccession,
}

func (v ArticleIdType) IsValid() bool { return slices.Contains(articleIdTypes, v) }

// URLType is the Type attribute of a URL document.
type URLType string

const (
	URLTypeFullText      URLType = "FullText"
	URLTypeSummary       URLType = "Summary"
	URLTypeFullTextLower URLType = "fulltext"
	URLTypeSummaryLower  URLType = "summary"
)

func (v URLType) IsValid() bool {
	switch v {
	case URLTypeFullText, URLTypeSummary, URLTypeFullTextLower, URLTypeSummaryLower:
		return true
	}
	return false
}

// URLLang is the two-letter language code on a URL document.
type URLLang string

var urlLangs = []URLLang{
	"AF", "AR", "AZ", "BG", "CS", "DA", "DE", "EN", "EL", "ES", "FA", "FI", "FR", "HE",
	"HU", "HY", "IN", "IS", "IT", "IW", "JA", "KA", "KO", "LT", "MK", "ML", "NL", "NO",
	"PL", "PT", "PS", "RO", "RU", "SL", "SK", "SQ", "SR", "SV", "SW", "TH", "TR", "UK",
	"VI", "ZH",
}

func (v URLLang) IsValid() bool { return slices.Contains(urlLangs, v) }
