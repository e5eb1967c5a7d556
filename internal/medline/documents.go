package medline

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"slices"
)

// Namespace is the eutils namespace written on the root element of every encoded document.
const Namespace = "http://www.ncbi.nlm.nih.gov/eutils"

// MedlineCitationSet is the root of a MEDLINE baseline or update file.
type MedlineCitationSet struct {
	XMLName          xml.Name              `xml:"MedlineCitationSet" json:"-"`
	MedlineCitations List[MedlineCitation] `xml:"MedlineCitation" validate:"dive"`
	DeleteCitation   *DeleteCitation       `xml:"DeleteCitation"`
}

// DeleteCitation lists PMIDs withdrawn by an update file.
type DeleteCitation struct {
	PMIDs List[PMID] `xml:"PMID" validate:"min=1,dive"`
}

// Values returns the deleted PMIDs in document order.
func (d DeleteCitation) Values() []string {
	out := make([]string, 0, len(d.PMIDs))
	for _, p := range d.PMIDs {
		out = append(out, p.Value)
	}
	return out
}

// URL is the standalone URL document.
type URL struct {
	XMLName xml.Name `xml:"URL" json:"-"`
	Lang    URLLang  `xml:"lang,attr,omitempty" validate:"omitempty,enum"`
	Type    URLType  `xml:"Type,attr,omitempty" validate:"omitempty,enum"`
	Value   string   `xml:",chardata"`
}

// TextDocument is a standalone single-text document such as CopyrightInformation,
// NumberOfReferences, PublicationStatus or SpaceFlightMission. XMLName carries the
// element name; it is set by decoding and must be set before encoding.
type TextDocument struct {
	XMLName xml.Name `json:"-"`
	Value   string   `xml:",chardata"`
}

// NewTextDocument returns a standalone text document with the given element name.
func NewTextDocument(name, value string) *TextDocument {
	return &TextDocument{XMLName: xml.Name{Space: Namespace, Local: name}, Value: value}
}

var textDocuments = []string{
	"CopyrightInformation",
	"NumberOfReferences",
	"PublicationStatus",
	"SpaceFlightMission",
}

// documentTypes maps root element names accepted by DecodeAny to constructors.
var documentTypes = map[string]func() any{
	"PubmedArticleSet":   func() any { return new(PubmedArticleSet) },
	"MedlineCitationSet": func() any { return new(MedlineCitationSet) },
	"PubmedArticle":      func() any { return new(PubmedArticle) },
	"MedlineCitation":    func() any { return new(MedlineCitation) },
	"PubmedData":         func() any { return new(PubmedData) },
	"Article":            func() any { return new(Article) },
	"DeleteCitation":     func() any { return new(DeleteCitation) },
	"URL":                func() any { return new(URL) },
}

// elementNames maps record types to their element names for Encode.
var elementNames = map[reflect.Type]string{}

func init() {
	for _, name := range textDocuments {
		documentTypes[name] = func() any { return &TextDocument{} }
	}
	for name, ctor := range documentTypes {
		t := reflect.TypeOf(ctor()).Elem()
		if t.Name() == name {
			elementNames[t] = name
		}
	}
}

// RootNames returns the root element names DecodeAny understands.
func RootNames() []string {
	names := make([]string, 0, len(documentTypes))
	for name := range documentTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RootName returns the root element name Encode writes for v.
func RootName(v any) (string, error) { return elementName(v) }

// elementName resolves the element name Encode writes for v.
func elementName(v any) (string, error) {
	switch td := v.(type) {
	case *TextDocument:
		if td != nil && td.XMLName.Local != "" {
			return td.XMLName.Local, nil
		}
		return "", fmt.Errorf("text document has no element name")
	case TextDocument:
		if td.XMLName.Local != "" {
			return td.XMLName.Local, nil
		}
		return "", fmt.Errorf("text document has no element name")
	}
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "", fmt.Errorf("cannot encode nil")
	}
	name, ok := elementNames[t]
	if !ok {
		return "", fmt.Errorf("no element name registered for %s; use EncodeElement", t)
	}
	return name, nil
}
