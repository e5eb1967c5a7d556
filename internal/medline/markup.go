package medline

import (
	"encoding/xml"
	"html"
	"regexp"
	"strings"
)

var markupTagRe = regexp.MustCompile(`<[^>]+>`)

// Markup is element content that may carry inline formatting such as <i>, <b>,
// <sup>, <sub> or <u>. It holds the inner XML exactly as read, so encoding
// writes the formatting back unchanged. Use Text for the plain character data.
type Markup string

type innerXML struct {
	Inner string `xml:",innerxml"`
}

// PlainMarkup returns the Markup for plain text s, escaping it for XML.
func PlainMarkup(s string) Markup {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return Markup(b.String())
}

// Text returns the content with inline tags removed and entities resolved.
func (m Markup) Text() string {
	return markupText(string(m))
}

func markupText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(markupTagRe.ReplaceAllString(s, ""))
}

func (m *Markup) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v innerXML
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	*m = Markup(v.Inner)
	return nil
}

func (m Markup) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(innerXML{Inner: string(m)}, start)
}
