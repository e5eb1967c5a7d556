package medline

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

// Decoder reads MEDLINE/PubMed XML documents from an input stream.
// Element names are matched without regard to namespace, so documents with and
// without the eutils xmlns decode alike. Unknown elements are skipped.
type Decoder struct {
	d *xml.Decoder
}

// NewDecoder returns a Decoder reading from r. Non-UTF-8 documents are converted
// using the encoding named in the XML declaration.
func NewDecoder(r io.Reader) *Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	return &Decoder{d: d}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Decode parses the next document into v and validates it.
// v must be a pointer to a record type whose element name matches the root.
func (d *Decoder) Decode(v any) error {
	if err := d.decode(v); err != nil {
		return err
	}
	return Validate(v)
}

func (d *Decoder) decode(v any) error {
	if err := d.d.Decode(v); err != nil {
		return &MalformedXMLError{Cause: err}
	}
	return nil
}

// DecodeAny parses the next document into the record type registered for its
// root element and validates it. The result is a pointer, e.g. *PubmedArticleSet.
func (d *Decoder) DecodeAny() (any, error) {
	v, err := d.decodeAny()
	if err != nil {
		return nil, err
	}
	if err := Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) decodeAny() (any, error) {
	start, err := d.root()
	if err != nil {
		return nil, err
	}

	ctor, ok := documentTypes[start.Name.Local]
	if !ok {
		return nil, &MalformedXMLError{Cause: fmt.Errorf("unsupported root element <%s>", start.Name.Local)}
	}
	v := ctor()
	if err := d.d.DecodeElement(v, &start); err != nil {
		return nil, &MalformedXMLError{Cause: err}
	}
	return v, nil
}

// root skips the prolog and returns the root start element.
func (d *Decoder) root() (xml.StartElement, error) {
	for {
		tok, err := d.d.Token()
		if err != nil {
			return xml.StartElement{}, &MalformedXMLError{Cause: err}
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// end consumes the input after the root element. Only comments, processing
// instructions, directives and whitespace may follow it.
func (d *Decoder) end() error {
	for {
		tok, err := d.d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &MalformedXMLError{Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return &MalformedXMLError{Cause: fmt.Errorf("element <%s> after root element", t.Name.Local)}
		case xml.EndElement:
			return &MalformedXMLError{Cause: fmt.Errorf("end element </%s> after root element", t.Name.Local)}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return &MalformedXMLError{Cause: fmt.Errorf("character data %q after root element", bytes.TrimSpace(t))}
			}
		}
	}
}

// Unmarshal parses data into v and validates the result. data must hold
// exactly one document.
func Unmarshal(data []byte, v any) error {
	d := NewDecoder(bytes.NewReader(data))
	if err := d.decode(v); err != nil {
		return err
	}
	if err := d.end(); err != nil {
		return err
	}
	return Validate(v)
}

// DecodeAny reads the single document in r into its registered record type.
func DecodeAny(r io.Reader) (any, error) {
	d := NewDecoder(r)
	v, err := d.decodeAny()
	if err != nil {
		return nil, err
	}
	if err := d.end(); err != nil {
		return nil, err
	}
	if err := Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encoder writes records as XML documents.
type Encoder struct {
	w      io.Writer
	enc    *xml.Encoder
	header bool
}

// NewEncoder returns an Encoder writing to w. The first document is preceded by
// the standard XML declaration.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, enc: xml.NewEncoder(w), header: true}
}

// Indent sets the indentation used for nested elements.
func (e *Encoder) Indent(prefix, indent string) {
	e.enc.Indent(prefix, indent)
}

// Encode validates v and writes it under its registered element name.
func (e *Encoder) Encode(v any) error {
	name, err := elementName(v)
	if err != nil {
		return err
	}
	return e.EncodeElement(v, name)
}

// EncodeElement validates v and writes it as element name. This is the way to
// encode record types that appear under several names, such as Date.
func (e *Encoder) EncodeElement(v any, name string) error {
	if err := Validate(v); err != nil {
		return err
	}
	if e.header {
		if _, err := io.WriteString(e.w, xml.Header); err != nil {
			return fmt.Errorf("write xml header: %w", err)
		}
		e.header = false
	}
	start := xml.StartElement{Name: xml.Name{Space: Namespace, Local: name}}
	if err := e.enc.EncodeElement(v, start); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

// Marshal returns the XML encoding of v, including the XML declaration.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents nested elements.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.Indent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
