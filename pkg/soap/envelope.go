package soap

import (
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Envelope is a SOAP message backed by an etree document.
type Envelope struct {
	Version SOAPVersion
	// Header is the soap:Header element, or nil when the message has none.
	Header *etree.Element
	// Body is the soap:Body element.
	Body *etree.Element

	doc *etree.Document
}

// NewEnvelope creates an empty envelope of the given version. The envelope
// namespace is bound to the "soap" prefix; ns adds further bindings.
func NewEnvelope(version SOAPVersion, ns ...Namespace) *Envelope {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("soap:Envelope")
	root.CreateAttr("xmlns:soap", version.Namespace())
	for _, n := range ns {
		root.CreateAttr("xmlns:"+n.Prefix, n.URI)
	}
	body := root.CreateElement("soap:Body")
	return &Envelope{Version: version, Body: body, doc: doc}
}

// AddHeader appends a header block, creating soap:Header on first use.
func (e *Envelope) AddHeader(block *etree.Element) {
	if e.Header == nil {
		e.Header = etree.NewElement("soap:Header")
		e.doc.Root().InsertChildAt(e.Body.Index(), e.Header)
	}
	e.Header.AddChild(block)
}

// SetPayload replaces the content of the body with elem.
func (e *Envelope) SetPayload(elem *etree.Element) {
	for _, c := range e.Body.ChildElements() {
		e.Body.RemoveChild(c)
	}
	e.Body.AddChild(elem)
}

// Payload returns the first child element of the body, or nil.
func (e *Envelope) Payload() *etree.Element {
	children := e.Body.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Fault returns the fault carried by the body, if any.
func (e *Envelope) Fault() *Fault {
	p := e.Payload()
	if p == nil || p.Tag != "Fault" {
		return nil
	}
	return parseFault(p, e.Version)
}

// Bytes serializes the envelope.
func (e *Envelope) Bytes() ([]byte, error) {
	return e.doc.WriteToBytes()
}

// ParseEnvelope parses a SOAP message. Non-UTF-8 documents are decoded using
// the encoding named in their XML declaration.
func ParseEnvelope(data []byte) (*Envelope, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return nil, ErrNotEnvelope
	}
	version, ok := detectSOAPVersion(root)
	if !ok {
		return nil, fmt.Errorf("%w: unknown namespace %q", ErrNotEnvelope, root.NamespaceURI())
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, ErrMissingBody
	}
	return &Envelope{
		Version: version,
		Header:  root.SelectElement("Header"),
		Body:    body,
		doc:     doc,
	}, nil
}

// detectSOAPVersion detects the SOAP version from the envelope namespace.
func detectSOAPVersion(root *etree.Element) (SOAPVersion, bool) {
	switch root.NamespaceURI() {
	case SOAP11Namespace:
		return SOAP11, true
	case SOAP12Namespace:
		return SOAP12, true
	}
	return "", false
}
