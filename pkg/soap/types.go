package soap

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// SOAPVersion represents the SOAP protocol version.
type SOAPVersion string

const (
	// SOAP11 represents SOAP 1.1 protocol.
	SOAP11 SOAPVersion = "1.1"
	// SOAP12 represents SOAP 1.2 protocol.
	SOAP12 SOAPVersion = "1.2"
)

// SOAP namespace URIs
const (
	SOAP11Namespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SOAP12Namespace = "http://www.w3.org/2003/05/soap-envelope"
)

// ContentTypes for SOAP versions
const (
	SOAP11ContentType = "text/xml; charset=utf-8"
	SOAP12ContentType = "application/soap+xml; charset=utf-8"
)

// ContentType returns the media type requests of version v are sent with.
func (v SOAPVersion) ContentType() string {
	if v == SOAP12 {
		return SOAP12ContentType
	}
	return SOAP11ContentType
}

// Namespace returns the envelope namespace URI of v.
func (v SOAPVersion) Namespace() string {
	if v == SOAP12 {
		return SOAP12Namespace
	}
	return SOAP11Namespace
}

// Namespace is a prefix binding declared on the envelope root.
type Namespace struct {
	Prefix string
	URI    string
}

// Errors returned by ParseEnvelope.
var (
	ErrInvalidXML  = errors.New("soap: invalid XML")
	ErrNotEnvelope = errors.New("soap: root element is not a SOAP Envelope")
	ErrMissingBody = errors.New("soap: envelope has no Body")
)

// Fault is a SOAP fault of either protocol version. Code is the 1.1 faultcode
// or the 1.2 Code/Value; String is the faultstring or Reason/Text.
type Fault struct {
	Code   string
	String string
	Actor  string
	// Detail is the detail (1.1) or Detail (1.2) element, if present.
	Detail *etree.Element
}

func (f *Fault) Error() string {
	return "soap fault " + f.Code + ": " + f.String
}

// DetailText returns the text of the first detail descendant with the given
// local name, or "".
func (f *Fault) DetailText(tag string) string {
	if f.Detail == nil {
		return ""
	}
	if e := f.Detail.FindElement(".//" + tag); e != nil {
		return strings.TrimSpace(e.Text())
	}
	return ""
}
