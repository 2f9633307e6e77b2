package soap

import (
	"strings"

	"github.com/beevik/etree"
)

func parseFault(elem *etree.Element, version SOAPVersion) *Fault {
	f := &Fault{}
	if version == SOAP12 {
		f.Code = ExtractXPathFromElement(elem, "Code/Value")
		f.String = ExtractXPathFromElement(elem, "Reason/Text")
		f.Actor = ExtractXPathFromElement(elem, "Role")
		f.Detail = elem.SelectElement("Detail")
		return f
	}
	f.Code = ExtractXPathFromElement(elem, "faultcode")
	f.String = ExtractXPathFromElement(elem, "faultstring")
	f.Actor = ExtractXPathFromElement(elem, "faultactor")
	f.Detail = elem.SelectElement("detail")
	return f
}

// NewFaultEnvelope builds a fault response. Client and Server codes are
// mapped to Sender and Receiver for SOAP 1.2.
func NewFaultEnvelope(version SOAPVersion, f *Fault, ns ...Namespace) *Envelope {
	env := NewEnvelope(version, ns...)
	fault := etree.NewElement("soap:Fault")
	if version == SOAP12 {
		fault.CreateElement("soap:Code").CreateElement("soap:Value").SetText(faultCode12(f.Code))
		text := fault.CreateElement("soap:Reason").CreateElement("soap:Text")
		text.CreateAttr("xml:lang", "en")
		text.SetText(f.String)
		if f.Actor != "" {
			fault.CreateElement("soap:Role").SetText(f.Actor)
		}
		if f.Detail != nil {
			fault.CreateElement("soap:Detail").AddChild(f.Detail.Copy())
		}
	} else {
		fault.CreateElement("faultcode").SetText(f.Code)
		fault.CreateElement("faultstring").SetText(f.String)
		if f.Actor != "" {
			fault.CreateElement("faultactor").SetText(f.Actor)
		}
		if f.Detail != nil {
			fault.CreateElement("detail").AddChild(f.Detail.Copy())
		}
	}
	env.SetPayload(fault)
	return env
}

func faultCode12(code string) string {
	switch strings.TrimPrefix(code, "soap:") {
	case "Client":
		return "soap:Sender"
	case "Server":
		return "soap:Receiver"
	}
	return code
}

// ClientFault returns a fault blaming the request.
func ClientFault(msg string) *Fault {
	return &Fault{Code: "soap:Client", String: msg}
}

// ServerFault returns a fault blaming the responder.
func ServerFault(msg string) *Fault {
	return &Fault{Code: "soap:Server", String: msg}
}
