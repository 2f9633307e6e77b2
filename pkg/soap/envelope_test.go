package soap

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const typesNS = "http://schemas.microsoft.com/exchange/services/2006/types"

func TestNewEnvelope_RoundTrip(t *testing.T) {
	env := NewEnvelope(SOAP11, Namespace{Prefix: "t", URI: typesNS})
	version := etree.NewElement("t:RequestServerVersion")
	version.CreateAttr("Version", "Exchange2013_SP1")
	env.AddHeader(version)
	payload := etree.NewElement("m:GetItem")
	payload.CreateElement("m:ItemIds")
	env.SetPayload(payload)

	data, err := env.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="utf-8"?>`) {
		t.Errorf("missing XML declaration: %s", data)
	}

	parsed, err := ParseEnvelope(data)
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	if parsed.Version != SOAP11 {
		t.Errorf("Version = %s, want %s", parsed.Version, SOAP11)
	}
	if parsed.Header == nil {
		t.Fatal("expected header")
	}
	if got := ExtractXPathFromElement(parsed.Header, "RequestServerVersion/@Version"); got != "Exchange2013_SP1" {
		t.Errorf("RequestServerVersion = %q", got)
	}
	if p := parsed.Payload(); p == nil || p.Tag != "GetItem" {
		t.Errorf("Payload = %v, want GetItem", p)
	}
	if parsed.Fault() != nil {
		t.Error("unexpected fault")
	}
}

func TestAddHeader_PrecedesBody(t *testing.T) {
	env := NewEnvelope(SOAP12)
	env.SetPayload(etree.NewElement("Ping"))
	env.AddHeader(etree.NewElement("Trace"))

	children := env.doc.Root().ChildElements()
	if len(children) != 2 || children[0].Tag != "Header" || children[1].Tag != "Body" {
		t.Fatalf("unexpected envelope layout: %v", children)
	}
}

func TestParseEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"not xml", "this is not xml <", ErrInvalidXML},
		{"wrong root", `<root/>`, ErrNotEnvelope},
		{"unknown namespace", `<Envelope xmlns="urn:other"><Body/></Envelope>`, ErrNotEnvelope},
		{"no body", `<soap:Envelope xmlns:soap="` + SOAP11Namespace + `"/>`, ErrMissingBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseEnvelope error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEnvelope_Latin1(t *testing.T) {
	body := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		`<soap:Envelope xmlns:soap="` + SOAP11Namespace + `"><soap:Body><Subject>caf` + "\xe9" + `</Subject></soap:Body></soap:Envelope>`

	env, err := ParseEnvelope([]byte(body))
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	if got := env.Payload().Text(); got != "café" {
		t.Errorf("Subject = %q, want café", got)
	}
}

func TestFault_SOAP11(t *testing.T) {
	detail := etree.NewElement("e:ResponseCode")
	detail.SetText("ErrorSchemaValidation")
	env := NewFaultEnvelope(SOAP11, &Fault{Code: "a:ErrorSchemaValidation", String: "The request failed schema validation", Detail: detail})

	data, err := env.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parsed, err := ParseEnvelope(data)
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	f := parsed.Fault()
	if f == nil {
		t.Fatal("expected fault")
	}
	if f.Code != "a:ErrorSchemaValidation" {
		t.Errorf("Code = %q", f.Code)
	}
	if f.String != "The request failed schema validation" {
		t.Errorf("String = %q", f.String)
	}
	if got := f.DetailText("ResponseCode"); got != "ErrorSchemaValidation" {
		t.Errorf("DetailText = %q", got)
	}
}

func TestFault_SOAP12MapsCodes(t *testing.T) {
	env := NewFaultEnvelope(SOAP12, ClientFault("bad request"))
	data, err := env.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parsed, err := ParseEnvelope(data)
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	if parsed.Version != SOAP12 {
		t.Fatalf("Version = %s", parsed.Version)
	}
	f := parsed.Fault()
	if f == nil {
		t.Fatal("expected fault")
	}
	if f.Code != "soap:Sender" {
		t.Errorf("Code = %q, want soap:Sender", f.Code)
	}
	if f.String != "bad request" {
		t.Errorf("String = %q", f.String)
	}
	if f.DetailText("anything") != "" {
		t.Error("expected empty detail text")
	}
}

func TestMatchXPath(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<GetItem><ItemShape><BaseShape>AllProperties</BaseShape></ItemShape><ItemIds><ItemId Id="a"/></ItemIds></GetItem>`); err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if !MatchXPath(root, map[string]string{"ItemShape/BaseShape": "AllProperties", "ItemIds/ItemId/@Id": "a"}) {
		t.Error("expected match")
	}
	if MatchXPath(root, map[string]string{"ItemIds/ItemId/@Id": "b"}) {
		t.Error("expected mismatch")
	}
	if got := ExtractXPathFromElement(root.SelectElement("ItemIds").SelectElement("ItemId"), "@Id"); got != "a" {
		t.Errorf("bare attribute = %q", got)
	}
}
