package ews

import "github.com/beevik/etree"

var contactSchema = newSchema("contacts",
	fieldDef{name: "FileAs", kind: stringField},
	fieldDef{name: "DisplayName", kind: stringField},
	fieldDef{name: "GivenName", kind: stringField},
	fieldDef{name: "Initials", kind: stringField},
	fieldDef{name: "MiddleName", kind: stringField},
	fieldDef{name: "Nickname", kind: stringField},
	fieldDef{name: "CompanyName", kind: stringField},
	fieldDef{name: "EmailAddresses", kind: entriesField},
	fieldDef{name: "PhoneNumbers", kind: entriesField},
	fieldDef{name: "AssistantName", kind: stringField},
	fieldDef{name: "Birthday", kind: dateTimeField},
	fieldDef{name: "BusinessHomePage", kind: stringField},
	fieldDef{name: "Children", kind: stringListField},
	fieldDef{name: "Companies", kind: stringListField},
	fieldDef{name: "Department", kind: stringField},
	fieldDef{name: "Generation", kind: stringField},
	fieldDef{name: "JobTitle", kind: stringField},
	fieldDef{name: "Manager", kind: stringField},
	fieldDef{name: "Mileage", kind: stringField},
	fieldDef{name: "OfficeLocation", kind: stringField},
	fieldDef{name: "Profession", kind: stringField},
	fieldDef{name: "SpouseName", kind: stringField},
	fieldDef{name: "Surname", kind: stringField},
	fieldDef{name: "WeddingAnniversary", kind: dateTimeField},
)

// Standard keys of Contact.EmailAddresses.
const (
	EmailAddress1 = "EmailAddress1"
	EmailAddress2 = "EmailAddress2"
	EmailAddress3 = "EmailAddress3"
)

// Common keys of Contact.PhoneNumbers.
const (
	PhoneBusiness = "BusinessPhone"
	PhoneHome     = "HomePhone"
	PhoneMobile   = "MobilePhone"
)

// Contact is an entry in a contacts folder.
type Contact struct {
	ItemBase
	contact propertyBag
}

// NewContact returns a transient contact with no fields set.
func NewContact() *Contact { return &Contact{} }

func (*Contact) Kind() ItemKind                     { return KindContact }
func (c *Contact) Base() *ItemBase                  { return &c.ItemBase }
func (c *Contact) ToXML() *etree.Element            { return encodeItem(c, false) }
func (c *Contact) variant() (*propertyBag, *schema) { return &c.contact, contactSchema }

func (c *Contact) Has(p PropertyPath) bool { return hasField(c, p) }

// FileAs is the name the contact is sorted under.
func (c *Contact) FileAs() string     { return getField[string](&c.contact, "FileAs") }
func (c *Contact) SetFileAs(s string) { c.contact.set("FileAs", s) }

func (c *Contact) DisplayName() string     { return getField[string](&c.contact, "DisplayName") }
func (c *Contact) SetDisplayName(s string) { c.contact.set("DisplayName", s) }

func (c *Contact) GivenName() string     { return getField[string](&c.contact, "GivenName") }
func (c *Contact) SetGivenName(s string) { c.contact.set("GivenName", s) }

func (c *Contact) Initials() string     { return getField[string](&c.contact, "Initials") }
func (c *Contact) SetInitials(s string) { c.contact.set("Initials", s) }

func (c *Contact) MiddleName() string     { return getField[string](&c.contact, "MiddleName") }
func (c *Contact) SetMiddleName(s string) { c.contact.set("MiddleName", s) }

func (c *Contact) Nickname() string     { return getField[string](&c.contact, "Nickname") }
func (c *Contact) SetNickname(s string) { c.contact.set("Nickname", s) }

func (c *Contact) CompanyName() string     { return getField[string](&c.contact, "CompanyName") }
func (c *Contact) SetCompanyName(s string) { c.contact.set("CompanyName", s) }

// EmailAddresses returns the keyed address entries in wire order.
func (c *Contact) EmailAddresses() []Entry     { return getList[Entry](&c.contact, "EmailAddresses") }
func (c *Contact) SetEmailAddresses(e []Entry) { setList(&c.contact, "EmailAddresses", e) }

// EmailAddress returns the address stored under key, if any.
func (c *Contact) EmailAddress(key string) (string, bool) {
	return entryValue(c.EmailAddresses(), key)
}

// PhoneNumbers returns the keyed phone entries, e.g. BusinessPhone, in wire order.
func (c *Contact) PhoneNumbers() []Entry     { return getList[Entry](&c.contact, "PhoneNumbers") }
func (c *Contact) SetPhoneNumbers(e []Entry) { setList(&c.contact, "PhoneNumbers", e) }

// PhoneNumber returns the number stored under key, if any.
func (c *Contact) PhoneNumber(key string) (string, bool) {
	return entryValue(c.PhoneNumbers(), key)
}

func (c *Contact) AssistantName() string     { return getField[string](&c.contact, "AssistantName") }
func (c *Contact) SetAssistantName(s string) { c.contact.set("AssistantName", s) }

func (c *Contact) Birthday() DateTime     { return getField[DateTime](&c.contact, "Birthday") }
func (c *Contact) SetBirthday(d DateTime) { c.contact.set("Birthday", d) }

func (c *Contact) BusinessHomePage() string     { return getField[string](&c.contact, "BusinessHomePage") }
func (c *Contact) SetBusinessHomePage(s string) { c.contact.set("BusinessHomePage", s) }

func (c *Contact) Children() []string     { return getList[string](&c.contact, "Children") }
func (c *Contact) SetChildren(s []string) { setList(&c.contact, "Children", s) }

func (c *Contact) Companies() []string     { return getList[string](&c.contact, "Companies") }
func (c *Contact) SetCompanies(s []string) { setList(&c.contact, "Companies", s) }

func (c *Contact) Department() string     { return getField[string](&c.contact, "Department") }
func (c *Contact) SetDepartment(s string) { c.contact.set("Department", s) }

func (c *Contact) Generation() string     { return getField[string](&c.contact, "Generation") }
func (c *Contact) SetGeneration(s string) { c.contact.set("Generation", s) }

func (c *Contact) JobTitle() string     { return getField[string](&c.contact, "JobTitle") }
func (c *Contact) SetJobTitle(s string) { c.contact.set("JobTitle", s) }

func (c *Contact) Manager() string     { return getField[string](&c.contact, "Manager") }
func (c *Contact) SetManager(s string) { c.contact.set("Manager", s) }

func (c *Contact) Mileage() string     { return getField[string](&c.contact, "Mileage") }
func (c *Contact) SetMileage(s string) { c.contact.set("Mileage", s) }

func (c *Contact) OfficeLocation() string     { return getField[string](&c.contact, "OfficeLocation") }
func (c *Contact) SetOfficeLocation(s string) { c.contact.set("OfficeLocation", s) }

func (c *Contact) Profession() string     { return getField[string](&c.contact, "Profession") }
func (c *Contact) SetProfession(s string) { c.contact.set("Profession", s) }

func (c *Contact) SpouseName() string     { return getField[string](&c.contact, "SpouseName") }
func (c *Contact) SetSpouseName(s string) { c.contact.set("SpouseName", s) }

func (c *Contact) Surname() string     { return getField[string](&c.contact, "Surname") }
func (c *Contact) SetSurname(s string) { c.contact.set("Surname", s) }

func (c *Contact) WeddingAnniversary() DateTime { return getField[DateTime](&c.contact, "WeddingAnniversary") }
func (c *Contact) SetWeddingAnniversary(d DateTime) {
	c.contact.set("WeddingAnniversary", d)
}

func entryValue(entries []Entry, key string) (string, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}
