package x12

import (
	"github.com/claimstream/edi837-app/edi/models"
)

// NameData is the loop-independent view of an entity handed to the
// formatter. Callers populate the fields their loop context reads and
// leave the rest zero.
type NameData struct {
	OrganizationName string

	LastName   string
	FirstName  string
	MiddleName string
	NamePrefix string
	NameSuffix string

	NPI      string
	MemberID string
	PayerID  string
	ID       string
}

// Formatter renders entities into delimited segments. Rendering is pure
// except for the provider-registry check on name segments.
type Formatter struct {
	registry *ProviderRegistry
}

func NewFormatter(registry *ProviderRegistry) *Formatter {
	return &Formatter{registry: registry}
}

// Name renders the NM1 segment for d in the given loop context. ok is
// false when the provider registry suppressed this occurrence; the
// caller must then omit the dependent address and identification
// segments as well.
func (f *Formatter) Name(context LoopContext, d NameData) (string, bool) {
	if !f.registry.RegisterIfNew(d.NPI, context) {
		return "", false
	}

	code := context.EntityIdentifierCode()
	qualifier := context.EntityTypeQualifier(d.OrganizationName)

	// Patient names carry only last/first, with no identification pair.
	if context == PatientContext {
		return segment(SegName, code, qualifier, d.LastName, d.FirstName), true
	}

	elements := []string{SegName, code, qualifier}
	if qualifier == "1" {
		elements = append(elements, d.LastName, d.FirstName, d.MiddleName, d.NamePrefix, d.NameSuffix)
	} else {
		elements = append(elements, d.OrganizationName, "", "", "", "")
	}

	idQualifier, idValue := context.Identification(d)
	elements = append(elements, idQualifier, idValue)

	return segment(elements...), true
}

// AddressStyle selects how the N3 segment carries the second address
// line; the three loops that emit addresses each do it differently.
type AddressStyle uint8

const (
	// AddressTwoField always renders both N3 fields, the second possibly
	// empty (billing provider).
	AddressTwoField AddressStyle = iota
	// AddressSingleField renders only the first line (subscriber,
	// dependent).
	AddressSingleField
	// AddressOptionalSecond renders the second field only when present
	// (service facility).
	AddressOptionalSecond
)

// Address renders the fixed N3/N4 pair for an entity's address.
func (f *Formatter) Address(a models.Address, style AddressStyle) []string {
	var n3 string
	switch style {
	case AddressTwoField:
		n3 = segment(SegAddressLine, a.Line1, a.Line2)
	case AddressSingleField:
		n3 = segment(SegAddressLine, a.Line1)
	case AddressOptionalSecond:
		if a.Line2 != "" {
			n3 = segment(SegAddressLine, a.Line1, a.Line2)
		} else {
			n3 = segment(SegAddressLine, a.Line1)
		}
	}

	n4 := segment(SegCityStatePostal, a.City, a.State, a.PostalCode)
	return []string{n3, n4}
}

// Demographics renders the DMG birth date and gender segment.
func (f *Formatter) Demographics(birthDate string, gender models.GenderCode) string {
	return segment(SegDemographics, "D8", birthDate, string(gender))
}

// Contact renders the PER contact segment.
func (f *Formatter) Contact(c models.ContactInfo) string {
	return segment(SegContactInformation, "IC", c.Name, "TE", c.Phone)
}
