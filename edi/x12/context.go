package x12

// LoopContext identifies which hierarchical loop an entity is rendered
// into. Identification and entity-type rules vary per loop, and the set
// is closed: the switches below are exhaustive, so an unhandled context
// cannot fall through to another loop's mapping.
type LoopContext uint8

const (
	BillingProviderContext LoopContext = iota
	RenderingProviderContext
	SubscriberContext
	PatientContext
	PayerContext
	ServiceFacilityContext
	SubmitterContext
	ReceiverContext
)

func (c LoopContext) String() string {
	switch c {
	case BillingProviderContext:
		return "billing provider"
	case RenderingProviderContext:
		return "rendering provider"
	case SubscriberContext:
		return "subscriber"
	case PatientContext:
		return "patient"
	case PayerContext:
		return "payer"
	case ServiceFacilityContext:
		return "service facility"
	case SubmitterContext:
		return "submitter"
	case ReceiverContext:
		return "receiver"
	}
	return "unknown"
}

// EntityIdentifierCode returns the NM1-01 value for the loop.
func (c LoopContext) EntityIdentifierCode() string {
	switch c {
	case BillingProviderContext:
		return "85"
	case RenderingProviderContext:
		return "82"
	case SubscriberContext:
		return "IL"
	case PatientContext:
		return "QC"
	case PayerContext:
		return "PR"
	case ServiceFacilityContext:
		return "77"
	case SubmitterContext:
		return "41"
	case ReceiverContext:
		return "40"
	}
	return ""
}

// EntityTypeQualifier resolves NM1-02: person ("1") or non-person
// ("2"). Submitter, receiver, payer, and facility loops force a
// non-person entity; patients are always persons; the remaining loops
// derive the qualifier from whether an organization name is populated.
func (c LoopContext) EntityTypeQualifier(organizationName string) string {
	switch c {
	case SubmitterContext, ReceiverContext, PayerContext, ServiceFacilityContext:
		return "2"
	case PatientContext:
		return "1"
	case BillingProviderContext, RenderingProviderContext, SubscriberContext:
		if organizationName != "" {
			return "2"
		}
		return "1"
	}
	return "1"
}

// Identification resolves the NM1-08 qualifier and NM1-09 value for the
// loop. Both are empty for loops that carry no identification pair.
func (c LoopContext) Identification(d NameData) (qualifier, value string) {
	switch c {
	case BillingProviderContext, RenderingProviderContext, ServiceFacilityContext:
		return QualifierNPI, d.NPI
	case SubscriberContext:
		return QualifierMemberID, d.MemberID
	case PayerContext:
		return QualifierPayerID, d.PayerID
	case SubmitterContext, ReceiverContext:
		return QualifierETIN, d.ID
	case PatientContext:
		return "", ""
	}
	return "", ""
}

// RegistryGoverned reports whether NPI de-duplication applies to name
// segments emitted in this loop.
func (c LoopContext) RegistryGoverned() bool {
	switch c {
	case BillingProviderContext, RenderingProviderContext, ServiceFacilityContext:
		return true
	}
	return false
}
