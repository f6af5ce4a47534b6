package models

import (
	"github.com/shopspring/decimal"
)

// NoIndex marks an optional cross-entity index reference as absent.
const NoIndex = -1

// Address carries the postal fields rendered into N3/N4 segments. Line2
// is optional everywhere it appears.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
}

// Empty reports whether no address component was supplied at all.
func (a Address) Empty() bool {
	return a.Line1 == "" && a.City == "" && a.State == "" && a.PostalCode == ""
}

type ContactInfo struct {
	Name  string
	Phone string
}

// BillingProvider is the 2000A/2010AA entity. Either OrganizationName or
// LastName/FirstName is populated, never both.
type BillingProvider struct {
	NPI              string
	TaxonomyCode     string
	EmployerID       string
	OrganizationName string
	LastName         string
	FirstName        string
	Address          Address
	Contact          *ContactInfo
}

type Subscriber struct {
	MemberID             string
	LastName             string
	FirstName            string
	Address              Address
	BirthDate            string // YYYYMMDD
	Gender               GenderCode
	BillingProviderIndex int
	PaymentResponsibility PaymentResponsibilityCode
	ClaimFiling          ClaimFilingCode
	IsDependent          bool
	Relationship         RelationshipCode
}

type RenderingProvider struct {
	NPI          string
	TaxonomyCode string
	LastName     string
	FirstName    string
	EmployerID   string
}

type ServiceLine struct {
	SubscriberIndex        int
	PatientIndex           int // NoIndex when the subscriber is the patient
	ProcedureCode          string
	Modifiers              []string
	ChargeAmount           decimal.Decimal
	Units                  int
	ServiceDate            string // YYYYMMDD, may be empty
	RenderingProviderIndex int    // NoIndex when absent
}

type DiagnosisCode struct {
	TypeCode string
	Code     string
}

type ClaimInformation struct {
	SubscriberIndex      int
	PatientControlNumber string
	ChargeAmount         decimal.Decimal
	PlaceOfService       string
	FrequencyCode        string
	SignatureIndicator   string
	PlanParticipation    string
	ReleaseInformation   string
	BenefitsAssignment   string
	Diagnoses            []DiagnosisCode
}

type ServiceFacility struct {
	NPI              string
	OrganizationName string
	Address          Address
}

type Payer struct {
	OrganizationName string
	PayerID          string
}

type Submitter struct {
	Contact ContactInfo
}
