package converter

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/claimstream/edi837-app/conf"
	"github.com/claimstream/edi837-app/edi/models"
	"github.com/claimstream/edi837-app/edi/x12"
	"github.com/claimstream/edi837-app/log"
)

// Document mirrors the JSON claim payload accepted by the converter.
type Document struct {
	Submitter        *Submitter        `json:"submitter,omitempty"`
	Billing          *Provider         `json:"billing,omitempty"`
	Receiver         *Receiver         `json:"receiver,omitempty"`
	Subscriber       *Party            `json:"subscriber,omitempty"`
	Dependent        *Party            `json:"dependent,omitempty"`
	ClaimInformation *ClaimInformation `json:"claimInformation,omitempty"`
	Rendering        *Provider         `json:"rendering,omitempty"`
}

type ContactInformation struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type Submitter struct {
	ContactInformation *ContactInformation `json:"contactInformation,omitempty"`
}

type Receiver struct {
	OrganizationName string `json:"organizationName"`
}

type Address struct {
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type Provider struct {
	NPI                string              `json:"npi"`
	TaxonomyCode       string              `json:"taxonomyCode"`
	EmployerID         string              `json:"employerId"`
	OrganizationName   string              `json:"organizationName,omitempty"`
	LastName           string              `json:"lastName,omitempty"`
	FirstName          string              `json:"firstName,omitempty"`
	Address            Address             `json:"address"`
	ContactInformation *ContactInformation `json:"contactInformation,omitempty"`
}

type Party struct {
	MemberID                       string  `json:"memberId"`
	LastName                       string  `json:"lastName"`
	FirstName                      string  `json:"firstName"`
	Gender                         string  `json:"gender,omitempty"`
	DateOfBirth                    string  `json:"dateOfBirth"`
	Address                        Address `json:"address"`
	PaymentResponsibilityLevelCode string  `json:"paymentResponsibilityLevelCode,omitempty"`
	RelationshipToSubscriberCode   string  `json:"relationshipToSubscriberCode,omitempty"`
}

type ClaimInformation struct {
	ClaimFilingCode                          string                   `json:"claimFilingCode,omitempty"`
	PatientControlNumber                     string                   `json:"patientControlNumber"`
	ClaimChargeAmount                        decimal.Decimal          `json:"claimChargeAmount"`
	PlaceOfServiceCode                       string                   `json:"placeOfServiceCode"`
	ClaimFrequencyCode                       string                   `json:"claimFrequencyCode,omitempty"`
	SignatureIndicator                       string                   `json:"signatureIndicator,omitempty"`
	PlanParticipationCode                    string                   `json:"planParticipationCode,omitempty"`
	ReleaseInformationCode                   string                   `json:"releaseInformationCode,omitempty"`
	BenefitsAssignmentCertificationIndicator string                   `json:"benefitsAssignmentCertificationIndicator,omitempty"`
	HealthCareCodeInformation                []HealthCareCode         `json:"healthCareCodeInformation,omitempty"`
	ClaimSupplementalInformation             *SupplementalInformation `json:"claimSupplementalInformation,omitempty"`
	ServiceFacilityLocation                  *ServiceFacility         `json:"serviceFacilityLocation,omitempty"`
	ServiceLines                             []ServiceLine            `json:"serviceLines,omitempty"`
}

type HealthCareCode struct {
	DiagnosisTypeCode string `json:"diagnosisTypeCode"`
	DiagnosisCode     string `json:"diagnosisCode"`
}

type SupplementalInformation struct {
	PriorAuthorizationNumber string `json:"priorAuthorizationNumber,omitempty"`
}

type ServiceFacility struct {
	NPI              string  `json:"npi"`
	OrganizationName string  `json:"organizationName"`
	Address          Address `json:"address"`
}

type ServiceLine struct {
	ServiceDate         string               `json:"serviceDate"`
	ProfessionalService *ProfessionalService `json:"professionalService,omitempty"`
	RenderingProvider   *Provider            `json:"renderingProvider,omitempty"`
}

type ProfessionalService struct {
	ProcedureCode        string          `json:"procedureCode"`
	ProcedureModifiers   []string        `json:"procedureModifiers,omitempty"`
	LineItemChargeAmount decimal.Decimal `json:"lineItemChargeAmount"`
	ServiceUnitCount     decimal.Decimal `json:"serviceUnitCount"`
}

// ConvertJSON parses a claim document and renders the 837P transaction.
func ConvertJSON(data []byte, envelope x12.Envelope) (string, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", errors.Wrap(err, "parsing claim document")
	}
	return Convert(&doc, envelope)
}

// Convert maps a claim document onto a record store and renders the
// transaction. Nothing is returned on error; there is no partial
// output.
func Convert(doc *Document, envelope x12.Envelope) (string, error) {
	store := x12.NewRecordStore()

	if doc.Submitter != nil && doc.Submitter.ContactInformation != nil {
		store.AddSubmitter(contactInfo(*doc.Submitter.ContactInformation))
	}

	if doc.Billing == nil {
		return "", errors.New("billing provider information is required")
	}
	providerIdx, err := store.AddBillingProvider(billingProvider(doc.Billing))
	if err != nil {
		return "", err
	}

	if doc.Subscriber == nil {
		return "", errors.New("subscriber information is required")
	}
	filing, err := claimFilingCode(doc.ClaimInformation)
	if err != nil {
		return "", err
	}

	subscriberIdx, err := store.AddSubscriber(party(doc.Subscriber, providerIdx, filing, false))
	if err != nil {
		return "", err
	}

	if doc.Receiver != nil && doc.Receiver.OrganizationName != "" {
		if err := store.AddPayer(models.Payer{
			OrganizationName: doc.Receiver.OrganizationName,
			PayerID:          defaultPayerID(),
		}); err != nil {
			return "", err
		}
	}

	if doc.Dependent != nil {
		if _, err := store.AddSubscriber(party(doc.Dependent, providerIdx, filing, true)); err != nil {
			return "", err
		}
	}

	if doc.ClaimInformation != nil {
		if err := addClaim(store, doc.ClaimInformation, subscriberIdx); err != nil {
			return "", err
		}
	}

	if doc.Rendering != nil {
		if _, err := store.AddRenderingProvider(renderingProvider(doc.Rendering)); err != nil {
			return "", err
		}
	}

	log.Converter.Debugf("claim document mapped, building transaction")

	return x12.NewAssembler(store, envelope).Build()
}

func addClaim(store *x12.RecordStore, ci *ClaimInformation, subscriberIdx int) error {
	diagnoses := make([]models.DiagnosisCode, 0, len(ci.HealthCareCodeInformation))
	for _, d := range ci.HealthCareCodeInformation {
		diagnoses = append(diagnoses, models.DiagnosisCode{
			TypeCode: d.DiagnosisTypeCode,
			Code:     d.DiagnosisCode,
		})
	}

	err := store.AddClaimInformation(models.ClaimInformation{
		SubscriberIndex:      subscriberIdx,
		PatientControlNumber: ci.PatientControlNumber,
		ChargeAmount:         ci.ClaimChargeAmount,
		PlaceOfService:       ci.PlaceOfServiceCode,
		FrequencyCode:        ci.ClaimFrequencyCode,
		SignatureIndicator:   ci.SignatureIndicator,
		PlanParticipation:    ci.PlanParticipationCode,
		ReleaseInformation:   ci.ReleaseInformationCode,
		BenefitsAssignment:   ci.BenefitsAssignmentCertificationIndicator,
		Diagnoses:            diagnoses,
	})
	if err != nil {
		return err
	}

	if supp := ci.ClaimSupplementalInformation; supp != nil && supp.PriorAuthorizationNumber != "" {
		if err := store.AddPriorAuthorization(supp.PriorAuthorizationNumber); err != nil {
			return err
		}
	}

	if fac := ci.ServiceFacilityLocation; fac != nil {
		if err := store.AddServiceFacility(models.ServiceFacility{
			NPI:              fac.NPI,
			OrganizationName: fac.OrganizationName,
			Address:          address(fac.Address),
		}); err != nil {
			return err
		}
	}

	for _, line := range ci.ServiceLines {
		if line.ProfessionalService == nil {
			continue
		}
		service := line.ProfessionalService

		renderingIdx := models.NoIndex
		if line.RenderingProvider != nil {
			renderingIdx, err = store.AddRenderingProvider(renderingProvider(line.RenderingProvider))
			if err != nil {
				return err
			}
		}

		if _, err := store.AddServiceLine(models.ServiceLine{
			SubscriberIndex:        subscriberIdx,
			PatientIndex:           models.NoIndex,
			ProcedureCode:          service.ProcedureCode,
			Modifiers:              service.ProcedureModifiers,
			ChargeAmount:           service.LineItemChargeAmount,
			Units:                  int(service.ServiceUnitCount.IntPart()),
			ServiceDate:            line.ServiceDate,
			RenderingProviderIndex: renderingIdx,
		}); err != nil {
			return err
		}
	}

	return nil
}

func billingProvider(p *Provider) models.BillingProvider {
	provider := models.BillingProvider{
		NPI:              p.NPI,
		TaxonomyCode:     p.TaxonomyCode,
		EmployerID:       p.EmployerID,
		OrganizationName: p.OrganizationName,
		LastName:         p.LastName,
		FirstName:        p.FirstName,
		Address:          address(p.Address),
	}
	if p.ContactInformation != nil {
		c := contactInfo(*p.ContactInformation)
		provider.Contact = &c
	}
	return provider
}

func renderingProvider(p *Provider) models.RenderingProvider {
	return models.RenderingProvider{
		NPI:          p.NPI,
		TaxonomyCode: p.TaxonomyCode,
		LastName:     p.LastName,
		FirstName:    p.FirstName,
		EmployerID:   p.EmployerID,
	}
}

func party(p *Party, providerIdx int, filing models.ClaimFilingCode, isDependent bool) models.Subscriber {
	return models.Subscriber{
		MemberID:              p.MemberID,
		LastName:              p.LastName,
		FirstName:             p.FirstName,
		Address:               address(p.Address),
		BirthDate:             p.DateOfBirth,
		Gender:                gender(p.Gender),
		BillingProviderIndex:  providerIdx,
		PaymentResponsibility: paymentCode(p.PaymentResponsibilityLevelCode),
		ClaimFiling:           filing,
		IsDependent:           isDependent,
		Relationship:          models.RelationshipCode(p.RelationshipToSubscriberCode),
	}
}

func address(a Address) models.Address {
	return models.Address{
		Line1:      a.Address1,
		Line2:      a.Address2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

func contactInfo(c ContactInformation) models.ContactInfo {
	return models.ContactInfo{Name: c.Name, Phone: c.PhoneNumber}
}

// claimFilingCode reads SBR09 from the claim information block. An
// absent code maps to "ZZ"; an unknown one is an error rather than a
// silent default.
func claimFilingCode(ci *ClaimInformation) (models.ClaimFilingCode, error) {
	if ci == nil || ci.ClaimFilingCode == "" {
		return models.FilingUnknown, nil
	}
	code := models.ClaimFilingCode(strings.ToUpper(ci.ClaimFilingCode))
	if !code.Valid() {
		return "", &x12.InvalidValueError{Field: "claimFilingCode", Value: ci.ClaimFilingCode}
	}
	return code, nil
}

// paymentCode defaults to Primary when the payload omits or mangles the
// responsibility level.
func paymentCode(s string) models.PaymentResponsibilityCode {
	code := models.PaymentResponsibilityCode(s)
	if !code.Valid() {
		return models.PaymentPrimary
	}
	return code
}

func gender(s string) models.GenderCode {
	if s == "" {
		return models.GenderUnknown
	}
	return models.GenderCode(s)
}

func defaultPayerID() string {
	if v := conf.GetEnv("EDI_DEFAULT_PAYER_ID"); v != "" {
		return v
	}
	return "WIMCD"
}
