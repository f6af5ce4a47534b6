package x12

import (
	"github.com/claimstream/edi837-app/edi/models"
)

// RecordStore is the append-only registry of claim entities for one
// transaction. Entities are immutable once added; Build reads the store
// but never mutates it, so one store can back any number of builds.
type RecordStore struct {
	billingProviders   []models.BillingProvider
	subscribers        []models.Subscriber
	serviceLines       []models.ServiceLine
	renderingProviders []models.RenderingProvider

	claim              *models.ClaimInformation
	facility           *models.ServiceFacility
	payer              *models.Payer
	submitter          *models.Submitter
	priorAuthorization string

	// name+phone pairs already attached to some entity's PER segment
	contactKeys map[string]string
}

func NewRecordStore() *RecordStore {
	return &RecordStore{contactKeys: make(map[string]string)}
}

func contactKey(c models.ContactInfo) string {
	return c.Name + "|" + c.Phone
}

// AddSubmitter records the submitter contact and claims its name/phone
// pair, so an identical contact on a billing provider is dropped rather
// than emitted twice.
func (s *RecordStore) AddSubmitter(contact models.ContactInfo) {
	s.submitter = &models.Submitter{Contact: contact}

	key := contactKey(contact)
	if _, ok := s.contactKeys[key]; !ok {
		s.contactKeys[key] = "submitter"
	}
}

func (s *RecordStore) AddBillingProvider(p models.BillingProvider) (int, error) {
	switch {
	case p.NPI == "":
		return 0, &MissingFieldError{Entity: "billing provider", Field: "npi"}
	case p.TaxonomyCode == "":
		return 0, &MissingFieldError{Entity: "billing provider", Field: "taxonomyCode"}
	case p.EmployerID == "":
		return 0, &MissingFieldError{Entity: "billing provider", Field: "employerId"}
	}
	if err := requireAddress("billing provider", p.Address); err != nil {
		return 0, err
	}
	if p.OrganizationName == "" && (p.LastName == "" || p.FirstName == "") {
		return 0, &MissingFieldError{Entity: "billing provider", Field: "organizationName or lastName/firstName"}
	}

	if p.Contact != nil {
		key := contactKey(*p.Contact)
		if _, ok := s.contactKeys[key]; ok {
			// already attached elsewhere, e.g. the submitter
			p.Contact = nil
		} else {
			s.contactKeys[key] = "billing"
		}
	}

	s.billingProviders = append(s.billingProviders, p)
	return len(s.billingProviders) - 1, nil
}

func (s *RecordStore) AddSubscriber(sub models.Subscriber) (int, error) {
	entity := "subscriber"
	if sub.IsDependent {
		entity = "dependent"
	}

	switch {
	case sub.MemberID == "":
		return 0, &MissingFieldError{Entity: entity, Field: "memberId"}
	case sub.LastName == "":
		return 0, &MissingFieldError{Entity: entity, Field: "lastName"}
	case sub.FirstName == "":
		return 0, &MissingFieldError{Entity: entity, Field: "firstName"}
	case sub.BirthDate == "":
		return 0, &MissingFieldError{Entity: entity, Field: "dateOfBirth"}
	}
	if err := requireAddress(entity, sub.Address); err != nil {
		return 0, err
	}

	switch {
	case !sub.Gender.Valid():
		return 0, &InvalidValueError{Field: "gender", Value: string(sub.Gender)}
	case !sub.PaymentResponsibility.Valid():
		return 0, &InvalidValueError{Field: "paymentResponsibilityLevelCode", Value: string(sub.PaymentResponsibility)}
	case !sub.ClaimFiling.Valid():
		return 0, &InvalidValueError{Field: "claimFilingCode", Value: string(sub.ClaimFiling)}
	case sub.Relationship != "" && !sub.Relationship.Valid():
		return 0, &InvalidValueError{Field: "relationshipToSubscriberCode", Value: string(sub.Relationship)}
	}

	s.subscribers = append(s.subscribers, sub)
	return len(s.subscribers) - 1, nil
}

func (s *RecordStore) AddRenderingProvider(p models.RenderingProvider) (int, error) {
	switch {
	case p.NPI == "":
		return 0, &MissingFieldError{Entity: "rendering provider", Field: "npi"}
	case p.TaxonomyCode == "":
		return 0, &MissingFieldError{Entity: "rendering provider", Field: "taxonomyCode"}
	case p.LastName == "" || p.FirstName == "":
		return 0, &MissingFieldError{Entity: "rendering provider", Field: "lastName/firstName"}
	}

	s.renderingProviders = append(s.renderingProviders, p)
	return len(s.renderingProviders) - 1, nil
}

func (s *RecordStore) AddServiceLine(line models.ServiceLine) (int, error) {
	switch {
	case line.ProcedureCode == "":
		return 0, &MissingFieldError{Entity: "service line", Field: "procedureCode"}
	case line.ChargeAmount.IsZero():
		return 0, &MissingFieldError{Entity: "service line", Field: "lineItemChargeAmount"}
	case line.Units <= 0:
		return 0, &MissingFieldError{Entity: "service line", Field: "serviceUnitCount"}
	}

	s.serviceLines = append(s.serviceLines, line)
	return len(s.serviceLines) - 1, nil
}

// AddClaimInformation sets the transaction's single claim. Indicator
// codes left empty take the standard defaults.
func (s *RecordStore) AddClaimInformation(c models.ClaimInformation) error {
	switch {
	case c.PatientControlNumber == "":
		return &MissingFieldError{Entity: "claim", Field: "patientControlNumber"}
	case c.ChargeAmount.IsZero():
		return &MissingFieldError{Entity: "claim", Field: "claimChargeAmount"}
	case c.PlaceOfService == "":
		return &MissingFieldError{Entity: "claim", Field: "placeOfServiceCode"}
	}

	if c.FrequencyCode == "" {
		c.FrequencyCode = "1"
	}
	if c.SignatureIndicator == "" {
		c.SignatureIndicator = "Y"
	}
	if c.PlanParticipation == "" {
		c.PlanParticipation = "A"
	}
	if c.ReleaseInformation == "" {
		c.ReleaseInformation = "Y"
	}
	if c.BenefitsAssignment == "" {
		c.BenefitsAssignment = "Y"
	}

	s.claim = &c
	return nil
}

func (s *RecordStore) AddServiceFacility(f models.ServiceFacility) error {
	switch {
	case f.NPI == "":
		return &MissingFieldError{Entity: "service facility", Field: "npi"}
	case f.OrganizationName == "":
		return &MissingFieldError{Entity: "service facility", Field: "organizationName"}
	}
	if err := requireAddress("service facility", f.Address); err != nil {
		return err
	}

	s.facility = &f
	return nil
}

func (s *RecordStore) AddPayer(p models.Payer) error {
	switch {
	case p.OrganizationName == "":
		return &MissingFieldError{Entity: "payer", Field: "organizationName"}
	case p.PayerID == "":
		return &MissingFieldError{Entity: "payer", Field: "payerId"}
	}

	s.payer = &p
	return nil
}

func (s *RecordStore) AddPriorAuthorization(number string) error {
	if number == "" {
		return &MissingFieldError{Entity: "prior authorization", Field: "priorAuthorizationNumber"}
	}

	s.priorAuthorization = number
	return nil
}

func requireAddress(entity string, a models.Address) error {
	switch {
	case a.Line1 == "":
		return &MissingFieldError{Entity: entity, Field: "address1"}
	case a.City == "":
		return &MissingFieldError{Entity: entity, Field: "city"}
	case a.State == "":
		return &MissingFieldError{Entity: entity, Field: "state"}
	case a.PostalCode == "":
		return &MissingFieldError{Entity: entity, Field: "postalCode"}
	}
	return nil
}

// validateReferences performs the build-time dangling-index checks
// across entities.
func (s *RecordStore) validateReferences() error {
	for _, sub := range s.subscribers {
		if sub.BillingProviderIndex < 0 || sub.BillingProviderIndex >= len(s.billingProviders) {
			return &DanglingReferenceError{Kind: "billing provider", Index: sub.BillingProviderIndex}
		}
	}

	if s.claim != nil {
		if s.claim.SubscriberIndex < 0 || s.claim.SubscriberIndex >= len(s.subscribers) {
			return &DanglingReferenceError{Kind: "subscriber", Index: s.claim.SubscriberIndex}
		}
	}

	for _, line := range s.serviceLines {
		if line.SubscriberIndex < 0 || line.SubscriberIndex >= len(s.subscribers) {
			return &DanglingReferenceError{Kind: "subscriber", Index: line.SubscriberIndex}
		}
		if line.PatientIndex != models.NoIndex &&
			(line.PatientIndex < 0 || line.PatientIndex >= len(s.subscribers)) {
			return &DanglingReferenceError{Kind: "patient", Index: line.PatientIndex}
		}
		if line.RenderingProviderIndex != models.NoIndex &&
			(line.RenderingProviderIndex < 0 || line.RenderingProviderIndex >= len(s.renderingProviders)) {
			return &DanglingReferenceError{Kind: "rendering provider", Index: line.RenderingProviderIndex}
		}
	}

	return nil
}
