package x12

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claimstream/edi837-app/edi/models"
	"github.com/claimstream/edi837-app/log"
)

// Assembler walks a record store and emits the transaction's segments
// in hierarchical order: header, billing-provider loops with their
// subscriber loops (payer after the first subscriber), claim loop,
// service-line loops, leftover rendering providers, trailer.
type Assembler struct {
	store    *RecordStore
	envelope Envelope
}

func NewAssembler(store *RecordStore, envelope Envelope) *Assembler {
	return &Assembler{store: store, envelope: envelope}
}

// Build renders the complete transaction. A fresh provider registry is
// created on every call, so repeated builds over one store produce
// byte-identical output. The rendered transaction is the segments
// joined by single newlines, with no trailing newline.
func (a *Assembler) Build() (string, error) {
	if err := a.store.validateReferences(); err != nil {
		return "", err
	}

	formatter := NewFormatter(NewProviderRegistry())

	segments := a.headerSegments(formatter)

	for i := range a.store.billingProviders {
		segments = append(segments, a.billingProviderLoop(formatter, i)...)

		for idx, sub := range a.store.subscribers {
			if sub.BillingProviderIndex != i {
				continue
			}
			segments = append(segments, a.subscriberLoop(formatter, idx)...)

			// Payer rides immediately after the first subscriber's loop.
			if idx == 0 && a.store.payer != nil {
				payer := a.store.payer
				name, _ := formatter.Name(PayerContext, NameData{
					OrganizationName: payer.OrganizationName,
					PayerID:          payer.PayerID,
				})
				segments = append(segments, name)
			}
		}
	}

	segments = append(segments, a.claimLoop(formatter)...)
	segments = append(segments, a.serviceLineLoop(formatter)...)
	segments = append(segments, a.renderingProviderLoop(formatter)...)

	count := transactionSetSegmentCount(segments)
	segments = append(segments, a.trailerSegments(count)...)

	log.EDI.Debugf("assembled transaction with %d segments (SE count %d)", len(segments), count)

	return strings.Join(segments, "\n"), nil
}

func (a *Assembler) headerSegments(f *Formatter) []string {
	e := a.envelope

	isa := segment(SegInterchangeControl,
		"00", strings.Repeat(" ", 10),
		"00", strings.Repeat(" ", 10),
		e.SenderQualifier, fmt.Sprintf("%-15s", e.SenderID),
		e.ReceiverQualifier, fmt.Sprintf("%-15s", e.ReceiverID),
		e.InterchangeDate, e.InterchangeTime,
		"^", "00501", e.ControlNumber, "0", e.UsageIndicator,
		SubElementSeparator)

	gs := segment(SegFunctionalGroup, "HC",
		e.ApplicationSenderID, e.ReceiverID,
		e.GroupDate, e.GroupTime, e.ControlNumber, "X", e.Version)

	st := segment(SegTransactionSet, "837", e.ControlNumber, e.Version)

	bht := segment(SegBeginningHierarchical,
		"0019", "00", "1", e.GroupDate, e.InterchangeTime, "CH")

	submitterName, _ := f.Name(SubmitterContext, NameData{
		OrganizationName: e.SubmitterName,
		ID:               e.SubmitterID,
	})
	submitterContact := f.Contact(models.ContactInfo{
		Name:  e.SubmitterContactName,
		Phone: e.SubmitterContactPhone,
	})
	receiverName, _ := f.Name(ReceiverContext, NameData{
		OrganizationName: e.ReceiverName,
		ID:               e.ReceiverID,
	})

	return []string{isa, gs, st, bht, submitterName, submitterContact, receiverName}
}

func (a *Assembler) billingProviderLoop(f *Formatter, index int) []string {
	p := a.store.billingProviders[index]

	segments := []string{
		segment(SegHierarchicalLevel, "1", "", HLInformationSource, "1"),
		segment(SegProvider, ProviderTypeBilling, QualifierTaxonomy, p.TaxonomyCode),
	}

	name, ok := f.Name(BillingProviderContext, NameData{
		OrganizationName: p.OrganizationName,
		LastName:         p.LastName,
		FirstName:        p.FirstName,
		NPI:              p.NPI,
	})
	if ok {
		segments = append(segments, name)
		segments = append(segments, f.Address(p.Address, AddressTwoField)...)
	} else {
		log.EDI.Debugf("billing provider NPI %s already registered, name block suppressed", p.NPI)
	}

	segments = append(segments, segment(SegReference, QualifierEmployerID, p.EmployerID))

	if p.Contact != nil {
		segments = append(segments, f.Contact(*p.Contact))
	}

	return segments
}

func (a *Assembler) subscriberLoop(f *Formatter, index int) []string {
	sub := a.store.subscribers[index]
	if sub.IsDependent {
		return a.dependentLoop(f, sub)
	}

	subordinates := len(a.store.subscribers) - 1
	segments := []string{
		segment(SegHierarchicalLevel, "2", "1", HLSubscriber, strconv.Itoa(subordinates)),
	}

	// SBR02 reads "self" only on the subscriber at store index 0.
	relationship := ""
	if index == 0 {
		relationship = string(models.RelationshipSelf)
	}
	segments = append(segments, segment(SegSubscriberInformation,
		string(sub.PaymentResponsibility), relationship,
		"", "", "", "", "", "", string(sub.ClaimFiling)))

	name, _ := f.Name(SubscriberContext, NameData{
		LastName:  sub.LastName,
		FirstName: sub.FirstName,
		MemberID:  sub.MemberID,
	})
	segments = append(segments, name)

	// Address and demographics are carried on the first subscriber only.
	if index == 0 {
		segments = append(segments, f.Address(sub.Address, AddressSingleField)...)
		segments = append(segments, f.Demographics(sub.BirthDate, sub.Gender))
	}

	return segments
}

func (a *Assembler) dependentLoop(f *Formatter, sub models.Subscriber) []string {
	// Dependent levels are terminal: HL04 is always "0".
	segments := []string{
		segment(SegHierarchicalLevel, "3", "2", HLDependent, "0"),
	}

	if sub.PaymentResponsibility == models.PaymentPrimary {
		segments = append(segments, segment(SegPatient, "01"))
		name, _ := f.Name(PatientContext, NameData{
			LastName:  sub.LastName,
			FirstName: sub.FirstName,
		})
		segments = append(segments, name)
	}

	segments = append(segments, f.Address(sub.Address, AddressSingleField)...)
	segments = append(segments, f.Demographics(sub.BirthDate, sub.Gender))

	return segments
}

func (a *Assembler) claimLoop(f *Formatter) []string {
	if a.store.claim == nil {
		return nil
	}
	c := a.store.claim

	// CLM05 composite: place of service, facility code qualifier "B"
	// (professional), frequency code.
	facility := composite(c.PlaceOfService, "B", c.FrequencyCode)

	segments := []string{
		segment(SegClaim, c.PatientControlNumber, c.ChargeAmount.StringFixed(2),
			"", "", facility,
			c.SignatureIndicator, c.PlanParticipation,
			c.ReleaseInformation, c.BenefitsAssignment),
	}

	if a.store.priorAuthorization != "" {
		segments = append(segments, segment(SegReference, "G1", a.store.priorAuthorization))
	}

	if len(c.Diagnoses) > 0 {
		pairs := make([]string, 0, len(c.Diagnoses))
		for _, d := range c.Diagnoses {
			pairs = append(pairs, composite(d.TypeCode, d.Code))
		}
		segments = append(segments, segment(SegHealthCareInformation,
			strings.Join(pairs, SubElementSeparator)))
	}

	segments = append(segments, a.serviceFacilitySegments(f)...)

	return segments
}

func (a *Assembler) serviceFacilitySegments(f *Formatter) []string {
	if a.store.facility == nil {
		return nil
	}
	fac := a.store.facility

	name, ok := f.Name(ServiceFacilityContext, NameData{
		OrganizationName: fac.OrganizationName,
		NPI:              fac.NPI,
	})
	if !ok {
		log.EDI.Debugf("service facility NPI %s already registered, block suppressed", fac.NPI)
		return nil
	}

	segments := []string{name}
	segments = append(segments, f.Address(fac.Address, AddressOptionalSecond)...)
	return segments
}

func (a *Assembler) serviceLineLoop(f *Formatter) []string {
	var segments []string

	for i, line := range a.store.serviceLines {
		segments = append(segments, segment(SegServiceLineNumber, strconv.Itoa(i+1)))

		// Modifiers ride the procedure composite joined by colons, per
		// the reference fixtures.
		procedure := composite("HC", line.ProcedureCode)
		for _, m := range line.Modifiers {
			procedure += ":" + m
		}

		segments = append(segments, segment(SegServiceLine,
			procedure, line.ChargeAmount.StringFixed(2),
			"UN", fmt.Sprintf("%d.0", line.Units),
			"", "", "1"))

		if line.ServiceDate != "" {
			segments = append(segments, segment(SegDateTimePeriod, "472", "D8", line.ServiceDate))
		}

		if line.RenderingProviderIndex != models.NoIndex {
			p := a.store.renderingProviders[line.RenderingProviderIndex]
			segments = append(segments, a.renderingProviderSegments(f, p)...)
		}
	}

	return segments
}

func (a *Assembler) renderingProviderSegments(f *Formatter, p models.RenderingProvider) []string {
	name, ok := f.Name(RenderingProviderContext, NameData{
		LastName:  p.LastName,
		FirstName: p.FirstName,
		NPI:       p.NPI,
	})
	if !ok {
		// A suppressed NM1 suppresses the PRV specialty segment with it.
		return nil
	}

	return []string{
		name,
		segment(SegProvider, ProviderTypePerforming, QualifierTaxonomy, p.TaxonomyCode),
	}
}

// renderingProviderLoop emits name and specialty segments for rendering
// providers not already emitted against a service line.
func (a *Assembler) renderingProviderLoop(f *Formatter) []string {
	var segments []string
	for _, p := range a.store.renderingProviders {
		segments = append(segments, a.renderingProviderSegments(f, p)...)
	}
	return segments
}

func (a *Assembler) trailerSegments(count int) []string {
	e := a.envelope
	return []string{
		segment(SegTransactionSetTrailer, strconv.Itoa(count), e.ControlNumber),
		segment(SegFunctionalGroupTrailer, "1", e.ControlNumber),
		segment(SegInterchangeControlTrailer, "1", e.ControlNumber),
	}
}
