package x12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIdentifierCodes(t *testing.T) {
	tests := []struct {
		context  LoopContext
		expected string
	}{
		{BillingProviderContext, "85"},
		{RenderingProviderContext, "82"},
		{SubscriberContext, "IL"},
		{PatientContext, "QC"},
		{PayerContext, "PR"},
		{ServiceFacilityContext, "77"},
		{SubmitterContext, "41"},
		{ReceiverContext, "40"},
	}
	for _, tt := range tests {
		t.Run(tt.context.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.context.EntityIdentifierCode())
		})
	}
}

func TestEntityTypeQualifier(t *testing.T) {
	// Submitter, receiver, payer, and facility are non-person entities
	// even when no organization name is populated.
	for _, context := range []LoopContext{SubmitterContext, ReceiverContext, PayerContext, ServiceFacilityContext} {
		assert.Equal(t, "2", context.EntityTypeQualifier(""), context.String())
	}

	assert.Equal(t, "1", PatientContext.EntityTypeQualifier("Acme Clinic"))

	for _, context := range []LoopContext{BillingProviderContext, RenderingProviderContext, SubscriberContext} {
		assert.Equal(t, "2", context.EntityTypeQualifier("Acme Clinic"), context.String())
		assert.Equal(t, "1", context.EntityTypeQualifier(""), context.String())
	}
}

func TestIdentification(t *testing.T) {
	d := NameData{NPI: "1234567890", MemberID: "M100", PayerID: "WIMCD", ID: "030240928"}

	tests := []struct {
		context   LoopContext
		qualifier string
		value     string
	}{
		{BillingProviderContext, "XX", "1234567890"},
		{RenderingProviderContext, "XX", "1234567890"},
		{ServiceFacilityContext, "XX", "1234567890"},
		{SubscriberContext, "MI", "M100"},
		{PayerContext, "PI", "WIMCD"},
		{SubmitterContext, "46", "030240928"},
		{ReceiverContext, "46", "030240928"},
		{PatientContext, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.context.String(), func(t *testing.T) {
			qualifier, value := tt.context.Identification(d)
			assert.Equal(t, tt.qualifier, qualifier)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestRegistryGoverned(t *testing.T) {
	governed := map[LoopContext]bool{
		BillingProviderContext:   true,
		RenderingProviderContext: true,
		ServiceFacilityContext:   true,
		SubscriberContext:        false,
		PatientContext:           false,
		PayerContext:             false,
		SubmitterContext:         false,
		ReceiverContext:          false,
	}
	for context, expected := range governed {
		assert.Equal(t, expected, context.RegistryGoverned(), context.String())
	}
}
