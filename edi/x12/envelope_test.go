package x12

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimstream/edi837-app/conf"
)

func TestDefaultEnvelope(t *testing.T) {
	e := DefaultEnvelope()
	assert.Equal(t, "AV09311993", e.SenderID)
	assert.Equal(t, "030240928", e.ReceiverID)
	assert.Equal(t, "415133923", e.ControlNumber)
	assert.Equal(t, "005010X222A1", e.Version)
	assert.Equal(t, "P", e.UsageIndicator)
}

func TestEnvelopeFromConfOverlay(t *testing.T) {
	conf.SetEnv(t, "EDI_CONTROL_NUMBER", "000000001")
	conf.SetEnv(t, "EDI_SUBMITTER_NAME", "Claimstream Health")
	defer conf.UnsetEnv(t, "EDI_CONTROL_NUMBER")
	defer conf.UnsetEnv(t, "EDI_SUBMITTER_NAME")

	e := EnvelopeFromConf()
	assert.Equal(t, "000000001", e.ControlNumber)
	assert.Equal(t, "Claimstream Health", e.SubmitterName)

	// Keys left unset keep their defaults.
	assert.Equal(t, "AV09311993", e.SenderID)
	assert.Equal(t, "005010X222A1", e.Version)
}
