package x12

import (
	"github.com/claimstream/edi837-app/conf"
)

// Envelope holds the interchange/group control values and the
// submitter/receiver identities emitted in the header and trailer. None
// of these are derived from a clock or sequence: the same envelope
// always produces the same bytes. Defaults reproduce the reference
// fixtures; deployments override business identities through conf.
type Envelope struct {
	SenderQualifier   string
	SenderID          string
	ReceiverQualifier string
	ReceiverID        string
	InterchangeDate   string
	InterchangeTime   string
	ControlNumber     string
	UsageIndicator    string

	ApplicationSenderID string
	GroupDate           string
	GroupTime           string
	Version             string

	SubmitterName         string
	SubmitterID           string
	SubmitterContactName  string
	SubmitterContactPhone string
	ReceiverName          string
}

func DefaultEnvelope() Envelope {
	return Envelope{
		SenderQualifier:   "ZZ",
		SenderID:          "AV09311993",
		ReceiverQualifier: "01",
		ReceiverID:        "030240928",
		InterchangeDate:   "240702",
		InterchangeTime:   "1531",
		ControlNumber:     "415133923",
		UsageIndicator:    "P",

		ApplicationSenderID: "1923294",
		GroupDate:           "20240702",
		GroupTime:           "1533",
		Version:             "005010X222A1",

		SubmitterName:         "Mattel Industries",
		SubmitterID:           "1234567890",
		SubmitterContactName:  "Ruth Handler",
		SubmitterContactPhone: "8458130000",
		ReceiverName:          "AVAILITY 5010",
	}
}

// EnvelopeFromConf overlays conf-provided values onto the defaults.
// Keys left unset keep their fixture defaults.
func EnvelopeFromConf() Envelope {
	e := DefaultEnvelope()

	overlay(&e.SenderID, "EDI_ISA_SENDER_ID")
	overlay(&e.ReceiverID, "EDI_ISA_RECEIVER_ID")
	overlay(&e.ControlNumber, "EDI_CONTROL_NUMBER")
	overlay(&e.UsageIndicator, "EDI_USAGE_INDICATOR")
	overlay(&e.ApplicationSenderID, "EDI_GS_SENDER_ID")
	overlay(&e.Version, "EDI_VERSION")
	overlay(&e.InterchangeDate, "EDI_INTERCHANGE_DATE")
	overlay(&e.InterchangeTime, "EDI_INTERCHANGE_TIME")
	overlay(&e.GroupDate, "EDI_GS_DATE")
	overlay(&e.GroupTime, "EDI_GS_TIME")
	overlay(&e.SubmitterName, "EDI_SUBMITTER_NAME")
	overlay(&e.SubmitterID, "EDI_SUBMITTER_ID")
	overlay(&e.SubmitterContactName, "EDI_SUBMITTER_CONTACT_NAME")
	overlay(&e.SubmitterContactPhone, "EDI_SUBMITTER_CONTACT_PHONE")
	overlay(&e.ReceiverName, "EDI_RECEIVER_NAME")

	return e
}

func overlay(target *string, key string) {
	if v := conf.GetEnv(key); v != "" {
		*target = v
	}
}
