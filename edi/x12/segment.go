package x12

import "strings"

// Delimiters for the 5010 professional transaction. Downstream
// clearinghouses read these positions from the ISA segment, so they are
// fixed for every transaction this package emits.
const (
	ElementSeparator    = "*"
	SubElementSeparator = ">"
	SegmentTerminator   = "~"
)

// Segment identifiers used by the 837P transaction set.
const (
	SegInterchangeControl        = "ISA"
	SegFunctionalGroup           = "GS"
	SegTransactionSet            = "ST"
	SegBeginningHierarchical     = "BHT"
	SegHierarchicalLevel         = "HL"
	SegProvider                  = "PRV"
	SegName                      = "NM1"
	SegContactInformation        = "PER"
	SegAddressLine               = "N3"
	SegCityStatePostal           = "N4"
	SegSubscriberInformation     = "SBR"
	SegReference                 = "REF"
	SegDateTimePeriod            = "DTP"
	SegDemographics              = "DMG"
	SegPatient                   = "PAT"
	SegServiceLineNumber         = "LX"
	SegServiceLine               = "SV1"
	SegClaim                     = "CLM"
	SegHealthCareInformation     = "HI"
	SegTransactionSetTrailer     = "SE"
	SegFunctionalGroupTrailer    = "GE"
	SegInterchangeControlTrailer = "IEA"
)

// Hierarchical level codes (HL03).
const (
	HLInformationSource = "20"
	HLSubscriber        = "22"
	HLDependent         = "23"
)

// Provider type codes (PRV01).
const (
	ProviderTypeBilling    = "BI"
	ProviderTypePerforming = "PE"
)

// Reference identification qualifiers.
const (
	QualifierTaxonomy   = "PXC"
	QualifierNPI        = "XX"
	QualifierMemberID   = "MI"
	QualifierEmployerID = "EI"
	QualifierPayerID    = "PI"
	QualifierETIN       = "46"
)

// segment joins elements with the element separator and appends the
// segment terminator. Empty elements render as empty fields.
func segment(elements ...string) string {
	return strings.Join(elements, ElementSeparator) + SegmentTerminator
}

// composite joins sub-values into one composite element.
func composite(parts ...string) string {
	return strings.Join(parts, SubElementSeparator)
}
