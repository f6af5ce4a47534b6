package models

// X12 code sets used on subscriber and claim records. Typed so the
// engine can match exhaustively instead of passing free-form strings.

type PaymentResponsibilityCode string

const (
	PaymentPrimary   PaymentResponsibilityCode = "P"
	PaymentSecondary PaymentResponsibilityCode = "S"
	PaymentTertiary  PaymentResponsibilityCode = "T"
)

func (c PaymentResponsibilityCode) Valid() bool {
	switch c {
	case PaymentPrimary, PaymentSecondary, PaymentTertiary:
		return true
	}
	return false
}

// ClaimFilingCode is the SBR09 payer-type classification.
type ClaimFilingCode string

const (
	FilingBlueCrossBlueShield ClaimFilingCode = "BL"
	FilingMedicaid            ClaimFilingCode = "MC"
	FilingMedicare            ClaimFilingCode = "MB"
	FilingCommercial          ClaimFilingCode = "CI"
	FilingUnknown             ClaimFilingCode = "ZZ"
)

func (c ClaimFilingCode) Valid() bool {
	switch c {
	case FilingBlueCrossBlueShield, FilingMedicaid, FilingMedicare,
		FilingCommercial, FilingUnknown:
		return true
	}
	return false
}

type RelationshipCode string

const (
	RelationshipSelf   RelationshipCode = "18"
	RelationshipSpouse RelationshipCode = "01"
	RelationshipChild  RelationshipCode = "19"
	RelationshipOther  RelationshipCode = "21"
)

func (c RelationshipCode) Valid() bool {
	switch c {
	case RelationshipSelf, RelationshipSpouse, RelationshipChild, RelationshipOther:
		return true
	}
	return false
}

type GenderCode string

const (
	GenderMale    GenderCode = "M"
	GenderFemale  GenderCode = "F"
	GenderUnknown GenderCode = "U"
)

func (c GenderCode) Valid() bool {
	switch c {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}
