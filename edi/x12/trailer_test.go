package x12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSetSegmentCount(t *testing.T) {
	// Emitted slice at SE time: ISA, GS, then ST through the last body
	// segment. Dropping ISA and GS and adding the SE itself nets len-1.
	emitted := []string{
		"ISA*...~",
		"GS*...~",
		"ST*837*415133923*005010X222A1~",
		"BHT*0019*00*1*20240702*1531*CH~",
		"NM1*41*2*Mattel Industries*****46*1234567890~",
	}
	assert.Equal(t, 4, transactionSetSegmentCount(emitted))
}
