package x12

// transactionSetSegmentCount computes the SE01 value from the segments
// emitted so far (header through the last body segment, SE not yet
// appended). The count covers ST through SE inclusive: drop the ISA and
// GS envelope segments, add one for the SE itself. The arithmetic is a
// fixture contract; see the trailer tests before changing it.
func transactionSetSegmentCount(emitted []string) int {
	return len(emitted) - 1
}
