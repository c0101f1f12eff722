package fontpack

// CodeRange returns the inclusive range of UTF-16 code units [lo, hi].
// Returns nil when hi < lo. Convenient for building code sets:
//
//	codes := fontpack.CodeRange(0x0020, 0x007E)                  // ASCII
//	codes = append(codes, fontpack.CodeRange(0x0400, 0x04FF)...) // Cyrillic
func CodeRange(lo, hi uint16) []uint16 {
	if hi < lo {
		return nil
	}
	codes := make([]uint16, 0, int(hi)-int(lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		codes = append(codes, uint16(c))
	}
	return codes
}
