package utils

// Bits is any unsigned integer used as a bitset.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// HasFlag returns whether given flags include the given bitflag.
func HasFlag[T Bits](flags T, flag uint) bool {
	return flags&(1<<flag) > 0
}

// SetFlag returns flags with the given bitflag set.
func SetFlag[T Bits](flags T, flag uint) T {
	return flags | 1<<flag
}

// ClearFlag returns flags with the given bitflag cleared.
func ClearFlag[T Bits](flags T, flag uint) T {
	return flags &^ (1 << flag)
}
