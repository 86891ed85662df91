package alloc

// Alignment masks.
const (
	Align8Mask   = 8 - 1
	Align16Mask  = 16 - 1
	PageSize     = 4096
	PageMask     = PageSize - 1
	maxAlignable = int(^uint(0)>>1) - PageMask
)

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + Align8Mask) & ^Align8Mask
}

// Align16 returns n aligned up to the next 16-byte boundary.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n int) int {
	return (n + Align16Mask) & ^Align16Mask
}

// AlignPage returns n aligned up to the next 4KB page boundary.
// Values too close to the int limit to be rounded are returned unchanged.
//
// Example:
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n int) int {
	if n > maxAlignable {
		return n
	}
	return (n + PageMask) & ^PageMask
}
