// Package conv formats numbers into caller-provided buffers.
// No allocations; no fmt/strconv dependency.
package conv

// AppendUint appends the base-10 form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	if n == 0 {
		i--
		tmp[i] = '0'
	}
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the base-10 form of n to dst. Negative numbers supported.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendFixed appends f with exactly decimals digits after the point,
// rounded half away from zero. decimals is capped at 6.
func AppendFixed(dst []byte, f float64, decimals int) []byte {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 6 {
		decimals = 6
	}
	scale := uint64(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	if f < 0 {
		dst = append(dst, '-')
		f = -f
	}
	v := uint64(f*float64(scale) + 0.5)
	dst = AppendUint(dst, v/scale)
	if decimals == 0 {
		return dst
	}
	dst = append(dst, '.')
	frac := v % scale
	for d := scale / 10; d > 0; d /= 10 {
		dst = append(dst, byte('0'+(frac/d)%10))
	}
	return dst
}

// AppendHex32 appends n as 8 uppercase, zero-padded hex digits without 0x.
func AppendHex32(dst []byte, n uint32) []byte {
	const hexd = "0123456789ABCDEF"
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexd[(n>>uint(shift))&0xF])
	}
	return dst
}
