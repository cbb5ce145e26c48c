package blehid

import (
	"stampkey-go/errcode"
	"stampkey-go/types"
)

// ReportLen is the size of a boot-protocol keyboard input report:
// modifiers, reserved, six key slots.
const ReportLen = 8

// Report tracks the keys currently held and renders input reports.
// The zero value is an empty report.
type Report struct {
	modifiers uint8
	keys      [6]uint8
}

// Press adds k to the report. Shifted ASCII also holds left shift.
func (r *Report) Press(k types.Key) error {
	if k.IsModifier() {
		r.modifiers |= 1 << (k - types.KeyLeftCtrl)
		return nil
	}
	usage, shift, ok := lookup(k)
	if !ok {
		return errcode.UnknownKey
	}
	free := -1
	for i, u := range r.keys {
		if u == usage {
			free = i
			break
		}
		if u == 0 && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return ErrRollover
	}
	r.keys[free] = usage
	if shift {
		r.modifiers |= modLeftShift
	}
	return nil
}

// Release removes k from the report.
func (r *Report) Release(k types.Key) error {
	if k.IsModifier() {
		r.modifiers &^= 1 << (k - types.KeyLeftCtrl)
		return nil
	}
	usage, shift, ok := lookup(k)
	if !ok {
		return errcode.UnknownKey
	}
	if shift {
		r.modifiers &^= modLeftShift
	}
	for i, u := range r.keys {
		if u == usage {
			r.keys[i] = 0
		}
	}
	return nil
}

// ReleaseAll clears every key and modifier.
func (r *Report) ReleaseAll() { *r = Report{} }

// Bytes renders the report into dst, which must hold ReportLen bytes.
func (r *Report) Bytes(dst []byte) []byte {
	dst = dst[:ReportLen]
	dst[0] = r.modifiers
	dst[1] = 0
	copy(dst[2:], r.keys[:])
	return dst
}
