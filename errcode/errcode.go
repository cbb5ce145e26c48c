// Package errcode names the failures the firmware reports on the diagnostics
// stream: bad tables and config at boot, a missing BLE host, keys the HID
// map cannot send, and board features the power controller lacks.
package errcode

// Code is a stable, log-facing error identifier. Comparable and
// allocation-free; it implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"
	InvalidConfig Code = "invalid_config"
	InvalidTable  Code = "invalid_table"
	EmptyMacroSet Code = "empty_macro_set"
	NotConnected  Code = "not_connected"
	UnknownKey    Code = "unknown_key"
	UnknownPin    Code = "unknown_pin"
	NotReady      Code = "not_ready"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E for op, keeping err as the cause.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
