// Package fault defines the closed set of failures the CSD codec reports.
//
// Every fault is a *Fault wrapped in the Error class, so callers may match
// either on the class (Error.Has) or on the kind (KindOf, Is).
package fault

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class of every codec failure.
var Error = errs.Class("csd")

// Kind identifies a category of failure.
type Kind uint8

// Fault kinds.
const (
	Unknown Kind = iota
	InvalidCharacter
	InvalidFormat
	Overflow
	PrecisionLoss
	ConsecutiveNonZero
	EmptyString
)

var kindNames = [...]string{
	Unknown:            "unknown",
	InvalidCharacter:   "invalid character",
	InvalidFormat:      "invalid format",
	Overflow:           "overflow",
	PrecisionLoss:      "precision loss",
	ConsecutiveNonZero: "consecutive non-zero",
	EmptyString:        "empty string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Fault describes a single failure. Char and Position are set for
// InvalidCharacter; Position is set for ConsecutiveNonZero.
type Fault struct {
	Kind     Kind
	Char     rune
	Position int
	Message  string
}

func (f *Fault) Error() string {
	switch f.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", f.Char, f.Position)
	case ConsecutiveNonZero:
		return fmt.Sprintf("consecutive non-zero digits at position %d", f.Position)
	}

	if f.Message == "" {
		return f.Kind.String()
	}

	return f.Kind.String() + ": " + f.Message
}

// Is reports whether target is a *Fault of the same kind. This lets
// errors.Is(err, &fault.Fault{Kind: fault.Overflow}) match any overflow.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}

	return t.Kind == f.Kind
}

func wrap(f *Fault) error {
	return Error.Wrap(f)
}

// NewInvalidCharacter reports c at byte offset pos as outside the CSD
// alphabet.
func NewInvalidCharacter(c rune, pos int) error {
	return wrap(&Fault{Kind: InvalidCharacter, Char: c, Position: pos})
}

// NewInvalidFormat reports a structural problem described by the formatted
// message.
func NewInvalidFormat(format string, args ...interface{}) error {
	return wrap(&Fault{Kind: InvalidFormat, Message: fmt.Sprintf(format, args...)})
}

// NewOverflow reports a value that does not fit the target width.
func NewOverflow(format string, args ...interface{}) error {
	return wrap(&Fault{Kind: Overflow, Message: fmt.Sprintf(format, args...)})
}

// NewPrecisionLoss reports a conversion that would drop non-zero digits.
func NewPrecisionLoss(format string, args ...interface{}) error {
	return wrap(&Fault{Kind: PrecisionLoss, Message: fmt.Sprintf(format, args...)})
}

// NewConsecutiveNonZero reports a NAF violation ending at byte offset pos.
func NewConsecutiveNonZero(pos int) error {
	return wrap(&Fault{Kind: ConsecutiveNonZero, Position: pos})
}

// NewEmptyString reports an empty input.
func NewEmptyString() error {
	return wrap(&Fault{Kind: EmptyString})
}

// As returns the *Fault carried by err, if any.
func As(err error) (f *Fault, ok bool) {
	ok = errors.As(err, &f)

	return f, ok
}

// KindOf returns the kind of the fault carried by err or Unknown.
func KindOf(err error) Kind {
	f, ok := As(err)
	if !ok {
		return Unknown
	}

	return f.Kind
}

// Is reports whether err carries a fault of kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
