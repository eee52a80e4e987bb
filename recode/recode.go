// Package recode implements the digit-recoding loop shared by every encoder.
//
// The loop walks digit positions from the most significant down. At each
// position the weight w of the position is compared against the residual r
// (the part of the value not yet represented):
//
//  s·r >  t(w)  emit '+', r -= w
//  s·r < -t(w)  emit '-', r += w
//  otherwise    emit '0'
//
// With s = 1.5, t(w) = w for floating point, and s = 3, t(w) = 2w for integers
// (the same test scaled to stay integral). After a non-zero digit |r| is at
// most w/3, which forces the next position to '0', so the output is always in
// non-adjacent form. This only holds when the comparison is exact; a rounded
// s·r may land on the wrong side of t(w).
//
// A Recoder with a non-zero digit budget runs as a two state machine:
// Recoding emits digits normally until the budget is spent, then Flushing
// clears the residual so every remaining position is '0'.
package recode

import (
	"github.com/calebcase/csd/digit"
)

// Arithmetic supplies the residual arithmetic of one numeric width.
type Arithmetic[T any] interface {
	Zero() T
	// Half returns w/2.
	Half(w T) T
	// Above reports whether s·r > t(w) for a digit of weight w, computed
	// without rounding.
	Above(r, w T) bool
	Neg(a T) T
	Add(a, b T) T
	Sub(a, b T) T
	// Settled reports whether r is too small to yield further digits.
	Settled(r T) bool
}

// State of a Recoder.
type State uint8

const (
	Recoding State = iota
	Flushing
)

func (s State) String() string {
	switch s {
	case Recoding:
		return "recoding"
	case Flushing:
		return "flushing"
	}

	return "unknown"
}

// Unlimited disables the non-zero digit budget.
const Unlimited = -1

// Recoder emits the CSD digits of a residual into a Buffer.
type Recoder[T any] struct {
	arith Arithmetic[T]
	buf   *Buffer

	residual T

	// weight is 2^exp, twice the weight of the next digit to emit.
	weight T
	exp    int

	budget int
	state  State
}

// New returns a recoder for value whose first digit has weight 2^(exp-1).
// weight must equal 2^exp in the arithmetic of T.
func New[T any](arith Arithmetic[T], buf *Buffer, value, weight T, exp, budget int) *Recoder[T] {
	r := &Recoder[T]{
		arith:    arith,
		buf:      buf,
		residual: value,
		weight:   weight,
		exp:      exp,
		budget:   budget,
	}

	if budget == 0 {
		r.flush()
	}

	return r
}

// State returns the current state.
func (r *Recoder[T]) State() State {
	return r.state
}

// Exponent returns the exponent of the digit emitted last.
func (r *Recoder[T]) Exponent() int {
	return r.exp
}

// Residual returns the part of the value not represented by the digits
// emitted so far.
func (r *Recoder[T]) Residual() T {
	return r.residual
}

func (r *Recoder[T]) flush() {
	r.state = Flushing
	r.residual = r.arith.Zero()
}

func (r *Recoder[T]) spend() {
	if r.budget == Unlimited {
		return
	}

	r.budget--
	if r.budget <= 0 {
		r.flush()
	}
}

// Step emits the digit at the next lower position.
func (r *Recoder[T]) Step() {
	a := r.arith

	r.exp--
	r.weight = a.Half(r.weight)

	switch {
	case a.Above(r.residual, r.weight):
		r.buf.Push(digit.Plus)
		r.residual = a.Sub(r.residual, r.weight)
		r.spend()
	case a.Above(a.Neg(r.residual), r.weight):
		r.buf.Push(digit.Minus)
		r.residual = a.Add(r.residual, r.weight)
		r.spend()
	default:
		r.buf.Push(digit.Zero)
	}
}

// Integral emits the remaining digits down to the 2^0 position.
func (r *Recoder[T]) Integral() {
	for r.exp > 0 {
		r.Step()
	}
}

// Fixed emits the integral run, the point and then places fractional digits.
// The point is written even when places is zero.
func (r *Recoder[T]) Fixed(places int) {
	r.Integral()

	r.buf.Point()

	for r.exp > -places {
		r.Step()
	}
}

// Bounded emits the integral run and then fractional digits for as long as
// the budget lasts and the residual is not settled. The point is only written
// when a fractional digit follows it.
func (r *Recoder[T]) Bounded() {
	for r.exp > 0 || (r.state == Recoding && !r.arith.Settled(r.residual)) {
		if r.exp == 0 {
			r.buf.Point()
		}

		r.Step()
	}
}
