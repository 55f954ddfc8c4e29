// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ball implements complex ball arithmetic: arbitrary-precision complex
numbers carrying a rigorous bound on their error.

A Ball is a centre, a cfloat.Complex, together with a Radius, a low precision
nonnegative number. The ball stands for an unknown exact complex value t and
guarantees that |t - c| ≤ r × |c|: the radius is relative to the magnitude of
the centre. Every operation computes the centre with a correctly rounded
complex operation, and a radius that bounds both the propagation of the input
radii and the rounding of the new centre. Radius arithmetic always rounds up,
so computed bounds are never too small.

Balls are used to evaluate expressions whose result must be correctly rounded:
evaluate at some working precision, check with CanRound whether the rounding
of the result is already determined, and if not, start over at a higher
precision. Package context automates that loop. Package math provides
constants and elementary functions on balls.

The zero value for a Ball is an exact 0. Alternatively, new Ball values can be
allocated and initialized with the functions:

	func New(prec uint) *Ball                 // 0 ± ∞ at precision prec
	func NewComplex(c *cfloat.Complex) *Ball  // exact c

Operations are methods of the form:

	func (z *Ball) Unary(x *Ball) *Ball        // z = unary x
	func (z *Ball) Binary(x, y *Ball) *Ball    // z = x binary y
	func (x *Ball) Pred() P                    // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten
(and its memory reused). For instance, given three *Ball values a, b and c, the
invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever value
was held in c before. Operations permit aliasing of parameters, so it is
perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

The working precision of an operation is the smallest precision of its
operands, ignoring operands of precision 0, and DefaultPrec if all have
precision 0. A Ball's precision is that of its centre.

Operations never fail: when nothing useful can be said about a result, such as
a quotient by a ball that may contain zero, its radius is +∞.
*/
package ball
