// Package number implements the extended numbers that expression parsing and
// numeric rewriting operate on.
//
// Real is an exact rational extended with signed infinities and NaN, so that
// the four field operations are total: 1/0 is +Infinity, 0/0 and ∞-∞ are NaN,
// and no operation ever panics or fails. Complex pairs two Reals, or holds a
// complex128 for values that came from non-exact literals. Field describes the
// capability that generic algorithms such as the expression parser need from
// a number type; Reals and Complexes are the two instances.
package number
