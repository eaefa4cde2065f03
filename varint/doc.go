// Package varint provides the Linked Bytes format: a variable-length,
// self-delimiting encoding for arbitrarily large non-negative integers,
// with multi-precision arithmetic implemented directly on the encoded
// digits.
//
// Digit
//
// A number is a sequence of digits, least significant first. Each digit is
// one byte holding a 7 bit magnitude and a continuation (link) bit:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | C | V . V . V . V . V . V . V |
//  |---|---------------------------|
//
//  C = 1: linked, one or more digits follow
//  C = 0: endpoint, this digit ends the number
//  V    = magnitude, 0..127
//
// The sequence is therefore a little-endian base 128 numeral that carries
// its own length: reading bytes until the first endpoint yields exactly one
// number, which is what makes the format usable for streams and for the
// varstring text format.
//
// Canonical Form
//
// A sequence is canonical iff it is empty, or every digit but the last is
// linked and the last is an endpoint, with no most significant zero digit.
// The empty sequence is the unique representation of zero. Every mutating
// operation on Uint restores canonical form before returning.
//
// Arithmetic
//
// Addition and subtraction work digit-pairwise with ripple carry/borrow.
// Multiplication is schoolbook: each digit pair's product is folded into
// the accumulator at the combined digit offset (AddAt). Division is long
// division a digit at a time; subtraction below zero and division by zero
// are caller contract violations and panic.
package varint
