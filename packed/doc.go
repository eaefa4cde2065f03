// Package packed provides the Head Byte format: a signed decimal bignum
// whose sign, exponent presence, and coefficient count are packed into a
// single header byte.
//
// Header
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---|-----------------------|
//  | S | E | N . N . N . N . N . N |
//  |---|---|-----------------------|
//
//  S = sign (1 = negative)
//  E = exponent present, or infinity
//  N = follow-up byte count, 0..63
//
// Reserved header values:
//
//  | 0b_0000_0000 | Zero      |
//  | 0b_1000_0000 | NaN       |
//  | 0b_0100_0000 | +Infinity |
//  | 0b_1100_0000 | -Infinity |
//
// Exponent
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | S | M . M . M . M . M . M . M |
//  |---|---------------------------|
//
//  S = sign, M = magnitude 0..127
//
// The pattern 0b_1000_0000 (negative zero) is illegal and rejected by the
// checked constructor; see TrustedExponent.
//
// Number
//
// The wire layout of a number is the header, the exponent byte if the
// header's exponent bit is set (and the value is not an infinity), and the
// coefficient bytes in big-endian order:
//
//  [header][exponent?][coefficient...]
//
// The logical value is sign × coefficient × 10^exponent, the coefficient
// read as a base 256 big-endian integer. The header's counts always match
// the stored data.
package packed
