// Package bigbit implements the BigBit formats: compact, self-delimiting
// byte encodings for arbitrarily large numbers and Unicode text.
//
// Two binary number formats are provided:
//
//	varint  Variable-length unsigned integers built from continuation
//	        tagged bytes (the Linked Bytes format), with full
//	        multi-precision arithmetic. Also the basis for the
//	        varstring text format.
//	packed  Signed decimal numbers with a single header byte packing
//	        the sign, exponent presence, and coefficient count (the
//	        Head Byte format).
//
// This package itself only holds the sign concept shared by the formats.
// See the subpackage documentation for the byte layouts.
package bigbit
