// Package varstring provides Unicode text storage over the varint digit
// format.
//
// Each codepoint is encoded independently as one varint digit run: the
// codepoint's integer value in little-endian base 128, with every digit
// linked except the last. A string is simply the concatenation of those
// runs: the cleared continuation bit of each run's final digit marks the
// character boundary, so no separate length or terminator is needed:
//
//  "AB":
//
//  | 0 | 1 . 0 . 0 . 0 . 0 . 0 . 1 |  'A' = 65, endpoint
//  | 0 | 1 . 0 . 0 . 0 . 0 . 1 . 0 |  'B' = 66, endpoint
//
// This is denser than the usual Unicode transformation formats: codepoints
// up to U+007F take one byte, up to U+3FFF two, and every codepoint in
// Unicode fits in three.
//
// Codepoint validity is enforced at encode time only. Decoding trusts the
// buffer; see Chars.
package varstring
