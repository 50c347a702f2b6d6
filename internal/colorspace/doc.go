// Package colorspace converts colors between hex, RGB, HSL, HSV and CMYK.
//
// RGB is the pivot representation: every other encoding converts to and from
// RGB, never directly to each other. All functions are pure and safe for
// concurrent use. Malformed or out-of-domain input is reported as a
// domain.KindInvalidFormat error; nothing falls back to black.
package colorspace
