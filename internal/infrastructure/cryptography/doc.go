// Package cryptography implements the plain RSA numeric engine over
// math/big: Miller-Rabin primality testing, prime generation, public
// exponent selection, modular inversion, decimal text framing and the raw
// modular-exponentiation transforms with an optional blinding step.
//
// This is textbook RSA without padding. It exists for educational and
// demonstration purposes and must not be used to protect real data.
package cryptography
