// Package cryptoalg defines the interfaces of the plain RSA numeric engine:
// probabilistic primality testing, prime generation, public exponent
// selection, modular inversion, text framing and the raw
// modular-exponentiation transforms.
package cryptoalg
