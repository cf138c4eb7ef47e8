// Package keys defines the domain entities for plain RSA key material: the
// public/private key variants, generation parameters, exported material,
// key-pair metadata and the contracts for services and repositories that
// operate on them.
package keys
