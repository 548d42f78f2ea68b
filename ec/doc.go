// Package ec implements the secp256k1 elliptic curve: field and order
// arithmetic, affine and Jacobian point operations, windowed-NAF and
// endomorphism-accelerated scalar multiplication, and ECDSA signing
// and verification with deterministic nonces.
//
// The implementation favors clarity over side-channel resistance.
// Operation time varies with operand values, so it must not be used
// where an attacker can measure signing latency.
package ec
