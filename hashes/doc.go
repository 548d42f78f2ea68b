// Package hashes implements the digest family used by the signing and key
// derivation layers: SHA-1, SHA-256, SHA-512, RIPEMD-160, HMAC over any of
// them, and PBKDF2 with HMAC-SHA-512.
//
// Every algorithm satisfies the standard library hash.Hash interface and is
// implemented portably; the portable code is the correctness reference. An
// accelerated backend (SIMD SHA-256, x/crypto PBKDF2) can be selected with
// SetBackend and is required to be byte-identical to the portable path.
//
// All digest state, including message schedules, is held per instance, so
// distinct instances may be used from different goroutines.
package hashes
