// internal/token/signer.go
//
// HMAC-SHA256 signing primitives.
//
// Context
// -------
// Session tokens are verified in two places: the session layer inside the
// request handlers, and the request gate that runs before any handler.  The
// original deployment ran those in different runtimes with different crypto
// primitives, so the sign/verify contract is defined abstractly and backed
// by two interchangeable implementations:
//
//   - StdSigner       – the crypto/hmac construction.
//   - PortableSigner  – RFC 2104 built directly on crypto/sha256, for a
//     runtime that exposes a plain hash but no keyed-hash helper.
//
// Both MUST produce byte-identical signatures for identical inputs; the
// test suite pins them to the RFC 4231 vectors and to each other.

package token

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Signer computes a keyed hash over the exact payload bytes.  Deterministic
// and side-effect-free.
type Signer interface {
	Sign(secret, payload []byte) []byte
}

// StdSigner signs with crypto/hmac.
type StdSigner struct{}

func (StdSigner) Sign(secret, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// PortableSigner is the RFC 2104 construction spelled out on crypto/sha256:
//
//	HMAC(K, m) = H((K' xor opad) || H((K' xor ipad) || m))
//
// with K' the key padded (or hashed, when longer) to the 64-byte SHA-256
// block size.
type PortableSigner struct{}

func (PortableSigner) Sign(secret, payload []byte) []byte {
	const blockSize = 64

	key := secret
	if len(key) > blockSize {
		sum := sha256.Sum256(key)
		key = sum[:]
	}

	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	copy(ipad, key)
	copy(opad, key)
	for i := 0; i < blockSize; i++ {
		ipad[i] ^= 0x36
		opad[i] ^= 0x5c
	}

	inner := sha256.New()
	inner.Write(ipad)
	inner.Write(payload)
	innerSum := inner.Sum(nil)

	outer := sha256.New()
	outer.Write(opad)
	outer.Write(innerSum)
	return outer.Sum(nil)
}
