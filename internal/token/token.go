// internal/token/token.go
//
// Session-token codec.
//
// Context
// -------
// The admin session travels as an opaque cookie value of the form
//
//	base64(JSON payload) + "." + hex(HMAC-SHA256 signature)
//
// with payload {role:"admin", exp:<unix-millis>, nonce:<hex>}.  Encode and
// DecodeAndVerify are the only entry points; every failure mode of the
// verify path (missing separator, bad base64, bad JSON, signature or length
// mismatch, expiry, wrong role) collapses to ok == false.  Nothing here
// panics or returns a partial payload to the caller.
//
// The signature comparison is constant time.  A naive == on the hex strings
// would leak how many leading bytes match and open a timing side channel
// against the signing secret.

package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// RoleAdmin is the only role the system issues.
const RoleAdmin = "admin"

// Lifetime is how long an issued token stays valid.  Tokens are not
// refreshed; a new login is required after expiry.
const Lifetime = 24 * time.Hour

// Payload is the signed portion of a session token.  Exp is Unix
// milliseconds to match the persisted wire format.
type Payload struct {
	Role  string `json:"role"`
	Exp   int64  `json:"exp"`
	Nonce string `json:"nonce"`
}

// New returns an admin payload expiring Lifetime from now with a random
// 128-bit nonce.
func New() (Payload, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return Payload{}, err
	}
	return Payload{
		Role:  RoleAdmin,
		Exp:   time.Now().Add(Lifetime).UnixMilli(),
		Nonce: hex.EncodeToString(nonce),
	}, nil
}

// Encode serialises and signs p with the given secret using signer s.
func Encode(s Signer, p Payload, secret []byte) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sig := s.Sign(secret, raw)
	return base64.StdEncoding.EncodeToString(raw) + "." + hex.EncodeToString(sig), nil
}

// DecodeAndVerify validates tok against secret and returns its payload.
// ok is false on any decode, signature, expiry, or role failure.
func DecodeAndVerify(s Signer, tok string, secret []byte) (Payload, bool) {
	return decodeAndVerifyAt(s, tok, secret, time.Now())
}

// decodeAndVerifyAt is DecodeAndVerify with an injected clock so the expiry
// boundary can be tested on both sides.
func decodeAndVerifyAt(s Signer, tok string, secret []byte, now time.Time) (Payload, bool) {
	payloadB64, sigHex, found := strings.Cut(tok, ".")
	if !found || payloadB64 == "" || sigHex == "" {
		return Payload{}, false
	}

	raw, err := base64.StdEncoding.DecodeString(payloadB64)
	if err != nil {
		return Payload{}, false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return Payload{}, false
	}

	want := s.Sign(secret, raw)
	if len(sig) != len(want) || subtle.ConstantTimeCompare(sig, want) != 1 {
		return Payload{}, false
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, false
	}
	if p.Role != RoleAdmin {
		return Payload{}, false
	}
	if p.Exp <= now.UnixMilli() { // exp must be strictly in the future
		return Payload{}, false
	}
	return p, true
}
