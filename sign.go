package scsdk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// CanonicalQuery encodes parameters into the provider's canonical form:
// keys sorted bytewise ascending, values percent-encoded, and spaces encoded
// as %20 rather than +.
func CanonicalQuery(parameters map[string]string) string {
	values := make(url.Values, len(parameters))
	for k, v := range parameters {
		values.Set(k, v)
	}
	// url.Values.Encode sorts by key and encodes spaces as +.
	return strings.ReplaceAll(values.Encode(), "+", "%20")
}

// Sign computes the lowercase hex HMAC-SHA256 digest of the canonical query
// string of parameters, keyed with secret. The Signature parameter itself
// must not be present in the input; it is appended after signing.
func Sign(parameters map[string]string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(CanonicalQuery(parameters)))
	return hex.EncodeToString(mac.Sum(nil))
}
