package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Verify reports whether header is a valid HMAC-SHA256 of rawBody under
// secret, decoded per kind's convention. Malformed or empty input yields
// false.
func Verify(rawBody []byte, header string, secret []byte, kind Kind) bool {
	conv, ok := conventions[kind]
	if !ok || len(secret) == 0 {
		return false
	}
	got, ok := decode(strings.TrimSpace(header), conv.Encoding)
	if !ok || len(got) != sha256.Size {
		return false
	}
	return hmac.Equal(mac(rawBody, secret), got)
}

// Sign returns the header value a provider of kind would send for rawBody.
func Sign(rawBody []byte, secret []byte, kind Kind) string {
	sum := mac(rawBody, secret)
	switch conventions[kind].Encoding {
	case HexPrefixed:
		return "sha256=" + hex.EncodeToString(sum)
	case Base64:
		return base64.StdEncoding.EncodeToString(sum)
	default:
		return hex.EncodeToString(sum)
	}
}

func mac(body, secret []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(body)
	return h.Sum(nil)
}

func decode(v string, enc Encoding) ([]byte, bool) {
	if v == "" {
		return nil, false
	}
	var (
		out []byte
		err error
	)
	switch enc {
	case HexPrefixed:
		rest, found := strings.CutPrefix(v, "sha256=")
		if !found {
			return nil, false
		}
		out, err = hex.DecodeString(rest)
	case Base64:
		out, err = base64.StdEncoding.DecodeString(v)
	default:
		out, err = hex.DecodeString(v)
	}
	return out, err == nil
}
