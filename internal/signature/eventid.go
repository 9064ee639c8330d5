package signature

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"
)

// maxIDLength bounds provider-supplied identifiers.
const maxIDLength = 255

// Digest is the hex BLAKE3-256 of a payload.
func Digest(payload []byte) string {
	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// ExtractEventID finds the provider's idempotency key for a delivery. The
// kind's id header wins, then a top-level JSON "id" field. When neither is
// present the payload digest stands in, so byte-identical redeliveries
// still collapse.
func ExtractEventID(kind Kind, headers http.Header, body []byte) string {
	if h := conventions[kind].IDHeader; h != "" && headers != nil {
		if v := strings.TrimSpace(headers.Get(h)); v != "" && len(v) <= maxIDLength {
			return v
		}
	}

	var envelope struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.ID) > 0 {
		var s string
		if err := json.Unmarshal(envelope.ID, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" && len(s) <= maxIDLength {
				return s
			}
		} else if raw := string(envelope.ID); isNumeric(raw) && len(raw) <= maxIDLength {
			// Numeric ids are kept in their literal form.
			return raw
		}
	}
	return "digest:" + Digest(body)
}

func isNumeric(raw string) bool {
	if raw == "" {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}
