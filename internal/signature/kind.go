// Package signature authenticates provider payloads.
//
// Each provider kind has exactly one Convention describing where its
// signature lives, how it is encoded, and where the provider puts its own
// event identifier. Verification is HMAC-SHA256 over the exact raw body,
// compared in constant time.
package signature

import (
	"fmt"
	"strings"
)

// Kind is the closed set of supported provider kinds.
type Kind string

const (
	Stripe  Kind = "stripe"
	GitHub  Kind = "github"
	Shopify Kind = "shopify"
	Generic Kind = "generic"
)

// Category groups kinds by business domain.
type Category string

const (
	CategoryPayment       Category = "payment"
	CategorySourceControl Category = "source-control"
	CategoryGeneric       Category = "generic"
)

// Encoding is how the MAC is written into the header.
type Encoding int

const (
	// HexPrefixed is "sha256=<hex>".
	HexPrefixed Encoding = iota
	// Hex is bare lowercase or uppercase hex.
	Hex
	// Base64 is standard padded base64.
	Base64
)

// Convention is the per-kind verification recipe.
type Convention struct {
	Category Category
	// Header carries the signature.
	Header   string
	Encoding Encoding
	// IDHeader carries the provider's event id; empty means the id is only
	// in the JSON body.
	IDHeader string
}

var conventions = map[Kind]Convention{
	Stripe:  {Category: CategoryPayment, Header: "Stripe-Signature", Encoding: HexPrefixed},
	GitHub:  {Category: CategorySourceControl, Header: "X-Hub-Signature-256", Encoding: HexPrefixed, IDHeader: "X-GitHub-Delivery"},
	Shopify: {Category: CategoryPayment, Header: "X-Shopify-Hmac-Sha256", Encoding: Base64, IDHeader: "X-Shopify-Webhook-Id"},
	Generic: {Category: CategoryGeneric, Header: "X-Webhook-Signature", Encoding: Hex, IDHeader: "X-Event-Id"},
}

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{Stripe, GitHub, Shopify, Generic}
}

// ParseKind maps a URL path segment to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := conventions[k]; !ok {
		return "", fmt.Errorf("unknown provider kind %q", s)
	}
	return k, nil
}

// Convention returns the recipe for k. ok is false for unknown kinds.
func (k Kind) Convention() (Convention, bool) {
	c, ok := conventions[k]
	return c, ok
}

// Category reports the business category of k.
func (k Kind) Category() Category {
	return conventions[k].Category
}

// Header is the request header that carries k's signature.
func (k Kind) Header() string {
	return conventions[k].Header
}

func (k Kind) String() string { return string(k) }
