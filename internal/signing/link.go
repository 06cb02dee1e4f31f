package signing

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkScheme prefixes launch links such as "signdesk://sign?contract_id=42".
const LinkScheme = "signdesk://"

// IsLink reports whether arg is a launch link.
func IsLink(arg string) bool {
	return strings.HasPrefix(arg, LinkScheme)
}

// ParseLink extracts the contract id of a signing link. A link without a
// contract_id yields an empty id and no error; the page reports it.
func ParseLink(link string) (string, error) {
	if !IsLink(link) {
		return "", fmt.Errorf("not a %s link: %q", LinkScheme, link)
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}
	if u.Host != "sign" {
		return "", fmt.Errorf("unknown link action %q", u.Host)
	}
	return strings.TrimSpace(u.Query().Get("contract_id")), nil
}
