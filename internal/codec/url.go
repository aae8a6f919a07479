package codec

import (
	"fmt"
	"net/url"
)

// Query parameters read by the approval page. The short aliases appear in
// links issued before the long names were introduced.
const (
	ParamMember      = "member"
	ParamPrice       = "price"
	ParamLink        = "link"
	ParamMemberShort = "m"
	ParamPriceShort  = "p"
	ParamLinkShort   = "l"
)

// ApprovalURL appends the member token, price and optional payment link to
// the public page URL.
func ApprovalURL(base, memberParam, price string, paymentLink *string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}

	q := u.Query()
	q.Set(ParamMember, memberParam)
	q.Set(ParamPrice, price)
	if paymentLink != nil && *paymentLink != "" {
		q.Set(ParamLink, *paymentLink)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// SanitizePaymentLink keeps only absolute http(s) links.
func SanitizePaymentLink(raw string) *string {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	link := u.String()
	return &link
}
