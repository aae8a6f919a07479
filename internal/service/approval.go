package service

import (
	"log/slog"

	"github.com/reign-ny/membership-approval/internal/codec"
	"github.com/reign-ny/membership-approval/internal/domain"
)

// ApprovalQuery holds the raw, already percent-decoded page parameters
type ApprovalQuery struct {
	Member string
	Price  string
	Link   string
}

// ApprovalView is everything the approval page needs to render the card
type ApprovalView struct {
	Approved           bool    `json:"approved"`
	Name               string  `json:"name"`
	MemberNumber       string  `json:"member_number"`
	MemberNumberArabic *int    `json:"member_number_arabic,omitempty"`
	Dues               string  `json:"dues"`
	PaymentLink        *string `json:"payment_link,omitempty"`
}

// ApprovalService turns approval link parameters into a renderable view
type ApprovalService struct {
	logger *slog.Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(logger *slog.Logger) *ApprovalService {
	return &ApprovalService{logger: logger}
}

// Resolve decodes the member token and formats the dues.
// A malformed member token still produces a view built from the sentinel
// record; only a missing member or price is an error.
func (s *ApprovalService) Resolve(q ApprovalQuery) (*ApprovalView, error) {
	if q.Member == "" || q.Price == "" {
		return nil, domain.ErrMissingMemberData
	}

	record, err := codec.ParseMemberParam(q.Member)
	if err != nil {
		s.logger.Warn("Falling back to unknown member", "member", q.Member, "error", err)
		record = domain.UnknownMember()
	}
	record.DuesAmount = q.Price
	record.PaymentLink = codec.SanitizePaymentLink(q.Link)
	if q.Link != "" && record.PaymentLink == nil {
		s.logger.Warn("Ignoring payment link", "link", q.Link)
	}

	return NewApprovalView(record), nil
}

// NewApprovalView builds the view for a decoded record
func NewApprovalView(record domain.MemberRecord) *ApprovalView {
	view := &ApprovalView{
		Approved:     record.Known,
		Name:         record.Name,
		MemberNumber: codec.DisplayNumber(record),
		Dues:         codec.FormatPrice(record.DuesAmount),
	}
	if record.Known {
		number := record.MembershipNumber
		view.MemberNumberArabic = &number
	}
	if record.HasPaymentLink() {
		view.PaymentLink = record.PaymentLink
	}
	return view
}
