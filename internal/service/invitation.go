package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reign-ny/membership-approval/internal/codec"
	"github.com/reign-ny/membership-approval/internal/domain"
	"github.com/reign-ny/membership-approval/internal/repository"
)

const (
	// DefaultListLimit is used when the caller does not pass a limit
	DefaultListLimit = 50
	// MaxListLimit caps a single page of invitations
	MaxListLimit = 500
)

// IssueInvitationInput holds data for a new invitation
type IssueInvitationInput struct {
	FirstName   string
	LastName    string
	Dues        string
	PaymentLink string
	IssuedBy    string
}

// IssuedInvitation is an invitation together with its ready-to-send link
type IssuedInvitation struct {
	Invitation  *domain.Invitation `json:"invitation"`
	ApprovalURL string             `json:"approval_url"`
}

// InvitationService handles issuing and looking up invitations
type InvitationService struct {
	repo          repository.InvitationRepository
	publicBaseURL string
	logger        *slog.Logger
}

// NewInvitationService creates a new InvitationService
func NewInvitationService(repo repository.InvitationRepository, publicBaseURL string, logger *slog.Logger) *InvitationService {
	return &InvitationService{
		repo:          repo,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Issue assigns the next membership number, encodes the member token and stores the invitation
func (s *InvitationService) Issue(ctx context.Context, in IssueInvitationInput) (*IssuedInvitation, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.Join(strings.Fields(strings.ReplaceAll(in.LastName, "_", " ")), " ")
	dues := strings.TrimSpace(in.Dues)
	if !codec.ValidPrice(dues) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDues, dues)
	}

	// Validate names before burning a sequence value
	if _, err := codec.EncodeMemberParam(firstName, lastName, 1); err != nil {
		return nil, err
	}

	number, err := s.repo.NextMembershipNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve membership number: %w", err)
	}
	if number > domain.MaxMembershipNumber {
		return nil, domain.ErrNumberSpaceExhausted
	}

	memberParam, err := codec.EncodeMemberParam(firstName, lastName, number)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invitation{
		ID:               uuid.New(),
		MembershipNumber: number,
		FirstName:        codec.NormalizeName(firstName),
		LastName:         codec.NormalizeName(lastName),
		Dues:             dues,
		PaymentLink:      codec.SanitizePaymentLink(strings.TrimSpace(in.PaymentLink)),
		MemberParam:      memberParam,
		IssuedBy:         in.IssuedBy,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("Invitation issued",
		"membership_number", number,
		"member_param", memberParam,
		"issued_by", in.IssuedBy,
	)

	return s.withURL(inv)
}

// Get returns the invitation with the given membership number
func (s *InvitationService) Get(ctx context.Context, number int) (*IssuedInvitation, error) {
	inv, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.withURL(inv)
}

// List returns the newest invitations first
func (s *InvitationService) List(ctx context.Context, limit int) ([]*IssuedInvitation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	invitations, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*IssuedInvitation, 0, len(invitations))
	for _, inv := range invitations {
		issued, err := s.withURL(inv)
		if err != nil {
			return nil, err
		}
		result = append(result, issued)
	}
	return result, nil
}

func (s *InvitationService) withURL(inv *domain.Invitation) (*IssuedInvitation, error) {
	link, err := codec.ApprovalURL(s.publicBaseURL, inv.MemberParam, inv.Dues, inv.PaymentLink)
	if err != nil {
		return nil, err
	}
	return &IssuedInvitation{Invitation: inv, ApprovalURL: link}, nil
}
