package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reign-ny/membership-approval/internal/domain"
	"github.com/reign-ny/membership-approval/internal/repository/memory"
)

const testBaseURL = "https://club.example.com/approval"

func TestInvitationService_Issue(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvitationRepository(42)
	svc := NewInvitationService(repo, testBaseURL, discardLogger())

	issued, err := svc.Issue(ctx, IssueInvitationInput{
		FirstName:   "mary",
		LastName:    "van  buren",
		Dues:        "1500",
		PaymentLink: "https://pay.example.com/x",
		IssuedBy:    "admin",
	})
	require.NoError(t, err)

	inv := issued.Invitation
	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, 42, inv.MembershipNumber)
	assert.Equal(t, "Mary", inv.FirstName)
	assert.Equal(t, "Van Buren", inv.LastName)
	assert.Equal(t, "Mary Van Buren", inv.FullName())
	assert.Equal(t, "Mary_Van_Buren_XLII", inv.MemberParam)
	assert.Equal(t, "admin", inv.IssuedBy)

	u, err := url.Parse(issued.ApprovalURL)
	require.NoError(t, err)
	assert.Equal(t, "Mary_Van_Buren_XLII", u.Query().Get("member"))
	assert.Equal(t, "1500", u.Query().Get("price"))
	assert.Equal(t, "https://pay.example.com/x", u.Query().Get("link"))

	// The issued link decodes back to the same member
	view, err := NewApprovalService(discardLogger()).Resolve(ApprovalQuery{
		Member: u.Query().Get("member"),
		Price:  u.Query().Get("price"),
		Link:   u.Query().Get("link"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mary Van Buren", view.Name)
	assert.Equal(t, "XLII", view.MemberNumber)
	assert.Equal(t, "1,500", view.Dues)
}

func TestInvitationService_Issue_InvalidInput(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvitationRepository(1)
	svc := NewInvitationService(repo, testBaseURL, discardLogger())

	_, err := svc.Issue(ctx, IssueInvitationInput{FirstName: "", LastName: "Doe", Dues: "100"})
	assert.ErrorIs(t, err, domain.ErrFormat)

	_, err = svc.Issue(ctx, IssueInvitationInput{FirstName: "John", LastName: "Doe"})
	assert.ErrorIs(t, err, domain.ErrInvalidDues)

	_, err = svc.Issue(ctx, IssueInvitationInput{FirstName: "John", LastName: "Doe", Dues: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidDues)

	_, err = svc.Issue(ctx, IssueInvitationInput{FirstName: "John", LastName: "Doe", Dues: "-100"})
	assert.ErrorIs(t, err, domain.ErrInvalidDues)

	// No sequence value is consumed by rejected input
	next, err := repo.NextMembershipNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestInvitationService_Issue_Exhausted(t *testing.T) {
	repo := memory.NewInvitationRepository(domain.MaxMembershipNumber + 1)
	svc := NewInvitationService(repo, testBaseURL, discardLogger())

	_, err := svc.Issue(context.Background(), IssueInvitationInput{FirstName: "John", LastName: "Doe", Dues: "100"})
	assert.ErrorIs(t, err, domain.ErrNumberSpaceExhausted)
}

func TestInvitationService_GetAndList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvitationRepository(1)
	svc := NewInvitationService(repo, testBaseURL, discardLogger())

	for _, name := range []string{"Ana", "Bob", "Cid"} {
		_, err := svc.Issue(ctx, IssueInvitationInput{FirstName: name, LastName: "Lee", Dues: "100"})
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob_Lee_II", got.Invitation.MemberParam)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)

	list, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Invitation.MembershipNumber)
	assert.Equal(t, 2, list[1].Invitation.MembershipNumber)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
