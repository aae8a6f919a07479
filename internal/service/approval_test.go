package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reign-ny/membership-approval/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApprovalService_Resolve(t *testing.T) {
	svc := NewApprovalService(discardLogger())

	view, err := svc.Resolve(ApprovalQuery{
		Member: "mary_van_buren_x",
		Price:  "2500",
		Link:   "https://pay.example.com/checkout",
	})
	require.NoError(t, err)

	assert.True(t, view.Approved)
	assert.Equal(t, "Mary Van Buren", view.Name)
	assert.Equal(t, "X", view.MemberNumber)
	require.NotNil(t, view.MemberNumberArabic)
	assert.Equal(t, 10, *view.MemberNumberArabic)
	assert.Equal(t, "2,500", view.Dues)
	require.NotNil(t, view.PaymentLink)
	assert.Equal(t, "https://pay.example.com/checkout", *view.PaymentLink)
}

func TestApprovalService_Resolve_ArabicNumber(t *testing.T) {
	svc := NewApprovalService(discardLogger())

	view, err := svc.Resolve(ApprovalQuery{Member: "Ana_Lee_42", Price: "999"})
	require.NoError(t, err)

	assert.Equal(t, "XLII", view.MemberNumber)
	assert.Equal(t, "999", view.Dues)
	assert.Nil(t, view.PaymentLink)
}

func TestApprovalService_Resolve_Fallback(t *testing.T) {
	svc := NewApprovalService(discardLogger())

	view, err := svc.Resolve(ApprovalQuery{Member: "A_B_XIVQ", Price: "1000"})
	require.NoError(t, err)

	assert.False(t, view.Approved)
	assert.Equal(t, domain.UnknownMemberName, view.Name)
	assert.Equal(t, domain.NotAvailable, view.MemberNumber)
	assert.Nil(t, view.MemberNumberArabic)
	assert.Equal(t, "1,000", view.Dues)
}

func TestApprovalService_Resolve_UnsafeLinkDropped(t *testing.T) {
	svc := NewApprovalService(discardLogger())

	view, err := svc.Resolve(ApprovalQuery{Member: "John_Doe_V", Price: "100", Link: "javascript:alert(1)"})
	require.NoError(t, err)

	assert.Nil(t, view.PaymentLink)
}

func TestApprovalService_Resolve_MissingData(t *testing.T) {
	svc := NewApprovalService(discardLogger())

	_, err := svc.Resolve(ApprovalQuery{Member: "John_Doe_V"})
	assert.ErrorIs(t, err, domain.ErrMissingMemberData)

	_, err = svc.Resolve(ApprovalQuery{Price: "100"})
	assert.ErrorIs(t, err, domain.ErrMissingMemberData)
}
