package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/reign-ny/membership-approval/internal/domain"
)

// InvitationRepository хранит приглашения в памяти процесса.
// Безопасен для конкурентного использования.
type InvitationRepository struct {
	mu       sync.RWMutex
	next     int
	byNumber map[int]domain.Invitation
	now      func() time.Time
}

// NewInvitationRepository создает пустое хранилище, номера начинаются с start
func NewInvitationRepository(start int) *InvitationRepository {
	if start < 1 {
		start = 1
	}
	return &InvitationRepository{
		next:     start,
		byNumber: make(map[int]domain.Invitation),
		now:      time.Now,
	}
}

// NextMembershipNumber резервирует следующий номер участника
func (r *InvitationRepository) NextMembershipNumber(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.next
	r.next++
	return n, nil
}

// Create сохраняет новое приглашение
func (r *InvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byNumber[inv.MembershipNumber]; ok {
		return domain.ErrInvitationExists
	}

	inv.CreatedAt = r.now().UTC()
	r.byNumber[inv.MembershipNumber] = cloneInvitation(*inv)
	return nil
}

// GetByNumber получает приглашение по номеру участника
func (r *InvitationRepository) GetByNumber(ctx context.Context, number int) (*domain.Invitation, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	out := cloneInvitation(inv)
	return &out, nil
}

// List возвращает последние приглашения, новые первыми
func (r *InvitationRepository) List(ctx context.Context, limit int) ([]*domain.Invitation, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Invitation, 0, len(r.byNumber))
	for _, inv := range r.byNumber {
		cp := cloneInvitation(inv)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MembershipNumber > out[j].MembershipNumber
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneInvitation(inv domain.Invitation) domain.Invitation {
	if inv.PaymentLink != nil {
		link := *inv.PaymentLink
		inv.PaymentLink = &link
	}
	return inv
}
