package repository

import (
	"context"

	"github.com/reign-ny/membership-approval/internal/domain"
)

// InvitationRepository определяет методы для работы с приглашениями
type InvitationRepository interface {
	// NextMembershipNumber резервирует следующий номер участника
	NextMembershipNumber(ctx context.Context) (int, error)

	// Create сохраняет новое приглашение
	Create(ctx context.Context, inv *domain.Invitation) error

	// GetByNumber получает приглашение по номеру участника
	GetByNumber(ctx context.Context, number int) (*domain.Invitation, error)

	// List возвращает последние приглашения, новые первыми
	List(ctx context.Context, limit int) ([]*domain.Invitation, error)
}
