package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reign-ny/membership-approval/internal/domain"
)

// InvitationRepository реализует repository.InvitationRepository для PostgreSQL
type InvitationRepository struct {
	db *pgxpool.Pool
}

// NewInvitationRepository создает новый экземпляр InvitationRepository
func NewInvitationRepository(db *pgxpool.Pool) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// NextMembershipNumber резервирует следующий номер участника из последовательности
func (r *InvitationRepository) NextMembershipNumber(ctx context.Context) (int, error) {
	var number int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('membership_number_seq')`).Scan(&number); err != nil {
		return 0, err
	}
	return int(number), nil
}

// Create сохраняет новое приглашение
func (r *InvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (id, membership_number, first_name, last_name, dues, payment_link, member_param, issued_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		inv.ID,
		inv.MembershipNumber,
		inv.FirstName,
		inv.LastName,
		inv.Dues,
		inv.PaymentLink,
		inv.MemberParam,
		inv.IssuedBy,
	).Scan(&inv.CreatedAt)
	if err != nil {
		// Номер уже занят (например, вставлен вручную в обход последовательности)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrInvitationExists
		}
		return err
	}

	return nil
}

// GetByNumber получает приглашение по номеру участника
func (r *InvitationRepository) GetByNumber(ctx context.Context, number int) (*domain.Invitation, error) {
	query := `
		SELECT id, membership_number, first_name, last_name, dues, payment_link, member_param, issued_by, created_at
		FROM invitations
		WHERE membership_number = $1
	`

	inv, err := scanInvitation(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}

	return inv, nil
}

// List возвращает последние приглашения, новые первыми
func (r *InvitationRepository) List(ctx context.Context, limit int) ([]*domain.Invitation, error) {
	query := `
		SELECT id, membership_number, first_name, last_name, dues, payment_link, member_param, issued_by, created_at
		FROM invitations
		ORDER BY membership_number DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitations := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}

	return invitations, rows.Err()
}

func scanInvitation(row pgx.Row) (*domain.Invitation, error) {
	var inv domain.Invitation
	err := row.Scan(
		&inv.ID,
		&inv.MembershipNumber,
		&inv.FirstName,
		&inv.LastName,
		&inv.Dues,
		&inv.PaymentLink,
		&inv.MemberParam,
		&inv.IssuedBy,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
