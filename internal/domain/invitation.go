package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMembershipNumber наибольший номер, который записывается римскими цифрами
const MaxMembershipNumber = 3999

// Invitation представляет выданное приглашение на оплату членства
type Invitation struct {
	ID               uuid.UUID `json:"id"`
	MembershipNumber int       `json:"membership_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Dues             string    `json:"dues"`
	PaymentLink      *string   `json:"payment_link,omitempty"`
	MemberParam      string    `json:"member_param"` // Закодированный токен First_Last_ROMAN
	IssuedBy         string    `json:"issued_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// FullName возвращает имя участника в формате "First Last"
func (i *Invitation) FullName() string {
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
