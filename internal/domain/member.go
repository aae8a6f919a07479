package domain

// UnknownMemberName отображается, когда параметр участника не удалось разобрать
const UnknownMemberName = "Unknown Member"

// NotAvailable отображается вместо номера участника у запасной записи
const NotAvailable = "N/A"

// MemberRecord представляет участника клуба, восстановленного из параметров ссылки
type MemberRecord struct {
	Name             string  `json:"name"`
	MembershipNumber int     `json:"membership_number"` // 0 у запасной записи
	Known            bool    `json:"known"`             // false у запасной записи
	DuesAmount       string  `json:"dues_amount,omitempty"`
	PaymentLink      *string `json:"payment_link,omitempty"`
}

// UnknownMember возвращает запасную запись, которая используется вместо ошибки разбора
func UnknownMember() MemberRecord {
	return MemberRecord{Name: UnknownMemberName}
}

// HasPaymentLink возвращает true если ссылка на оплату уже выдана
func (m MemberRecord) HasPaymentLink() bool {
	return m.PaymentLink != nil && *m.PaymentLink != ""
}
