package domain

import "errors"

// Доменные ошибки сервиса
var (
	// ErrFormat возвращается когда в параметре участника меньше трех сегментов
	ErrFormat = errors.New("invalid member format")

	// ErrInvalidNumeral возвращается когда номер не является ни целым числом, ни римской записью
	ErrInvalidNumeral = errors.New("invalid roman numeral")

	// ErrOutOfRange возвращается для чисел вне диапазона 1..3999
	ErrOutOfRange = errors.New("number outside roman numeral range")

	// ErrMissingMemberData возвращается когда в запросе нет параметров member или price
	ErrMissingMemberData = errors.New("no member data available")

	// ErrNumberSpaceExhausted возвращается когда все номера участников уже выданы
	ErrNumberSpaceExhausted = errors.New("membership numbers exhausted")

	// ErrInvitationExists возвращается при попытке повторно выдать уже занятый номер
	ErrInvitationExists = errors.New("invitation already exists")

	// ErrInvalidDues возвращается когда сумма взноса не является десятичным числом
	ErrInvalidDues = errors.New("dues must be a decimal number")

	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrInvitationNotFound возвращается когда приглашение не найдено
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeInvalidFormat        ErrorCode = "INVALID_FORMAT"         // Неверный формат параметра участника
	CodeInvalidNumeral       ErrorCode = "INVALID_NUMERAL"        // Неверная римская запись
	CodeOutOfRange           ErrorCode = "OUT_OF_RANGE"           // Число вне диапазона 1..3999
	CodeMissingMemberData    ErrorCode = "MISSING_MEMBER_DATA"    // Нет параметров member/price
	CodeNumberSpaceExhausted ErrorCode = "NUMBER_SPACE_EXHAUSTED" // Номера закончились
	CodeInvitationExists     ErrorCode = "INVITATION_EXISTS"      // Номер уже выдан
	CodeInvalidDues          ErrorCode = "INVALID_DUES"           // Неверная сумма взноса
	CodeNotFound             ErrorCode = "NOT_FOUND"              // Ресурс не найден
	CodeUnauthorized         ErrorCode = "UNAUTHORIZED"           // Нет доступа
	CodeInternal             ErrorCode = "INTERNAL_ERROR"         // Внутренняя ошибка
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrInvalidNumeral):
		return CodeInvalidNumeral
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrMissingMemberData):
		return CodeMissingMemberData
	case errors.Is(err, ErrNumberSpaceExhausted):
		return CodeNumberSpaceExhausted
	case errors.Is(err, ErrInvitationExists):
		return CodeInvitationExists
	case errors.Is(err, ErrInvalidDues):
		return CodeInvalidDues
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvitationNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}
