package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Organization struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	INN       string
	Balance   decimal.Decimal
}

// Payment запись об обработанном платежном уведомлении. Неизменяема после создания,
// уникальность OperationID гарантирует идемпотентность обработки.
type Payment struct {
	ID             int64
	CreatedAt      time.Time
	OperationID    uuid.UUID
	Amount         decimal.Decimal
	PayerINN       string
	DocumentNumber string
	DocumentDate   time.Time
}

// BalanceLog запись аудита изменения баланса организации. Всегда NewBalance = PreviousBalance + Amount.
// PaymentID слабая ссылка: при удалении платежа зануляется, сама запись остается.
type BalanceLog struct {
	ID              int64
	CreatedAt       time.Time
	OrganizationID  int64
	PaymentID       *int64
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}
