package repoargs

import "github.com/shopspring/decimal"

type CreateBalanceLog struct {
	OrganizationID  int64
	PaymentID       int64
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}
