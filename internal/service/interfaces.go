package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	FindByOperationID(ctx context.Context, operationID uuid.UUID) (*domain.Payment, error)
}

type OrganizationRepository interface {
	Upsert(ctx context.Context, inn string) error
	LockByINN(ctx context.Context, inn string) (*domain.Organization, error)
	AddToBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Organization, error)
	FindByINN(ctx context.Context, inn string) (*domain.Organization, error)
}

type BalanceLogRepository interface {
	Create(ctx context.Context, args repoargs.CreateBalanceLog) (*domain.BalanceLog, error)
	GetByOrganizationID(ctx context.Context, organizationID int64) ([]domain.BalanceLog, error)
}
