package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/service"
)

type PaymentProcessor interface {
	Process(ctx context.Context, args service.ProcessPaymentArgs) (*service.ProcessResult, error)
}

type OrganizationServicer interface {
	GetByINN(ctx context.Context, inn string) (*domain.Organization, error)
	BalanceLogs(ctx context.Context, inn string) ([]domain.BalanceLog, error)
}
