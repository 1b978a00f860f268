package service

import (
	"context"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

type OrganizationService struct {
	uow     uow.UOW
	orgRepo OrganizationRepository
	blRepo  BalanceLogRepository
}

func NewOrganizationService(u uow.UOW) (*OrganizationService, error) {
	orgRepo, orgRepoErr := uow.GetRepositoryAs[OrganizationRepository](
		u, uow.RepositoryName(repoargs.OrganizationRepoName))
	if orgRepoErr != nil {
		return nil, orgRepoErr //nolint:wrapcheck
	}
	blRepo, blRepoErr := uow.GetRepositoryAs[BalanceLogRepository](
		u, uow.RepositoryName(repoargs.BalanceLogRepoName))
	if blRepoErr != nil {
		return nil, blRepoErr //nolint:wrapcheck
	}
	return &OrganizationService{
		uow:     u,
		orgRepo: orgRepo,
		blRepo:  blRepo,
	}, nil
}

// GetByINN возвращает организацию с текущим балансом. Возвращает domain.ErrRecordNotFound
// если организация с таким ИНН не известна (на путь записи это не влияет — там организация
// создается автоматически).
func (o *OrganizationService) GetByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	org, err := o.orgRepo.FindByINN(ctx, inn)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return org, nil
}

// BalanceLogs возвращает историю изменений баланса организации в порядке применения платежей.
func (o *OrganizationService) BalanceLogs(ctx context.Context, inn string) ([]domain.BalanceLog, error) {
	org, orgErr := o.orgRepo.FindByINN(ctx, inn)
	if orgErr != nil {
		return nil, orgErr //nolint:wrapcheck
	}
	logs, logsErr := o.blRepo.GetByOrganizationID(ctx, org.ID)
	if logsErr != nil {
		return nil, logsErr //nolint:wrapcheck
	}
	return logs, nil
}
