package service

import (
	"fmt"

	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

type AppServices struct {
	PaymentService      *PaymentService
	OrganizationService *OrganizationService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	orgService, orgServiceErr := NewOrganizationService(unitOfWork)
	if orgServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orgServiceErr.Error())
	}

	return &AppServices{
		PaymentService:      NewPaymentService(unitOfWork),
		OrganizationService: orgService,
	}, nil
}
