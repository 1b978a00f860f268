package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

// errDuplicateOperation внутренний маркер повторной доставки уведомления. Наружу не выходит:
// Process превращает его в ProcessResult{Applied: false}.
var errDuplicateOperation = errors.New("duplicate operation")

type PaymentService struct {
	uow uow.UOW
}

func NewPaymentService(u uow.UOW) *PaymentService {
	return &PaymentService{uow: u}
}

type ProcessPaymentArgs struct {
	OperationID    uuid.UUID
	Amount         decimal.Decimal
	PayerINN       string
	DocumentNumber string
	DocumentDate   time.Time
}

type ProcessResult struct {
	// Applied true если платеж применен этим вызовом. false — уведомление с таким
	// operation_id уже обрабатывалось, побочных эффектов нет.
	Applied      bool
	Payment      *domain.Payment
	Organization *domain.Organization
}

// Process применяет платежное уведомление к балансу организации. Вся работа происходит в одной
// транзакции: запись платежа, обновление баланса и запись аудита видны снаружи только вместе.
//
// Гарантии для operation_id: сколько бы раз и насколько конкурентно ни пришло одно и то же
// уведомление, в базе будет ровно один платеж, ровно одна запись balance_logs и баланс
// увеличится ровно один раз. Проигравшая конкурентная вставка упирается в уникальный констрейнт,
// ее транзакция откатывается целиком и вызов завершается как дубликат.
//
// Возвращает domain.ErrNonPositiveAmount для сумм <= 0 до каких-либо обращений к базе.
func (p *PaymentService) Process(ctx context.Context, args ProcessPaymentArgs) (*ProcessResult, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("processing payment %s: %w", args.OperationID, domain.ErrNonPositiveAmount)
	}

	var result ProcessResult
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}

		// Быстрый путь для повторной доставки: платеж уже есть, выходим без записей.
		if _, findErr := paymentRepo.FindByOperationID(c, args.OperationID); findErr == nil {
			return errDuplicateOperation
		} else if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr //nolint:wrapcheck
		}

		payment, createErr := paymentRepo.Create(c, repoargs.CreatePayment{
			OperationID:    args.OperationID,
			Amount:         args.Amount,
			PayerINN:       args.PayerINN,
			DocumentNumber: args.DocumentNumber,
			DocumentDate:   args.DocumentDate,
		})
		if createErr != nil {
			// Конкурентная доставка того же operation_id успела вставить платеж между нашей
			// проверкой и вставкой. Транзакция откатится, эффектов не останется.
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return errDuplicateOperation
			}
			return createErr //nolint:wrapcheck
		}

		org, applyErr := p.applyToBalance(c, tx, payment)
		if applyErr != nil {
			return applyErr
		}

		result = ProcessResult{Applied: true, Payment: payment, Organization: org}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, errDuplicateOperation) {
			return &ProcessResult{Applied: false}, nil
		}
		return nil, fmt.Errorf("processing payment %s: %w", args.OperationID, txErr)
	}
	return &result, nil
}

// applyToBalance обновляет баланс организации платежа и пишет запись аудита. Организация
// создается лениво при первом платеже; блокировка строки (FOR UPDATE) сериализует и гонку
// создания, и конкурентные read-modify-write баланса.
func (p *PaymentService) applyToBalance(
	ctx context.Context,
	tx uow.TX,
	payment *domain.Payment,
) (*domain.Organization, error) {
	orgRepo, orgRepoErr := uow.GetAs[OrganizationRepository](tx, uow.RepositoryName(repoargs.OrganizationRepoName))
	if orgRepoErr != nil {
		return nil, orgRepoErr //nolint:wrapcheck
	}

	if upsertErr := orgRepo.Upsert(ctx, payment.PayerINN); upsertErr != nil {
		return nil, upsertErr //nolint:wrapcheck
	}
	org, lockErr := orgRepo.LockByINN(ctx, payment.PayerINN)
	if lockErr != nil {
		return nil, lockErr //nolint:wrapcheck
	}

	previousBalance := org.Balance
	updated, updErr := orgRepo.AddToBalance(ctx, org.ID, payment.Amount)
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	blRepo, blRepoErr := uow.GetAs[BalanceLogRepository](tx, uow.RepositoryName(repoargs.BalanceLogRepoName))
	if blRepoErr != nil {
		return nil, blRepoErr //nolint:wrapcheck
	}
	if _, logErr := blRepo.Create(ctx, repoargs.CreateBalanceLog{
		OrganizationID:  updated.ID,
		PaymentID:       payment.ID,
		Amount:          payment.Amount,
		PreviousBalance: previousBalance,
		NewBalance:      updated.Balance,
	}); logErr != nil {
		return nil, logErr //nolint:wrapcheck
	}

	return updated, nil
}
