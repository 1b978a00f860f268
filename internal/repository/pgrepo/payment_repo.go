package pgrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

const paymentColumns = "id, created_at, operation_id, amount, payer_inn, document_number, document_date"

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create создает запись платежа. Если платеж с таким operation_id уже существует,
// возвращает domain.ErrDuplicateKey (сработает констрейнт payments_operation_id_key).
func (p *PaymentRepository) Create(
	ctx context.Context,
	args repoargs.CreatePayment,
) (*domain.Payment, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO payments (operation_id, amount, payer_inn, document_number, document_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+paymentColumns,
		args.OperationID, args.Amount, args.PayerINN, args.DocumentNumber, args.DocumentDate,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment with operation_id `%s`", args.OperationID)
	}
	return payment, nil
}

// FindByOperationID ищет платеж по ключу идемпотентности. Возвращает domain.ErrRecordNotFound
// если платеж еще не обрабатывался.
func (p *PaymentRepository) FindByOperationID(
	ctx context.Context,
	operationID uuid.UUID,
) (*domain.Payment, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE operation_id = $1`,
		operationID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment with operation_id `%s`", operationID)
	}
	return payment, nil
}

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID,
		&payment.CreatedAt,
		&payment.OperationID,
		&payment.Amount,
		&payment.PayerINN,
		&payment.DocumentNumber,
		&payment.DocumentDate,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &payment, nil
}
