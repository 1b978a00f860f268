package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

const balanceLogColumns = "id, created_at, organization_id, payment_id, amount, previous_balance, new_balance"

type BalanceLogRepository struct {
	db uow.DBTX
}

func NewBalanceLogRepository(db uow.DBTX) *BalanceLogRepository {
	return &BalanceLogRepository{db: db}
}

func (b *BalanceLogRepository) Create(
	ctx context.Context,
	args repoargs.CreateBalanceLog,
) (*domain.BalanceLog, error) {
	row := b.db.QueryRow(ctx,
		`INSERT INTO balance_logs (organization_id, payment_id, amount, previous_balance, new_balance)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+balanceLogColumns,
		args.OrganizationID, args.PaymentID, args.Amount, args.PreviousBalance, args.NewBalance,
	)
	log, err := scanBalanceLog(row)
	if err != nil {
		return nil, convertErr(err, "creating balance log for organization %d", args.OrganizationID)
	}
	return log, nil
}

// GetByOrganizationID возвращает историю изменений баланса организации в порядке создания записей.
func (b *BalanceLogRepository) GetByOrganizationID(
	ctx context.Context,
	organizationID int64,
) ([]domain.BalanceLog, error) {
	rows, err := b.db.Query(ctx,
		`SELECT `+balanceLogColumns+` FROM balance_logs WHERE organization_id = $1 ORDER BY created_at, id`,
		organizationID,
	)
	if err != nil {
		return nil, convertErr(err, "getting balance logs for organization %d", organizationID)
	}
	defer rows.Close()

	var logs []domain.BalanceLog
	for rows.Next() {
		log, scanErr := scanBalanceLog(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning balance log for organization %d", organizationID)
		}
		logs = append(logs, *log)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading balance logs for organization %d", organizationID)
	}
	return logs, nil
}

func scanBalanceLog(row interface{ Scan(...any) error }) (*domain.BalanceLog, error) {
	var log domain.BalanceLog
	err := row.Scan(
		&log.ID,
		&log.CreatedAt,
		&log.OrganizationID,
		&log.PaymentID,
		&log.Amount,
		&log.PreviousBalance,
		&log.NewBalance,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &log, nil
}
