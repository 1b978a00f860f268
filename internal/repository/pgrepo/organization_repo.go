package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
)

const organizationColumns = "id, created_at, updated_at, inn, balance"

type OrganizationRepository struct {
	db uow.DBTX
}

func NewOrganizationRepository(db uow.DBTX) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Upsert создает организацию с нулевым балансом, если ее еще нет. Конкурентные вставки одного
// inn безопасны: проигравший просто ничего не вставит.
func (o *OrganizationRepository) Upsert(ctx context.Context, inn string) error {
	_, err := o.db.Exec(ctx,
		`INSERT INTO organizations (inn, balance) VALUES ($1, 0) ON CONFLICT (inn) DO NOTHING`,
		inn,
	)
	if err != nil {
		return convertErr(err, "upserting organization with inn `%s`", inn)
	}
	return nil
}

// LockByINN читает организацию под блокировкой строки (SELECT ... FOR UPDATE). Вызывать только
// внутри транзакции: блокировка сериализует конкурентные изменения баланса одной организации.
func (o *OrganizationRepository) LockByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE inn = $1 FOR UPDATE`,
		inn,
	)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, convertErr(err, "locking organization with inn `%s`", inn)
	}
	return org, nil
}

// AddToBalance атомарно прибавляет delta к балансу организации и возвращает обновленную запись.
func (o *OrganizationRepository) AddToBalance(
	ctx context.Context,
	id int64,
	delta decimal.Decimal,
) (*domain.Organization, error) {
	row := o.db.QueryRow(ctx,
		`UPDATE organizations SET balance = balance + $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+organizationColumns,
		id, delta,
	)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, convertErr(err, "adding to balance of organization with id %d", id)
	}
	return org, nil
}

// FindByINN ищет организацию без блокировки. Возвращает domain.ErrRecordNotFound если записи нет.
func (o *OrganizationRepository) FindByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE inn = $1`,
		inn,
	)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, convertErr(err, "finding organization with inn `%s`", inn)
	}
	return org, nil
}

func scanOrganization(row interface{ Scan(...any) error }) (*domain.Organization, error) {
	var org domain.Organization
	if err := row.Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt, &org.INN, &org.Balance); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &org, nil
}
