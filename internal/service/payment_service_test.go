package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/groph-ledger/internal/service/mocks"
	"github.com/fsdevblog/groph-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-ledger/pkg/uow/mocks"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPaymentRepo *mocks.MockPaymentRepository
	mockOrgRepo     *mocks.MockOrganizationRepository
	mockBlRepo      *mocks.MockBalanceLogRepository
	service         *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockOrgRepo = mocks.NewMockOrganizationRepository(s.mockCtrl)
	s.mockBlRepo = mocks.NewMockBalanceLogRepository(s.mockCtrl)

	// Репозитории, доступные внутри транзакции.
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrganizationRepoName)).
		Return(s.mockOrgRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.BalanceLogRepoName)).
		Return(s.mockBlRepo, nil).AnyTimes()

	s.service = NewPaymentService(s.mockUOW)
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo пропускает вызов через мок UOW так же, как это делает настоящая транзакция:
// ошибка из fn возвращается наружу как есть.
func (s *PaymentServiceTestSuite) expectDo(times int) {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

func (s *PaymentServiceTestSuite) TestProcess_AppliesPayment() {
	args := ProcessPaymentArgs{
		OperationID:    uuid.New(),
		Amount:         decimal.RequireFromString("500.00"),
		PayerINN:       "1234567890",
		DocumentNumber: "PAY-001",
		DocumentDate:   time.Now(),
	}
	payment := domain.Payment{
		ID:          10,
		OperationID: args.OperationID,
		Amount:      args.Amount,
		PayerINN:    args.PayerINN,
	}
	orgBefore := domain.Organization{
		ID:      1,
		INN:     args.PayerINN,
		Balance: decimal.RequireFromString("1000.00"),
	}
	orgAfter := orgBefore
	orgAfter.Balance = decimal.RequireFromString("1500.00")

	s.expectDo(1)

	s.mockPaymentRepo.EXPECT().
		FindByOperationID(gomock.Any(), args.OperationID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreatePayment) (*domain.Payment, error) {
			s.Equal(args.OperationID, createArgs.OperationID)
			s.True(createArgs.Amount.Equal(args.Amount))
			s.Equal(args.PayerINN, createArgs.PayerINN)
			s.Equal(args.DocumentNumber, createArgs.DocumentNumber)
			return &payment, nil
		})

	s.mockOrgRepo.EXPECT().Upsert(gomock.Any(), args.PayerINN).Return(nil)
	s.mockOrgRepo.EXPECT().LockByINN(gomock.Any(), args.PayerINN).Return(&orgBefore, nil)
	s.mockOrgRepo.EXPECT().
		AddToBalance(gomock.Any(), orgBefore.ID, args.Amount).
		Return(&orgAfter, nil)

	// Запись аудита должна хранить срез баланса до и после.
	s.mockBlRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, logArgs repoargs.CreateBalanceLog) (*domain.BalanceLog, error) {
			s.Equal(orgAfter.ID, logArgs.OrganizationID)
			s.Equal(payment.ID, logArgs.PaymentID)
			s.True(logArgs.Amount.Equal(args.Amount))
			s.True(logArgs.PreviousBalance.Equal(orgBefore.Balance))
			s.True(logArgs.NewBalance.Equal(orgAfter.Balance))
			return &domain.BalanceLog{ID: 1}, nil
		})

	result, err := s.service.Process(context.Background(), args)
	s.Require().NoError(err)
	s.True(result.Applied)
	s.True(result.Organization.Balance.Equal(orgAfter.Balance))
	s.Equal(payment.ID, result.Payment.ID)
}

func (s *PaymentServiceTestSuite) TestProcess_CreatesOrganizationOnFirstPayment() {
	args := ProcessPaymentArgs{
		OperationID:    uuid.New(),
		Amount:         decimal.RequireFromString("300.00"),
		PayerINN:       "0987654321",
		DocumentNumber: "PAY-002",
		DocumentDate:   time.Now(),
	}
	payment := domain.Payment{ID: 11, OperationID: args.OperationID, Amount: args.Amount, PayerINN: args.PayerINN}
	newOrg := domain.Organization{ID: 2, INN: args.PayerINN, Balance: decimal.Zero}
	orgAfter := newOrg
	orgAfter.Balance = args.Amount

	s.expectDo(1)

	s.mockPaymentRepo.EXPECT().
		FindByOperationID(gomock.Any(), args.OperationID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&payment, nil)

	s.mockOrgRepo.EXPECT().Upsert(gomock.Any(), args.PayerINN).Return(nil)
	s.mockOrgRepo.EXPECT().LockByINN(gomock.Any(), args.PayerINN).Return(&newOrg, nil)
	s.mockOrgRepo.EXPECT().AddToBalance(gomock.Any(), newOrg.ID, args.Amount).Return(&orgAfter, nil)

	s.mockBlRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, logArgs repoargs.CreateBalanceLog) (*domain.BalanceLog, error) {
			// баланс новой организации растет с нуля.
			s.True(logArgs.PreviousBalance.Equal(decimal.Zero))
			s.True(logArgs.NewBalance.Equal(args.Amount))
			return &domain.BalanceLog{ID: 2}, nil
		})

	result, err := s.service.Process(context.Background(), args)
	s.Require().NoError(err)
	s.True(result.Applied)
	s.True(result.Organization.Balance.Equal(args.Amount))
}

func (s *PaymentServiceTestSuite) TestProcess_DuplicateDelivery() {
	args := ProcessPaymentArgs{
		OperationID: uuid.New(),
		Amount:      decimal.RequireFromString("500.00"),
		PayerINN:    "1234567890",
	}

	s.expectDo(1)

	// Платеж уже обрабатывался: никаких записей, никаких изменений баланса.
	s.mockPaymentRepo.EXPECT().
		FindByOperationID(gomock.Any(), args.OperationID).
		Return(&domain.Payment{ID: 10, OperationID: args.OperationID}, nil)

	result, err := s.service.Process(context.Background(), args)
	s.Require().NoError(err)
	s.False(result.Applied)
	s.Nil(result.Payment)
}

func (s *PaymentServiceTestSuite) TestProcess_ConcurrentDuplicateLosesOnInsert() {
	args := ProcessPaymentArgs{
		OperationID: uuid.New(),
		Amount:      decimal.RequireFromString("500.00"),
		PayerINN:    "1234567890",
	}

	s.expectDo(1)

	// Между проверкой и вставкой конкурирующая транзакция успела закоммитить такой же
	// operation_id: вставка упирается в уникальный констрейнт.
	s.mockPaymentRepo.EXPECT().
		FindByOperationID(gomock.Any(), args.OperationID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	result, err := s.service.Process(context.Background(), args)
	s.Require().NoError(err)
	s.False(result.Applied)
}

func (s *PaymentServiceTestSuite) TestProcess_NonPositiveAmount() {
	// До базы дело дойти не должно.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "negative", amount: decimal.RequireFromString("-10.00")},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			result, err := s.service.Process(context.Background(), ProcessPaymentArgs{
				OperationID: uuid.New(),
				Amount:      t.amount,
				PayerINN:    "1234567890",
			})
			s.Require().ErrorIs(err, domain.ErrNonPositiveAmount)
			s.Nil(result)
		})
	}
}

func (s *PaymentServiceTestSuite) TestProcess_StorageFailureRollsBack() {
	args := ProcessPaymentArgs{
		OperationID: uuid.New(),
		Amount:      decimal.RequireFromString("500.00"),
		PayerINN:    "1234567890",
	}
	payment := domain.Payment{ID: 10, OperationID: args.OperationID, Amount: args.Amount, PayerINN: args.PayerINN}
	org := domain.Organization{ID: 1, INN: args.PayerINN, Balance: decimal.RequireFromString("1000.00")}

	s.expectDo(1)

	s.mockPaymentRepo.EXPECT().
		FindByOperationID(gomock.Any(), args.OperationID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&payment, nil)
	s.mockOrgRepo.EXPECT().Upsert(gomock.Any(), args.PayerINN).Return(nil)
	s.mockOrgRepo.EXPECT().LockByINN(gomock.Any(), args.PayerINN).Return(&org, nil)
	s.mockOrgRepo.EXPECT().
		AddToBalance(gomock.Any(), org.ID, args.Amount).
		Return(nil, domain.ErrUnknown)

	// Ошибка хранилища выходит наружу, запись аудита не создается.
	result, err := s.service.Process(context.Background(), args)
	s.Require().ErrorIs(err, domain.ErrUnknown)
	s.Nil(result)
}
