package api

import (
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/logger"
	"github.com/fsdevblog/groph-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-ledger/internal/transport/api/testutils"
)

type BalanceHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockOrgService *mocks.MockOrganizationServicer
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrgService = mocks.NewMockOrganizationServicer(mockCtrl)

	var err error
	s.router, err = New(RouterArgs{
		Logger:              logger.New(os.Stdout, "info"),
		OrganizationService: s.mockOrgService,
	})
	s.Require().NoError(err)
}

func (s *BalanceHandlerTestSuite) makeGet(url string) (*http.Response, string) {
	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	}, testutils.WithHeader("Accept", "application/json"))

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	s.Require().NoError(res.Body.Close())

	return res, string(body)
}

func (s *BalanceHandlerTestSuite) TestShow() {
	org := domain.Organization{
		ID:      1,
		INN:     "1234567890",
		Balance: decimal.RequireFromString("1500.5"),
	}

	s.mockOrgService.EXPECT().GetByINN(gomock.Any(), org.INN).Return(&org, nil)

	res, body := s.makeGet("/api/organizations/1234567890/balance")
	s.Equal(http.StatusOK, res.StatusCode)
	s.JSONEq(`{"inn":"1234567890","balance":"1500.5"}`, body)
}

func (s *BalanceHandlerTestSuite) TestShow_NotFound() {
	s.mockOrgService.EXPECT().
		GetByINN(gomock.Any(), "0000000000").
		Return(nil, domain.ErrRecordNotFound)

	res, body := s.makeGet("/api/organizations/0000000000/balance")
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.JSONEq(`{"detail":"Organization not found"}`, body)
}

func (s *BalanceHandlerTestSuite) TestShow_StorageFailure() {
	s.mockOrgService.EXPECT().
		GetByINN(gomock.Any(), "1234567890").
		Return(nil, domain.ErrUnknown)

	res, _ := s.makeGet("/api/organizations/1234567890/balance")
	s.Equal(http.StatusInternalServerError, res.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestLogs() {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	paymentID := int64(10)
	logs := []domain.BalanceLog{
		{
			ID:              1,
			CreatedAt:       createdAt,
			OrganizationID:  1,
			PaymentID:       &paymentID,
			Amount:          decimal.RequireFromString("500.5"),
			PreviousBalance: decimal.RequireFromString("1000"),
			NewBalance:      decimal.RequireFromString("1500.5"),
		},
	}

	s.mockOrgService.EXPECT().BalanceLogs(gomock.Any(), "1234567890").Return(logs, nil)

	res, body := s.makeGet("/api/organizations/1234567890/balance/logs")
	s.Equal(http.StatusOK, res.StatusCode)
	s.JSONEq(
		`[{"amount":"500.5","previous_balance":"1000","new_balance":"1500.5","created_at":"2024-05-01T12:00:00Z"}]`,
		body,
	)
}

func (s *BalanceHandlerTestSuite) TestLogs_NotFound() {
	s.mockOrgService.EXPECT().
		BalanceLogs(gomock.Any(), "0000000000").
		Return(nil, domain.ErrRecordNotFound)

	res, body := s.makeGet("/api/organizations/0000000000/balance/logs")
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.JSONEq(`{"detail":"Organization not found"}`, body)
}
