package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-ledger/internal/domain"
)

type BalanceHandler struct {
	orgSvs OrganizationServicer
}

func NewBalanceHandler(orgSvs OrganizationServicer) *BalanceHandler {
	return &BalanceHandler{
		orgSvs: orgSvs,
	}
}

type BalanceResponse struct {
	INN     string          `json:"inn"`
	Balance decimal.Decimal `json:"balance"`
}

// Show GET RouteGroup + BalanceRoute.
func (b *BalanceHandler) Show(c *gin.Context) {
	inn := c.Param("inn")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	org, err := b.orgSvs.GetByINN(reqCtx, inn)
	if err != nil {
		abortWithOrganizationErr(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		INN:     org.INN,
		Balance: org.Balance,
	})
}

type BalanceLogResponseItem struct {
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	CreatedAt       string          `json:"created_at"`
}

// Logs GET RouteGroup + BalanceLogsRoute. История изменений баланса в порядке применения.
func (b *BalanceHandler) Logs(c *gin.Context) {
	inn := c.Param("inn")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	logs, err := b.orgSvs.BalanceLogs(reqCtx, inn)
	if err != nil {
		abortWithOrganizationErr(c, err)
		return
	}

	response := make([]BalanceLogResponseItem, len(logs))
	for i, log := range logs {
		response[i] = BalanceLogResponseItem{
			Amount:          log.Amount,
			PreviousBalance: log.PreviousBalance,
			NewBalance:      log.NewBalance,
			CreatedAt:       log.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

func abortWithOrganizationErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Organization not found"})
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
