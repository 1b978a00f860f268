package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-ledger/internal/domain"
	"github.com/fsdevblog/groph-ledger/internal/service"
)

type WebhookHandler struct {
	paymentSvs PaymentProcessor
}

func NewWebhookHandler(paymentSvs PaymentProcessor) *WebhookHandler {
	return &WebhookHandler{
		paymentSvs: paymentSvs,
	}
}

type BankWebhookParams struct {
	OperationID    uuid.UUID       `json:"operation_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PayerINN       string          `json:"payer_inn" binding:"required,inn"`
	DocumentNumber string          `json:"document_number" binding:"required,max=100"`
	DocumentDate   time.Time       `json:"document_date" binding:"required"`
}

// BankWebhook POST RouteGroup + BankWebhookRoute.
//
// Принимает платежное уведомление банка. Повторная доставка уведомления не отличима
// от первичной на уровне ответа: в обоих случаях 200 с пустым телом. Это позволяет банку
// слать уведомления в режиме at-least-once без какой-либо логики на его стороне.
func (w *WebhookHandler) BankWebhook(c *gin.Context) {
	var params BankWebhookParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() {
		_ = c.AbortWithError(http.StatusBadRequest, domain.ErrNonPositiveAmount).SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := w.paymentSvs.Process(reqCtx, service.ProcessPaymentArgs{
		OperationID:    params.OperationID,
		Amount:         params.Amount,
		PayerINN:       params.PayerINN,
		DocumentNumber: params.DocumentNumber,
		DocumentDate:   params.DocumentDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			_ = c.AbortWithError(http.StatusBadRequest, domain.ErrNonPositiveAmount).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
