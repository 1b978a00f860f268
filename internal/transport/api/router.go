package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-ledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup       = "/api"
	BankWebhookRoute = "/webhook/bank"
	BalanceRoute     = "/organizations/:inn/balance"
	BalanceLogsRoute = "/organizations/:inn/balance/logs"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	PaymentService      PaymentProcessor
	OrganizationService OrganizationServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	webhookHandler := NewWebhookHandler(args.PaymentService)
	balanceHandler := NewBalanceHandler(args.OrganizationService)

	api := r.Group(RouteGroup)

	api.POST(BankWebhookRoute, webhookHandler.BankWebhook)
	api.GET(BalanceRoute, balanceHandler.Show)
	api.GET(BalanceLogsRoute, balanceHandler.Logs)

	return r, nil
}
