package transactionHandler

import (
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	transactionService transactionService.TransactionService
	validator          *validator.Validate
	middleware         middleware.Middleware
	appEnv             string
}

func New(
	log *logrus.Logger,
	ts transactionService.TransactionService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	appEnv string,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		transactionService: ts,
		validator:          validate,
		middleware:         middleware,
		appEnv:             appEnv,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.RequireAuth)
	transactions.Post("/", h.HandleAdd)
	transactions.Get("/", h.HandleList)
	transactions.Get("/:id", h.HandleGet)
	transactions.Patch("/:id", h.HandleUpdate)
	transactions.Delete("/:id", h.HandleDelete)
}
