package transaction

import (
	"FinanceTracker/internal/entity"
	"time"
)

type CreateTransactionRequest struct {
	Type        string    `json:"type" validate:"required,oneof=income expense"`
	Amount      *float64  `json:"amount" validate:"required"`
	Category    []string  `json:"category" validate:"dive,min=1,max=64"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description" validate:"omitempty,max=500"`
}

// UpdateTransactionRequest is a partial field replacement: only non-nil
// fields are written, the update timestamp always is. An empty patch is a
// timestamp-only refresh.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount"`
	Category    []string `json:"category" validate:"omitempty,dive,min=1,max=64"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

type AckResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
}

type ListTransactionsQuery struct {
	Page      int      `query:"page" validate:"omitempty,min=1"`
	PageSize  int      `query:"page_size" validate:"omitempty,min=1,max=100"`
	Type      string   `query:"type" validate:"omitempty,oneof=income expense"`
	Category  []string `query:"category"`
	CreatedAt string   `query:"created_at"`
}

type ListTransactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
	TotalCount   int64                `json:"totalCount"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"pageSize"`
	TotalPages   int                  `json:"totalPages"`
}

// ListFilter is the repository-level query shape, owner scoping excluded on
// purpose: the repository adds the owner id itself.
type ListFilter struct {
	Type      *string
	Category  []string
	CreatedAt *time.Time
	Skip      int64
	Limit     int64
}
