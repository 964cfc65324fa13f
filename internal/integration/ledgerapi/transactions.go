package ledgerapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// filterQuery encodes the set filter options as query parameters.
func filterQuery(filters entity.FilterOptions) string {
	q := url.Values{}
	if filters.Division != nil {
		q.Set("division", string(*filters.Division))
	}
	if filters.Category != nil {
		q.Set("category", string(*filters.Category))
	}
	if filters.Type != nil {
		q.Set("type", string(*filters.Type))
	}
	if filters.DateFrom != nil {
		q.Set("dateFrom", filters.DateFrom.Format(time.RFC3339))
	}
	if filters.DateTo != nil {
		q.Set("dateTo", filters.DateTo.Format(time.RFC3339))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListTransactions fetches the transactions matching filters.
func (c *Client) ListTransactions(ctx context.Context, filters entity.FilterOptions) ([]*entity.Transaction, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/transactions"+filterQuery(filters), nil)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to list transactions", 0, err)
	}

	var body []transactionResponse
	status, err := c.do(req, "list_transactions", &body)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to list transactions", status, err)
	}

	transactions := make([]*entity.Transaction, len(body))
	for i := range body {
		transactions[i] = body[i].toEntity()
	}
	return transactions, nil
}

// CreateTransaction submits a new transaction and returns the server's copy.
func (c *Client) CreateTransaction(ctx context.Context, draft entity.TransactionDraft) (*entity.Transaction, error) {
	req, err := c.buildRequest(ctx, http.MethodPost, "/transactions", newTransactionRequest(draft))
	if err != nil {
		return nil, domainerror.NewMutationError("failed to create transaction", 0, err)
	}

	var body transactionResponse
	status, err := c.do(req, "create_transaction", &body)
	if err != nil {
		return nil, domainerror.NewMutationError("failed to create transaction", status, err)
	}
	return body.toEntity(), nil
}

// UpdateTransaction replaces the editable fields of transaction id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, draft entity.TransactionDraft) (*entity.Transaction, error) {
	req, err := c.buildRequest(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), newTransactionRequest(draft))
	if err != nil {
		return nil, domainerror.NewMutationError("failed to update transaction", 0, err)
	}

	var body transactionResponse
	status, err := c.do(req, "update_transaction", &body)
	if err != nil {
		return nil, domainerror.NewMutationError("failed to update transaction", status, err)
	}
	return body.toEntity(), nil
}

// DeleteTransaction removes transaction id. Any 2xx response is success.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	req, err := c.buildRequest(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil)
	if err != nil {
		return domainerror.NewMutationError("failed to delete transaction", 0, err)
	}

	status, err := c.do(req, "delete_transaction", nil)
	if err != nil {
		return domainerror.NewMutationError("failed to delete transaction", status, err)
	}
	return nil
}
