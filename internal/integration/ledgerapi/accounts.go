package ledgerapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// ListAccounts fetches every account.
func (c *Client) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/accounts", nil)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to list accounts", 0, err)
	}

	var body []accountResponse
	status, err := c.do(req, "list_accounts", &body)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to list accounts", status, err)
	}

	accounts := make([]*entity.Account, len(body))
	for i := range body {
		accounts[i] = body[i].toEntity()
	}
	return accounts, nil
}

// GetAccountStats fetches the statistics document without interpreting it.
func (c *Client) GetAccountStats(ctx context.Context) (entity.AccountStats, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/accounts/stats", nil)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to fetch account stats", 0, err)
	}

	var body json.RawMessage
	status, err := c.do(req, "get_account_stats", &body)
	if err != nil {
		return nil, domainerror.NewFetchError("failed to fetch account stats", status, err)
	}
	return body, nil
}
