// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
)

// ledgerRow is one row of a ledger table in a feature file. Header cells
// name the columns.
type ledgerRow map[string]string

func tableRows(table *godog.Table) ([]ledgerRow, error) {
	if table == nil || len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	rows := make([]ledgerRow, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		row := ledgerRow{}
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// transactionRecord renders a row the way the ledger service serves it.
// created_hours_ago is relative to now; date defaults to the creation day.
func transactionRecord(row ledgerRow, now time.Time) (map[string]any, error) {
	createdAt := now
	if v := row["created_hours_ago"]; v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid created_hours_ago %q: %w", v, err)
		}
		createdAt = now.Add(-time.Duration(hours * float64(time.Hour)))
	}

	date := createdAt.Format(time.RFC3339)
	if v := row["date"]; v != "" {
		date = v
	}

	amount, err := strconv.ParseFloat(row["amount"], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", row["amount"], err)
	}

	record := map[string]any{
		"id":          row["id"],
		"type":        row["type"],
		"amount":      amount,
		"description": valueOr(row["description"], row["id"]),
		"category":    row["category"],
		"division":    valueOr(row["division"], "personal"),
		"date":        date,
		"createdAt":   createdAt.Format(time.RFC3339),
	}
	if v := row["from_account"]; v != "" {
		record["fromAccount"] = v
	}
	if v := row["to_account"]; v != "" {
		record["toAccount"] = v
	}
	return record, nil
}

func accountRecord(row ledgerRow) (map[string]any, error) {
	balance, err := strconv.ParseFloat(row["balance"], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", row["balance"], err)
	}
	return map[string]any{
		"id":      row["id"],
		"name":    row["name"],
		"balance": balance,
		"type":    valueOr(row["type"], "bank"),
	}, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
