package rfm

import (
	"rfm-engine/pkg/models"
)

// Sentinels applied when the store has no name/email for a customer, so
// nothing downstream has to branch on absence.
const (
	defaultCustomerName  = "Unknown Customer"
	defaultCustomerEmail = "no-email@example.com"
)

// AggregateCustomers folds a transaction snapshot into one behavioral
// metric record per customer. The fold is associative and commutative
// (max date, count, sum), so traversal order does not affect the result.
// An empty snapshot yields an empty map.
func AggregateCustomers(txs []models.TransactionRecord) map[string]*models.CustomerMetric {
	metrics := make(map[string]*models.CustomerMetric)
	for _, tx := range txs {
		accumulate(metrics, tx)
	}
	return metrics
}

// accumulate is one step of the fold: resolve or create the customer's
// running metric, then merge the transaction into it.
func accumulate(metrics map[string]*models.CustomerMetric, tx models.TransactionRecord) {
	m, ok := metrics[tx.CustomerID]
	if !ok {
		name := tx.CustomerName
		if name == "" {
			name = defaultCustomerName
		}
		email := tx.CustomerEmail
		if email == "" {
			email = defaultCustomerEmail
		}
		m = &models.CustomerMetric{
			CustomerID: tx.CustomerID,
			Name:       name,
			Email:      email,
		}
		metrics[tx.CustomerID] = m
	}
	if tx.Date.After(m.LastPurchaseDate) {
		m.LastPurchaseDate = tx.Date
	}
	m.Frequency++
	m.Monetary += tx.Total()
	m.Transactions = append(m.Transactions, tx)
}
