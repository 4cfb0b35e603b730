package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"rfm-engine/pkg/models"

	_ "github.com/go-sql-driver/mysql"
)

const (
	transactionsTable = "transactions"
	itemsTable        = "transaction_items"
)

// Open accepts a mariadb:// or mysql:// URL, or a native driver DSN, and
// returns a pooled connection plus the DSN actually used.
func Open(dsn string) (*sql.DB, string, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, "", err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, mysqlDSN, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// Params scopes a snapshot load. StoreID is optional; Cutoff is a UTC
// date, and transactions dated anywhere within that day are included.
type Params struct {
	CompanyID string
	StoreID   string
	Cutoff    time.Time
}

// LoadTransactions fetches one company's transaction snapshot up to the
// cutoff, with customer identity and line items attached. Query errors
// are returned unchanged; deciding what to do with them is the caller's
// job.
func LoadTransactions(ctx context.Context, db *sql.DB, p Params, logger zerolog.Logger) ([]models.TransactionRecord, error) {
	if p.CompanyID == "" {
		return nil, fmt.Errorf("company id is required")
	}

	const layout = "2006-01-02 15:04:05"
	upper := p.Cutoff.UTC().AddDate(0, 0, 1).Format(layout)

	args := []any{p.CompanyID, upper}
	storeFilter := ""
	if p.StoreID != "" {
		storeFilter = " AND t.store_id = ?"
		args = append(args, p.StoreID)
	}

	var total int64
	countQ := fmt.Sprintf(
		`SELECT COUNT(*) FROM %s t WHERE t.company_id = ? AND t.transaction_date < ?%s`,
		transactionsTable, storeFilter)
	if err := db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	logger.Debug().
		Str("company_id", p.CompanyID).
		Str("store_id", p.StoreID).
		Int64("transactions", total).
		Msg("loading transaction snapshot")

	q := fmt.Sprintf(`
		SELECT t.id, t.customer_id, COALESCE(c.name, ''), COALESCE(c.email, ''), t.transaction_date
		FROM %s t
		LEFT JOIN customers c ON c.id = t.customer_id
		WHERE t.company_id = ? AND t.transaction_date < ?%s
		ORDER BY t.transaction_date, t.id`, transactionsTable, storeFilter)
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	bar := progressbar.Default(total)
	index := make(map[string]int, total)
	txs := make([]models.TransactionRecord, 0, total)
	for rows.Next() {
		var tr models.TransactionRecord
		if err := rows.Scan(&tr.ID, &tr.CustomerID, &tr.CustomerName, &tr.CustomerEmail, &tr.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tr.Items = []models.LineItem{}
		index[tr.ID] = len(txs)
		txs = append(txs, tr)
		_ = bar.Add(1)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	iq := fmt.Sprintf(`
		SELECT i.transaction_id, i.product_id, COALESCE(p.name, ''), i.quantity, i.subtotal
		FROM %s i
		JOIN %s t ON t.id = i.transaction_id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE t.company_id = ? AND t.transaction_date < ?%s
		ORDER BY i.transaction_id, i.product_id`, itemsTable, transactionsTable, storeFilter)
	itemRows, err := db.QueryContext(ctx, iq, args...)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}
	defer itemRows.Close()

	items := 0
	for itemRows.Next() {
		var txID string
		var it models.LineItem
		if err := itemRows.Scan(&txID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		if i, ok := index[txID]; ok {
			txs[i].Items = append(txs[i].Items, it)
			items++
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}

	logger.Debug().Int("transactions", len(txs)).Int("line_items", items).Msg("snapshot loaded")
	return txs, nil
}
