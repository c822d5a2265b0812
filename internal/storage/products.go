package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/model"
)

// SaveProducts inserts products, skipping rows already present by
// content hash so repeated imports are idempotent.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO products (
			hash, name, description, brand, category, subcategory,
			price, stock_quantity, image_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range products {
		if p.Hash == "" {
			p.Hash = p.GenerateHash()
		}
		if _, err := stmt.ExecContext(ctx,
			p.Hash,
			p.Name,
			p.Description,
			p.Brand,
			p.Category,
			p.Subcategory,
			p.Price,
			p.StockQty,
			p.ImageFile,
		); err != nil {
			return fmt.Errorf("failed to save product %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// ListProducts returns every product, ordered by ID.
func (s *SQLiteStorage) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hash, name, COALESCE(description, ''), COALESCE(brand, ''),
		       COALESCE(category, ''), COALESCE(subcategory, ''),
		       price, stock_quantity, COALESCE(image_file, '')
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Hash, &p.Name, &p.Description, &p.Brand,
			&p.Category, &p.Subcategory,
			&p.Price, &p.StockQty, &p.ImageFile,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetProduct returns a single product by ID.
func (s *SQLiteStorage) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var p model.Product
	err := s.db.QueryRowContext(ctx, `
		SELECT id, hash, name, COALESCE(description, ''), COALESCE(brand, ''),
		       COALESCE(category, ''), COALESCE(subcategory, ''),
		       price, stock_quantity, COALESCE(image_file, '')
		FROM products
		WHERE id = ?
	`, id).Scan(
		&p.ID, &p.Hash, &p.Name, &p.Description, &p.Brand,
		&p.Category, &p.Subcategory,
		&p.Price, &p.StockQty, &p.ImageFile,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return &p, nil
}

// ApplyChanges persists a changeset with per-item failure semantics and
// records an audit row per applied change. The batch reports partial
// success rather than all-or-nothing so only the failed subset needs a
// re-run.
func (s *SQLiteStorage) ApplyChanges(ctx context.Context, changes []model.ChangeRecord) (model.ApplyResult, error) {
	var result model.ApplyResult

	if err := validateContext(ctx); err != nil {
		return result, err
	}

	for _, change := range changes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.applyChange(ctx, change); err != nil {
			result.Failed = append(result.Failed, model.ApplyFailure{
				ProductID: change.ProductID,
				Error:     err.Error(),
			})
			continue
		}
		result.Applied++
	}

	return result, nil
}

func (s *SQLiteStorage) applyChange(ctx context.Context, change model.ChangeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category = ?, subcategory = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, change.To.Category, change.To.Subcategory, change.ProductID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", change.ProductID, common.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO classification_history (
			product_id, old_category, old_subcategory,
			category, subcategory, confidence, rule_key
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, change.ProductID,
		change.From.Category, change.From.Subcategory,
		change.To.Category, change.To.Subcategory,
		change.Confidence, change.RuleKey,
	); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	return tx.Commit()
}

// CategoryCounts returns the number of products per stored category.
// Uncategorized products are counted under the empty key.
func (s *SQLiteStorage) CategoryCounts(ctx context.Context) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(category, ''), COUNT(*)
		FROM products
		GROUP BY COALESCE(category, '')
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[category] = n
	}

	return counts, rows.Err()
}

// HistoryEntry is one audit row of an applied classification change.
type HistoryEntry struct {
	AppliedAt      string
	OldCategory    string
	OldSubcategory string
	Category       string
	Subcategory    string
	RuleKey        string
	ProductID      int64
	Confidence     float64
}

// History returns the audit trail for a product, newest first.
func (s *SQLiteStorage) History(ctx context.Context, productID int64) ([]HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, COALESCE(old_category, ''), COALESCE(old_subcategory, ''),
		       category, COALESCE(subcategory, ''), confidence,
		       COALESCE(rule_key, ''), applied_at
		FROM classification_history
		WHERE product_id = ?
		ORDER BY id DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(
			&e.ProductID, &e.OldCategory, &e.OldSubcategory,
			&e.Category, &e.Subcategory, &e.Confidence,
			&e.RuleKey, &e.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
