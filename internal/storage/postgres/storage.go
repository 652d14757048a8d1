package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on, so tests can
// substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order history repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            order_date TEXT NOT NULL,
            store_name TEXT NOT NULL,
            tax_id TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL,
            email TEXT NOT NULL,
            remarks TEXT NOT NULL DEFAULT '',
            total_amount DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            synced_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            position INT NOT NULL,
            name TEXT NOT NULL,
            quantity DOUBLE PRECISION NOT NULL,
            unit TEXT NOT NULL DEFAULT '',
            unit_price DOUBLE PRECISION NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            remarks TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	s.logger.Debug("database schema ready")
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Save(ctx context.Context, order model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, order_date, store_name, tax_id, address, email, remarks, total_amount, created_at)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		if _, err := tx.Exec(ctx, insertOrder,
			order.ID, order.Date, order.StoreName, order.TaxID, order.Address,
			order.Email, order.Remarks, order.TotalAmount, order.CreatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (id, order_id, position, name, quantity, unit, unit_price, amount, remarks)
                            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		for i, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				item.ID, order.ID, i, item.Name, item.Quantity, item.Unit,
				item.Price, item.Amount, item.Remarks); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT id, order_date, store_name, tax_id, address, email, remarks, total_amount, created_at, synced_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Date, &o.StoreName, &o.TaxID, &o.Address, &o.Email,
		&o.Remarks, &o.TotalAmount, &o.CreatedAt, &o.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, order_date, store_name, tax_id, address, email, remarks, total_amount, created_at, synced_at
                   FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.StoreName, &o.TaxID, &o.Address, &o.Email,
			&o.Remarks, &o.TotalAmount, &o.CreatedAt, &o.SyncedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.loadItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT id, name, quantity, unit, unit_price, amount, remarks
                   FROM order_items WHERE order_id=$1 ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit,
			&item.Price, &item.Amount, &item.Remarks); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) CountByDate(ctx context.Context, date string) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE order_date=$1`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) MarkSynced(ctx context.Context, id string) error {
	const query = `UPDATE orders SET synced_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
