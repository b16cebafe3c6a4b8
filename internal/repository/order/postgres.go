package order

import (
	"context"
	"errors"
	"io"
	"log"

	"shopadmin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, code, COALESCE(customer_id::text, ''), customer_name, customer_phone, subtotal, tax, tax_rate, total, status, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (id, code, customer_id, customer_name, customer_phone, subtotal, tax, tax_rate, total, status)
VALUES ($1, 'DH' || lpad(nextval('order_code_seq')::text, 3, '0'), NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9)
RETURNING code, created_at
`
	created := o
	created.Status = domain.OrderCompleted
	if err := tx.QueryRow(ctx, insertOrder,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone,
		o.SubtotalVND, o.TaxVND, o.TaxRatePercent, o.TotalVND, domain.OrderCompleted,
	).Scan(&created.Code, &created.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert order id=%s error=%v", o.ID, err)
		return nil, err
	}

	for _, line := range o.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, product_id, product_name, price, quantity)
VALUES ($1, $2, $3, $4, $5)
`, o.ID, line.ProductID, line.ProductName, line.UnitPriceVND, line.Quantity); err != nil {
			return nil, err
		}

		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $2, sold = sold + $2
WHERE id = $1 AND stock >= $2
`, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			r.logger.Printf("order repo: commit rejected, stock short product=%s qty=%d", line.ProductID, line.Quantity)
			return nil, domain.ErrInsufficientStock
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: committed code=%s lines=%d total=%d", created.Code, len(created.Lines), created.TotalVND)
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachLines(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE $1 = '' OR customer_name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%'
ORDER BY created_at DESC, code DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Printf("order repo: list search=%q error=%v", search, err)
		return nil, err
	}
	defer rows.Close()

	var ptrs []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		ptrs = append(ptrs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, ptrs); err != nil {
		return nil, err
	}

	result := make([]domain.Order, 0, len(ptrs))
	for _, o := range ptrs {
		result = append(result, *o)
	}
	return result, nil
}

func (r *postgresRepo) Refund(ctx context.Context, id string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var status domain.OrderStatus
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if status != domain.OrderCompleted {
		return nil, domain.ErrAlreadyRefunded
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, domain.OrderRefunded); err != nil {
		return nil, err
	}

	// Credit stock back. Products deleted from the catalog since the
	// sale simply have nothing to credit.
	if _, err := tx.Exec(ctx, `
UPDATE products p
SET stock = p.stock + l.quantity, sold = p.sold - l.quantity
FROM order_lines l
WHERE l.order_id = $1 AND p.id = l.product_id
`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: refunded id=%s", id)
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) CustomerSummaries(ctx context.Context, search string) ([]domain.CustomerSummary, error) {
	const q = `
SELECT c.id::text, c.code, c.name, COUNT(o.id), COALESCE(SUM(o.total), 0), MAX(o.created_at)
FROM customers c
JOIN orders o ON o.customer_id = c.id AND o.status = 'completed'
WHERE $1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.code ILIKE '%' || $1 || '%'
GROUP BY c.id, c.code, c.name
ORDER BY COALESCE(SUM(o.total), 0) DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Printf("order repo: customer summaries error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CustomerSummary
	for rows.Next() {
		var s domain.CustomerSummary
		if err := rows.Scan(&s.CustomerID, &s.Code, &s.Name, &s.TotalOrders, &s.TotalSpent, &s.LastOrder); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) attachLines(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const q = `
SELECT order_id::text, product_id::text, product_name, price, quantity
FROM order_lines
WHERE order_id = ANY($1::uuid[])
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.ProductID, &line.ProductName, &line.UnitPriceVND, &line.Quantity); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, line)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.Code,
		&o.CustomerID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.SubtotalVND,
		&o.TaxVND,
		&o.TaxRatePercent,
		&o.TotalVND,
		&o.Status,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
