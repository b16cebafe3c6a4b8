package product

import (
	"context"
	"errors"
	"io"
	"log"

	"shopadmin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, code, sku, name, category, image_url, description, price, cost, stock, sold, rating, review_count, active, created_at`

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

func (r *postgresRepo) List(ctx context.Context, search, category string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%')
  AND ($2 = '' OR category = $2)
ORDER BY code ASC
`
	rows, err := r.pool.Query(ctx, q, search, category)
	if err != nil {
		r.logger.Printf("product repo: list search=%q error=%v", search, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (code, sku, name, category, image_url, description, price, cost, stock, rating, review_count, active)
VALUES (
    COALESCE(NULLIF($1, ''), 'P' || lpad(nextval('product_code_seq')::text, 3, '0')),
    $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
RETURNING ` + productColumns + `
`
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Code, p.SKU, p.Name, p.Category, p.ImageURL, p.Description,
		p.PriceVND, p.CostVND, p.Stock, p.Rating, p.ReviewCount, p.Active,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: create code=%q error=%v", p.Code, err)
		return nil, err
	}
	r.logger.Printf("product repo: created code=%s id=%s", created.Code, created.ID)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET sku = $2, name = $3, category = $4, image_url = $5, description = $6,
    price = $7, cost = $8, stock = $9, rating = $10, review_count = $11, active = $12
WHERE id = $1
RETURNING ` + productColumns + `
`
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.SKU, p.Name, p.Category, p.ImageURL, p.Description,
		p.PriceVND, p.CostVND, p.Stock, p.Rating, p.ReviewCount, p.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (code, sku, name, category, image_url, description, price, cost, stock, rating, review_count, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (code) DO UPDATE SET
    sku = EXCLUDED.sku,
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    image_url = EXCLUDED.image_url,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    cost = EXCLUDED.cost,
    stock = EXCLUDED.stock
RETURNING ` + productColumns + `
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Code, p.SKU, p.Name, p.Category, p.ImageURL, p.Description,
		p.PriceVND, p.CostVND, p.Stock, p.Rating, p.ReviewCount, p.Active,
	))
	if err != nil {
		r.logger.Printf("product repo: upsert code=%q error=%v", p.Code, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted code=%s id=%s", res.Code, res.ID)
	return res, nil
}

func (r *postgresRepo) InventorySummary(ctx context.Context, lowStockThreshold int) (*domain.InventorySummary, error) {
	var out domain.InventorySummary
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(SUM(stock), 0), COALESCE(SUM(stock::bigint * cost), 0)
FROM products
`).Scan(&out.TotalStock, &out.StockValue)
	if err != nil {
		r.logger.Printf("product repo: inventory summary error=%v", err)
		return nil, err
	}

	const lowQ = `
SELECT ` + productColumns + `
FROM products
WHERE stock <= $1
ORDER BY stock ASC, code ASC
`
	rows, err := r.pool.Query(ctx, lowQ, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out.LowStock = append(out.LowStock, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &out, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.SKU,
		&p.Name,
		&p.Category,
		&p.ImageURL,
		&p.Description,
		&p.PriceVND,
		&p.CostVND,
		&p.Stock,
		&p.Sold,
		&p.Rating,
		&p.ReviewCount,
		&p.Active,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
