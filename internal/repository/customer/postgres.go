package customer

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

const customerColumns = `id::text, code, name, phone, email, location, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%'
ORDER BY (code = 'GUEST') DESC, code ASC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Printf("customer repo: list search=%q error=%v", search, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.get(ctx, q, id)
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE code = $1`
	return r.get(ctx, q, code)
}

func (r *postgresRepo) get(ctx context.Context, q, arg string) (*domain.Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get %q error=%v", arg, err)
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (code, name, phone, email, location)
VALUES (
    COALESCE(NULLIF($1, ''), 'KH' || lpad(nextval('customer_code_seq')::text, 3, '0')),
    $2, $3, $4, $5
)
RETURNING ` + customerColumns + `
`
	created, err := scanCustomer(r.pool.QueryRow(ctx, q, c.Code, c.Name, c.Phone, c.Email, c.Location))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: create name=%q error=%v", c.Name, err)
		return nil, err
	}
	r.logger.Printf("customer repo: created code=%s id=%s", created.Code, created.ID)
	return created, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Phone, &c.Email, &c.Location, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
