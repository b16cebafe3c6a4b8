package importslip

import (
	"context"
	"errors"
	"io"
	"log"

	"shopadmin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slipColumns = `id::text, code, supplier, to_char(import_date, 'YYYY-MM-DD'), total_value, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, s domain.ImportSlip) (*domain.ImportSlip, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertSlip = `
INSERT INTO import_slips (id, code, supplier, import_date, total_value)
VALUES ($1, 'I' || lpad(nextval('import_code_seq')::text, 3, '0'), $2, $3::date, $4)
RETURNING code, created_at
`
	created := s
	if err := tx.QueryRow(ctx, insertSlip, s.ID, s.Supplier, s.Date, s.TotalValue).
		Scan(&created.Code, &created.CreatedAt); err != nil {
		r.logger.Printf("import repo: insert slip error=%v", err)
		return nil, err
	}

	for _, line := range s.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO import_slip_lines (slip_id, product_id, product_name, import_price, quantity)
VALUES ($1, $2, $3, $4, $5)
`, s.ID, line.ProductID, line.ProductName, line.ImportPriceVND, line.Quantity); err != nil {
			return nil, err
		}

		cmd, err := tx.Exec(ctx, `
UPDATE products SET stock = stock + $2 WHERE id = $1
`, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("import repo: created code=%s lines=%d value=%d", created.Code, len(created.Lines), created.TotalValue)
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.ImportSlip, error) {
	const q = `SELECT ` + slipColumns + ` FROM import_slips WHERE id = $1`
	s, err := scanSlip(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachLines(ctx, []*domain.ImportSlip{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.ImportSlip, error) {
	const q = `
SELECT ` + slipColumns + `
FROM import_slips
WHERE $1 = '' OR supplier ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%'
ORDER BY created_at DESC, code DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Printf("import repo: list search=%q error=%v", search, err)
		return nil, err
	}
	defer rows.Close()

	var ptrs []*domain.ImportSlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, err
		}
		ptrs = append(ptrs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, ptrs); err != nil {
		return nil, err
	}

	result := make([]domain.ImportSlip, 0, len(ptrs))
	for _, s := range ptrs {
		result = append(result, *s)
	}
	return result, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM import_slips WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("import repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("import repo: deleted id=%s", id)
	return nil
}

func (r *postgresRepo) attachLines(ctx context.Context, slips []*domain.ImportSlip) error {
	if len(slips) == 0 {
		return nil
	}
	ids := make([]string, 0, len(slips))
	byID := make(map[string]*domain.ImportSlip, len(slips))
	for _, s := range slips {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	const q = `
SELECT slip_id::text, product_id::text, product_name, import_price, quantity
FROM import_slip_lines
WHERE slip_id = ANY($1::uuid[])
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var slipID string
		var line domain.ImportSlipLine
		if err := rows.Scan(&slipID, &line.ProductID, &line.ProductName, &line.ImportPriceVND, &line.Quantity); err != nil {
			return err
		}
		if s, ok := byID[slipID]; ok {
			s.Lines = append(s.Lines, line)
		}
	}
	return rows.Err()
}

func scanSlip(row pgx.Row) (*domain.ImportSlip, error) {
	var s domain.ImportSlip
	err := row.Scan(&s.ID, &s.Code, &s.Supplier, &s.Date, &s.TotalValue, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
