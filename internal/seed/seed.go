package seed

import (
	"context"
	"fmt"
	"os"

	"shopadmin/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Code     string
	Name     string
	Category string
	PriceVND int64
	CostVND  int64
	Stock    int
	Rating   float64
}

type customerSeed struct {
	Code  string
	Name  string
	Phone string
}

// Apply inserts the demo catalog, the walk-in guest customer, and the
// admin account. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Code: "P001", Name: "Laptop Dell XPS 13 Plus", Category: "Laptop", PriceVND: 45_000_000, CostVND: 38_000_000, Stock: 10, Rating: 4.8},
		{Code: "P002", Name: "iPhone 15 Pro Max Titanium", Category: "Điện thoại", PriceVND: 32_000_000, CostVND: 27_500_000, Stock: 5, Rating: 4.9},
		{Code: "P003", Name: "Tai nghe Sony WH-1000XM5", Category: "Âm thanh", PriceVND: 8_500_000, CostVND: 6_800_000, Stock: 15, Rating: 4.7},
		{Code: "P004", Name: "Chuột Logitech MX Master 3S", Category: "Phụ kiện", PriceVND: 2_800_000, CostVND: 2_100_000, Stock: 30, Rating: 4.6},
		{Code: "P005", Name: "Bàn phím Keychron Q1 Pro", Category: "Phụ kiện", PriceVND: 4_200_000, CostVND: 3_300_000, Stock: 8, Rating: 4.5},
		{Code: "P006", Name: "Màn hình LG UltraView 29\"", Category: "Màn hình", PriceVND: 5_500_000, CostVND: 4_400_000, Stock: 0, Rating: 4.4},
		{Code: "P007", Name: "iPad Air 5", Category: "Tablet", PriceVND: 14_500_000, CostVND: 12_200_000, Stock: 12, Rating: 4.8},
		{Code: "P008", Name: "Apple Watch Series 9", Category: "Đồng hồ", PriceVND: 10_500_000, CostVND: 8_700_000, Stock: 20, Rating: 4.7},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Code, err)
		}
	}

	customers := []customerSeed{
		{Code: domain.GuestCode, Name: "Khách lẻ (Walk-in)", Phone: "---"},
		{Code: "KH001", Name: "Nguyễn Văn A", Phone: "0909123456"},
		{Code: "KH002", Name: "Trần Thị B", Phone: "0912345678"},
		{Code: "KH003", Name: "Phạm Thị C", Phone: "0988777666"},
	}
	for _, c := range customers {
		if err := upsertCustomer(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.Code, err)
		}
	}

	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (code, name, category, price, cost, stock, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (code) DO UPDATE
SET name = EXCLUDED.name,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    cost = EXCLUDED.cost,
    rating = EXCLUDED.rating
`
	_, err := pool.Exec(ctx, q, p.Code, p.Name, p.Category, p.PriceVND, p.CostVND, p.Stock, p.Rating)
	return err
}

func upsertCustomer(ctx context.Context, pool *pgxpool.Pool, c customerSeed) error {
	const q = `
INSERT INTO customers (code, name, phone)
VALUES ($1, $2, $3)
ON CONFLICT (code) DO UPDATE
SET name = EXCLUDED.name,
    phone = EXCLUDED.phone
`
	_, err := pool.Exec(ctx, q, c.Code, c.Name, c.Phone)
	return err
}

// ensureAdmin creates the admin account with the password from
// SEED_ADMIN_PASSWORD. An existing account is left untouched.
func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO users (username, email, role, password_hash)
VALUES ('admin', 'admin@shopadmin.local', 'ADMIN', $1)
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, string(hash))
	return err
}
