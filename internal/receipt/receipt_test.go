package receipt

import (
	"strings"
	"testing"
	"time"

	"shopadmin/internal/domain"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:            "o-1",
		Code:          "DH001",
		CustomerName:  "Nguyễn Văn A",
		CustomerPhone: "0909123456",
		Lines: []domain.OrderLine{
			{ProductID: "p-mouse", ProductName: "Chuột Logitech MX Master 3S", UnitPriceVND: 2_800_000, Quantity: 2},
		},
		SubtotalVND:    5_600_000,
		TaxVND:         448_000,
		TaxRatePercent: 8,
		TotalVND:       6_048_000,
		Status:         domain.OrderCompleted,
		CreatedAt:      time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC),
	}
}

func TestRenderContents(t *testing.T) {
	out := Render(DefaultInfo, testOrder())

	for _, want := range []string{
		"SHOP ADMIN",
		"HÓA ĐƠN THANH TOÁN",
		"DH001",
		"28/08/2026 14:30",
		"Nguyễn Văn A",
		"0909123456",
		"Chuột Logitech MX Master 3S",
		"2 x 2.800.000đ",
		"5.600.000đ",
		"VAT (8%):",
		"448.000đ",
		"6.048.000đ",
		"Cảm ơn quý khách!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ticket missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	o := testOrder()
	first := Render(DefaultInfo, o)
	second := Render(DefaultInfo, o)
	if first != second {
		t.Fatal("rendering the same order twice must produce identical tickets")
	}
}

func TestRenderSkipsEmptyPhone(t *testing.T) {
	o := testOrder()
	o.CustomerPhone = ""
	out := Render(DefaultInfo, o)
	if strings.Contains(out, "SĐT:") {
		t.Fatal("phone row should be omitted when empty")
	}
}

func TestRenderDefaultsSeller(t *testing.T) {
	out := Render(Info{}, testOrder())
	if !strings.Contains(out, DefaultInfo.Name) {
		t.Fatal("empty seller info should fall back to the default header")
	}
}
