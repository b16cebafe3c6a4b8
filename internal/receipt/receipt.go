// Package receipt renders a committed order into the monospace ticket
// the terminal prints. Rendering is a pure projection: the same order
// always produces the same ticket.
package receipt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shopadmin/internal/domain"
	"shopadmin/internal/money"
)

const width = 42

// Info identifies the seller on the ticket header.
type Info struct {
	Name    string
	Address string
	Phone   string
}

// DefaultInfo is used when no seller details are configured.
var DefaultInfo = Info{
	Name:    "SHOP ADMIN",
	Address: "123 Nguyễn Huệ, Q.1, TP.HCM",
	Phone:   "1900 1234",
}

// Render produces the ticket text for a committed order.
func Render(info Info, o *domain.Order) string {
	if info.Name == "" {
		info = DefaultInfo
	}

	var b strings.Builder
	line := strings.Repeat("=", width)
	thin := strings.Repeat("-", width)

	b.WriteString(center(info.Name) + "\n")
	if info.Address != "" {
		b.WriteString(center(info.Address) + "\n")
	}
	if info.Phone != "" {
		b.WriteString(center("ĐT: "+info.Phone) + "\n")
	}
	b.WriteString(line + "\n")
	b.WriteString(center("HÓA ĐƠN THANH TOÁN") + "\n")
	b.WriteString(line + "\n")

	b.WriteString(row("Mã HĐ:", o.Code))
	b.WriteString(row("Ngày:", o.CreatedAt.Format("02/01/2006 15:04")))
	b.WriteString(row("Khách hàng:", o.CustomerName))
	if o.CustomerPhone != "" {
		b.WriteString(row("SĐT:", o.CustomerPhone))
	}
	b.WriteString(thin + "\n")

	for _, item := range o.Lines {
		b.WriteString(item.ProductName + "\n")
		qty := fmt.Sprintf("  %d x %s", item.Quantity, money.Format(item.UnitPriceVND))
		amount := money.Format(item.UnitPriceVND * int64(item.Quantity))
		b.WriteString(row(qty, amount))
	}
	b.WriteString(thin + "\n")

	b.WriteString(row("Tạm tính:", money.Format(o.SubtotalVND)))
	b.WriteString(row(fmt.Sprintf("VAT (%d%%):", o.TaxRatePercent), money.Format(o.TaxVND)))
	b.WriteString(row("TỔNG CỘNG:", money.Format(o.TotalVND)))
	b.WriteString(line + "\n")
	b.WriteString(center("Cảm ơn quý khách!") + "\n")
	b.WriteString(center("Hẹn gặp lại") + "\n")
	return b.String()
}

// center pads with spaces by rune count; the ticket is rendered in a
// monospace font so runes, not bytes, decide alignment.
func center(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}

func row(label, value string) string {
	n := utf8.RuneCountInString(label) + utf8.RuneCountInString(value)
	gap := width - n
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value + "\n"
}
