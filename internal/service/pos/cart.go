package pos

import (
	"fmt"

	"shopadmin/internal/domain"
)

// cart is the mutable line list of one terminal session. Lines keep the
// product snapshot taken when first added; live stock is only consulted
// again when merging more quantity onto an existing line.
type cart struct {
	lines []domain.CartLine
}

func (c *cart) find(productID string) *domain.CartLine {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return &c.lines[i]
		}
	}
	return nil
}

// add puts one unit of the product into the cart. A product with no
// stock is rejected outright; merging onto an existing line is capped
// at the stock snapshot the line carries.
func (c *cart) add(p *domain.Product) error {
	if line := c.find(p.ID); line != nil {
		if line.Quantity+1 > line.StockAtAdd {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, line.Name)
		}
		line.Quantity++
		return nil
	}
	if p.Stock <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrOutOfStock, p.Name)
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID:  p.ID,
		Name:       p.Name,
		PriceVND:   p.PriceVND,
		ImageURL:   p.ImageURL,
		StockAtAdd: p.Stock,
		Quantity:   1,
	})
	return nil
}

// adjust moves a line's quantity by delta against its stock snapshot.
// Anything below one is clamped to one; removing a line is a separate,
// explicit action.
func (c *cart) adjust(productID string, delta int) error {
	line := c.find(productID)
	if line == nil {
		return domain.ErrNotFound
	}
	qty := line.Quantity + delta
	if qty > line.StockAtAdd {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, line.Name)
	}
	if qty < 1 {
		qty = 1
	}
	line.Quantity = qty
	return nil
}

func (c *cart) remove(productID string) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (c *cart) clear() {
	c.lines = nil
}

func (c *cart) empty() bool {
	return len(c.lines) == 0
}

func (c *cart) subtotal() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.PriceVND * int64(line.Quantity)
	}
	return sum
}

func (c *cart) orderLines() []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, domain.OrderLine{
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			UnitPriceVND: line.PriceVND,
			Quantity:     line.Quantity,
		})
	}
	return out
}
