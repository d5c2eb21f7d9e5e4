package entities

import (
	"cmp"
	"slices"
	"strings"
)

// ParseSaleOrder maps a query value to a known order, falling back to newest first.
func ParseSaleOrder(raw string) SaleOrder {
	switch order := SaleOrder(strings.ToLower(strings.TrimSpace(raw))); order {
	case SaleOrderDateAsc, SaleOrderDateDesc,
		SaleOrderAmountAsc, SaleOrderAmountDesc,
		SaleOrderSellerAsc, SaleOrderSellerDesc:
		return order
	}
	return SaleOrderDateDesc
}

// SortSales orders sales in place. Seller ordering expects Seller to be loaded;
// sales without one sort as an empty name.
func SortSales(sales []Sale, order SaleOrder) {
	var compare func(a, b Sale) int
	switch order {
	case SaleOrderDateAsc:
		compare = func(a, b Sale) int { return a.Date.Compare(b.Date) }
	case SaleOrderAmountAsc:
		compare = func(a, b Sale) int { return cmp.Compare(a.Amount, b.Amount) }
	case SaleOrderAmountDesc:
		compare = func(a, b Sale) int { return cmp.Compare(b.Amount, a.Amount) }
	case SaleOrderSellerAsc:
		compare = func(a, b Sale) int { return strings.Compare(sellerName(a), sellerName(b)) }
	case SaleOrderSellerDesc:
		compare = func(a, b Sale) int { return strings.Compare(sellerName(b), sellerName(a)) }
	default:
		compare = func(a, b Sale) int { return b.Date.Compare(a.Date) }
	}
	slices.SortStableFunc(sales, compare)
}

func sellerName(s Sale) string {
	if s.Seller == nil {
		return ""
	}
	return s.Seller.Name
}
