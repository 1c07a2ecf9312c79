package services

import (
	"context"
	"sync"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/remote"
	"sparehub/internal/store"
)

// OrderSubmitter is the slice of the remote client the cart needs.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, items []domain.CartLine) (remote.OrderResult, error)
}

type CartService struct {
	Store  *store.Store
	Cat    *catalog.Catalog
	Orders OrderSubmitter

	mu       sync.Mutex
	inflight map[string]bool // profiles with an outstanding order submission
}

func NewCartService(s *store.Store, cat *catalog.Catalog, orders OrderSubmitter) *CartService {
	return &CartService{Store: s, Cat: cat, Orders: orders, inflight: make(map[string]bool)}
}

func (s *CartService) lines(profileID string) []domain.CartLine {
	lines := []domain.CartLine{}
	s.Store.Get(profileID, store.KeyCart, &lines)
	return lines
}

// Add puts one more unit of sku in the cart. A line already at the stock
// ceiling is rejected outright; SetQuantity is the lenient path.
func (s *CartService) Add(profileID, sku string) error {
	p, ok := s.Cat.BySKU(sku)
	if !ok {
		return domain.ErrUnknownProduct
	}

	lines := s.lines(profileID)
	found := false
	for i := range lines {
		if lines[i].SKU != sku {
			continue
		}
		if lines[i].Qty >= p.Stock {
			return &domain.StockExceededError{SKU: sku, Name: p.Name, Stock: p.Stock}
		}
		lines[i].Qty++
		found = true
		break
	}
	if !found {
		lines = append(lines, domain.CartLine{SKU: sku, Qty: 1})
	}
	return s.Store.Set(profileID, store.KeyCart, lines)
}

func (s *CartService) Remove(profileID, sku string) error {
	lines := s.lines(profileID)
	kept := lines[:0]
	for _, l := range lines {
		if l.SKU != sku {
			kept = append(kept, l)
		}
	}
	return s.Store.Set(profileID, store.KeyCart, kept)
}

// SetQuantity clamps the request to at least 1 and at most the product's
// stock. A request above stock still mutates, capped, and reports the ceiling
// through StockExceededError so the UI can say so. Best-effort correct, not a
// hard rejection.
func (s *CartService) SetQuantity(profileID, sku string, qty int) (int, error) {
	p, ok := s.Cat.BySKU(sku)
	if !ok {
		return 0, domain.ErrUnknownProduct
	}
	if qty < 1 {
		qty = 1
	}
	var capped error
	if qty > p.Stock {
		qty = p.Stock
		capped = &domain.StockExceededError{SKU: sku, Name: p.Name, Stock: p.Stock}
	}

	lines := s.lines(profileID)
	for i := range lines {
		if lines[i].SKU == sku {
			lines[i].Qty = qty
			if err := s.Store.Set(profileID, store.KeyCart, lines); err != nil {
				return qty, err
			}
			return qty, capped
		}
	}
	return 0, &domain.ValidationError{Field: "sku", Msg: "sku not in cart"}
}

func (s *CartService) Clear(profileID string) error {
	return s.Store.Set(profileID, store.KeyCart, []domain.CartLine{})
}

// ItemCount sums quantities across all lines, stale ones included. It feeds
// the header badge, not checkout.
func (s *CartService) ItemCount(profileID string) int {
	n := 0
	for _, l := range s.lines(profileID) {
		n += l.Qty
	}
	return n
}

type CartItemView struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

type CartView struct {
	Items    []CartItemView `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Count    int            `json:"count"`
}

// View resolves every line against the canonical catalog. Lines whose SKU no
// longer resolves are pruned and the pruned cart re-persisted; they never
// contribute to the subtotal and never fail the read.
func (s *CartService) View(profileID string) (CartView, error) {
	lines := s.lines(profileID)
	view := CartView{Items: []CartItemView{}}
	kept := []domain.CartLine{}

	for _, l := range lines {
		p, ok := s.Cat.BySKU(l.SKU)
		if !ok {
			continue
		}
		kept = append(kept, l)
		line := p.Price * float64(l.Qty)
		view.Items = append(view.Items, CartItemView{
			SKU: p.SKU, Name: p.Name, Brand: p.Brand, Category: p.Category,
			Price: p.Price, Qty: l.Qty, LineTotal: line,
		})
		view.Subtotal += line
		view.Count += l.Qty
	}

	if len(kept) != len(lines) {
		if err := s.Store.Set(profileID, store.KeyCart, kept); err != nil {
			return view, err
		}
	}
	return view, nil
}

func (s *CartService) Subtotal(profileID string) float64 {
	v, _ := s.View(profileID)
	return v.Subtotal
}

// Submit posts the cart to the order endpoint. Only one submission per
// profile may be outstanding; there is no server-side idempotency key, so
// double-submit prevention is this client-side guard, best effort. On success
// the cart is cleared; an unauthenticated rejection keeps the cart intact and
// surfaces the redirect target.
func (s *CartService) Submit(ctx context.Context, profileID string) (remote.OrderResult, error) {
	s.mu.Lock()
	if s.inflight[profileID] {
		s.mu.Unlock()
		return remote.OrderResult{}, domain.ErrSubmitPending
	}
	s.inflight[profileID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, profileID)
		s.mu.Unlock()
	}()

	view, err := s.View(profileID)
	if err != nil {
		return remote.OrderResult{}, err
	}
	if len(view.Items) == 0 {
		return remote.OrderResult{}, &domain.ValidationError{Field: "cart", Msg: "cart is empty"}
	}

	items := make([]domain.CartLine, len(view.Items))
	for i, it := range view.Items {
		items[i] = domain.CartLine{SKU: it.SKU, Qty: it.Qty}
	}

	res, err := s.Orders.SubmitOrder(ctx, items)
	if err != nil {
		return remote.OrderResult{}, err
	}
	if err := s.Clear(profileID); err != nil {
		return res, err
	}
	return res, nil
}
