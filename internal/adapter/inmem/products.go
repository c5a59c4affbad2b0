package inmem

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/niksmo/checkout/internal/core/domain"
	"github.com/niksmo/checkout/internal/core/port"
)

var ErrNotFound = errors.New("product not found")

var _ port.ProductStore = (*ProductStore)(nil)

// ProductStore is the in-memory catalog, keyed by product ID. All
// stock mutations go through ReduceStock under the write lock, so
// readers never observe a torn update. The lock does not make a whole
// checkout atomic against concurrent checkouts.
type ProductStore struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{byID: make(map[uuid.UUID]domain.Product)}
}

func (s *ProductStore) SaveProduct(ctx context.Context, p domain.Product) error {
	const op = "ProductStore.SaveProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if p.ProductID == uuid.Nil {
		return fmt.Errorf("%s: product id is empty", op)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ProductID] = p
	return nil
}

func (s *ProductStore) ProductByID(
	ctx context.Context, id uuid.UUID,
) (domain.Product, error) {
	const op = "ProductStore.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %s: %w", op, id, ErrNotFound)
	}
	return p, nil
}

// ReduceStock decrements the product's stock, re-checking availability
// under the write lock.
func (s *ProductStore) ReduceStock(
	ctx context.Context, id uuid.UUID, amount int,
) error {
	const op = "ProductStore.ReduceStock"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %s: %w", op, id, ErrNotFound)
	}
	if err := p.ReduceStock(amount); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.byID[id] = p
	return nil
}

// Products returns the catalog sorted by product name.
func (s *ProductStore) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductStore.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ps := make([]domain.Product, 0, len(s.byID))
	for _, p := range s.byID {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps, nil
}
