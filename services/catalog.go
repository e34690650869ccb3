package services

import (
	"context"
	"sort"

	"pos-service/models"
	"pos-service/store"
	"pos-service/utils"
)

// CatalogService expresses product CRUD over a store whose only mutation
// primitive is a full-table replace: every write is load-all, change one
// record in memory, save-all. Concurrent writers can lose updates; the
// store contract accepts that.
type CatalogService struct {
	products store.ProductStore
}

func NewCatalogService(products store.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.LoadProducts(ctx)
}

// ActiveByCategory returns active products grouped for the storefront,
// with category names sorted for stable rendering.
func (s *CatalogService) ActiveByCategory(ctx context.Context) (map[string][]models.Product, []string, error) {
	items, err := s.products.LoadProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	grouped := make(map[string][]models.Product)
	for _, p := range items {
		if !p.Active {
			continue
		}
		cat := p.Category
		if cat == "" {
			cat = models.DefaultCategory
		}
		grouped[cat] = append(grouped[cat], p)
	}
	categories := make([]string, 0, len(grouped))
	for cat := range grouped {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return grouped, categories, nil
}

func (s *CatalogService) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	items, err := s.products.LoadProducts(ctx)
	if err != nil {
		return models.Product{}, err
	}
	p := models.Product{
		ID:       utils.NewID(),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Active:   true,
	}
	if p.Category == "" {
		p.Category = models.DefaultCategory
	}
	items = append(items, p)
	if err := s.products.SaveProducts(ctx, items); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Toggle flips the active flag of one product. An unknown id is a no-op.
func (s *CatalogService) Toggle(ctx context.Context, id string) error {
	items, err := s.products.LoadProducts(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Active = !items[i].Active
			break
		}
	}
	return s.products.SaveProducts(ctx, items)
}

// Update overwrites name, price, category and image of one product. The
// id and active flag are untouched. An unknown id is a no-op.
func (s *CatalogService) Update(ctx context.Context, id string, req models.UpdateProductRequest) error {
	items, err := s.products.LoadProducts(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Name = req.Name
			items[i].Price = req.Price
			items[i].Category = req.Category
			items[i].Image = req.Image
			break
		}
	}
	return s.products.SaveProducts(ctx, items)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	items, err := s.products.LoadProducts(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.products.SaveProducts(ctx, kept)
}
