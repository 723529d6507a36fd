// AngelaMos | 2026
// service.go

package product

import (
	"context"

	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
)

const resource = "product"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	product := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	metrics.RecordWrite(resource, "create")
	return product, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateProductRequest,
) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description.Set {
		product.Description = req.Description.Ptr()
	}
	if price := req.Price.Ptr(); price != nil {
		product.Price = *price
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	metrics.RecordWrite(resource, "update")
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWrite(resource, "delete")
	return nil
}
