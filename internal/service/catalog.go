package service

import (
	"context"
	"fmt"
	"time"

	"github.com/courtneystore/catalog-api/internal/events"
	"github.com/courtneystore/catalog-api/internal/logging"
	"github.com/courtneystore/catalog-api/internal/models"
	"github.com/courtneystore/catalog-api/internal/repo"
	"github.com/courtneystore/catalog-api/internal/transport"
)

type CatalogService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "error", err)
	}
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	prod := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}

	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	prod, err := s.Repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		// Nothing matched; the route reports an empty success.
		return nil, nil
	}

	s.publish(ctx, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return nil
}
