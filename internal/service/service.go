// internal/service/service.go
package service

import (
	"context"

	"demo/ordertags/internal/model"
	"demo/ordertags/internal/store"
)

type Service struct {
	repo store.Repository
}

func New(repo store.Repository) *Service { return &Service{repo: repo} }

// Overview returns the legacy tag listing together with the aggregated orders.
func (s *Service) Overview(ctx context.Context) (model.Overview, error) {
	values, err := s.repo.ListTagValues(ctx)
	if err != nil {
		return model.Overview{}, err
	}
	orders, err := s.repo.ListOrdersWithTags(ctx)
	if err != nil {
		return model.Overview{}, err
	}
	return model.Overview{TagValues: values, Orders: orders}, nil
}

func (s *Service) Tags(ctx context.Context) ([]model.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *Service) CreateTag(ctx context.Context, value string) (model.Tag, error) {
	return s.repo.CreateTag(ctx, value)
}

// AssociateTag returns store.ErrOrderNotFound or store.ErrTagNotFound when either side is missing.
func (s *Service) AssociateTag(ctx context.Context, orderID, tagID int64) error {
	return s.repo.AssociateTag(ctx, orderID, tagID)
}

func (s *Service) IngestOrder(ctx context.Context, o model.Order) (int64, error) {
	return s.repo.InsertOrder(ctx, o)
}
