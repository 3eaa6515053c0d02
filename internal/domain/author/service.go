package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Service 作者领域服务接口
type Service interface {
	Create(ctx context.Context, name string) (*Author, error)
	Get(ctx context.Context, id uint) (*Author, error)
	Rename(ctx context.Context, id uint, name string) (*Author, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params listing.Params) ([]*Author, int64, error)
	ListByGenre(ctx context.Context, genreID uint, params listing.Params) ([]*Author, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Author, error) {
	a, err := NewAuthor(name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Rename(ctx context.Context, id uint, name string) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.Rename(name); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, params listing.Params) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}

// ListByGenre 分类不存在时由调用方先行校验
func (s *service) ListByGenre(ctx context.Context, genreID uint, params listing.Params) ([]*Author, int64, error) {
	return s.repo.ListByGenre(ctx, genreID, params)
}
