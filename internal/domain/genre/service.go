package genre

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Service 分类领域服务接口
type Service interface {
	Create(ctx context.Context, name string) (*Genre, error)
	Get(ctx context.Context, id uint) (*Genre, error)
	Rename(ctx context.Context, id uint, name string) (*Genre, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params listing.Params) ([]*Genre, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, params listing.Params) ([]*Genre, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建分类
// 业务规则：名称唯一(先查一次给出明确错误，并发写入时由唯一索引兜底)
func (s *service) Create(ctx context.Context, name string) (*Genre, error) {
	g, err := NewGenre(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Rename(ctx context.Context, id uint, name string) (*Genre, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, id); err != nil {
		return nil, err
	}
	g.Name = name
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, params listing.Params) ([]*Genre, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint, params listing.Params) ([]*Genre, int64, error) {
	return s.repo.ListByAuthor(ctx, authorID, params)
}

// ensureNameFree 名称被其他分类占用时返回ErrGenreDuplicate
func (s *service) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, ErrGenreNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ErrGenreDuplicate
	}
	return nil
}
