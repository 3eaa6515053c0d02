package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var authorCollection = collection{
	table:    "authors",
	filters:  map[string]filterSpec{"name": {column: "name"}},
	ordering: map[string]string{"id": "id", "name": "name"},
}

// authorRepository 作者仓储实现(GORM)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create author")
	}
	a.ID = model.ID
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "find author")
	}
	return &author.Author{ID: model.ID, Name: model.Name}, nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	err := dbFrom(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", a.ID).Update("name", a.Name).Error
	if err != nil {
		return apperrors.Wrap(err, "update author")
	}
	return nil
}

// Delete 删除作者及其关联行
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&bookAuthorModel{}).Error; err != nil {
			return apperrors.Wrap(err, "detach books")
		}
		result := tx.Delete(&AuthorModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "delete author")
		}
		if result.RowsAffected == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
}

func (r *authorRepository) List(ctx context.Context, params listing.Params) ([]*author.Author, int64, error) {
	return r.list(dbFrom(ctx, r.db).Model(&AuthorModel{}), params)
}

// ListByGenre IN子查询天然去重
func (r *authorRepository) ListByGenre(ctx context.Context, genreID uint, params listing.Params) ([]*author.Author, int64, error) {
	db := dbFrom(ctx, r.db)
	sub := subquery(db).Model(&bookAuthorModel{}).
		Select("book_authors.author_id").
		Joins("JOIN book_genres ON book_genres.book_id = book_authors.book_id").
		Where("book_genres.genre_id = ?", genreID)

	// 嵌套浏览固定按id排序
	params.Ordering = nil
	return r.list(db.Model(&AuthorModel{}).Where("authors.id IN (?)", sub), params)
}

func (r *authorRepository) GetOrCreate(ctx context.Context, name string) (*author.Author, bool, error) {
	db := dbFrom(ctx, r.db)

	var model AuthorModel
	err := db.Where("name = ?", name).Order("id").First(&model).Error
	if err == nil {
		return &author.Author{ID: model.ID, Name: model.Name}, false, nil
	}
	if !isNotFound(err) {
		return nil, false, apperrors.Wrap(err, "find author")
	}

	a := &author.Author{Name: name}
	if err := r.Create(ctx, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (r *authorRepository) list(base *gorm.DB, params listing.Params) ([]*author.Author, int64, error) {
	models, total, err := paginate[AuthorModel](base, authorCollection, params, nil)
	if err != nil {
		return nil, 0, err
	}
	authors := make([]*author.Author, len(models))
	for i, m := range models {
		authors[i] = &author.Author{ID: m.ID, Name: m.Name}
	}
	return authors, total, nil
}
