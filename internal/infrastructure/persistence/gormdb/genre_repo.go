package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var genreCollection = collection{
	table:    "genres",
	filters:  map[string]filterSpec{"name": {column: "name"}},
	ordering: map[string]string{"id": "id", "name": "name"},
}

// genreRepository 分类仓储实现(GORM)
// 名称唯一索引冲突转换为ErrGenreDuplicate
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{Name: g.Name}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrGenreDuplicate
		}
		return apperrors.Wrap(err, "create genre")
	}
	g.ID = model.ID
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	var model GenreModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "find genre")
	}
	return &genre.Genre{ID: model.ID, Name: model.Name}, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	var model GenreModel
	if err := dbFrom(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "find genre")
	}
	return &genre.Genre{ID: model.ID, Name: model.Name}, nil
}

func (r *genreRepository) Update(ctx context.Context, g *genre.Genre) error {
	err := dbFrom(ctx, r.db).Model(&GenreModel{}).Where("id = ?", g.ID).Update("name", g.Name).Error
	if err != nil {
		if isDuplicateError(err) {
			return genre.ErrGenreDuplicate
		}
		return apperrors.Wrap(err, "update genre")
	}
	return nil
}

// Delete 删除分类及其关联行
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&bookGenreModel{}).Error; err != nil {
			return apperrors.Wrap(err, "detach books")
		}
		result := tx.Delete(&GenreModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "delete genre")
		}
		if result.RowsAffected == 0 {
			return genre.ErrGenreNotFound
		}
		return nil
	})
}

func (r *genreRepository) List(ctx context.Context, params listing.Params) ([]*genre.Genre, int64, error) {
	return r.list(dbFrom(ctx, r.db).Model(&GenreModel{}), params)
}

// ListByAuthor IN子查询天然去重
func (r *genreRepository) ListByAuthor(ctx context.Context, authorID uint, params listing.Params) ([]*genre.Genre, int64, error) {
	db := dbFrom(ctx, r.db)
	sub := subquery(db).Model(&bookGenreModel{}).
		Select("book_genres.genre_id").
		Joins("JOIN book_authors ON book_authors.book_id = book_genres.book_id").
		Where("book_authors.author_id = ?", authorID)

	params.Ordering = nil
	return r.list(db.Model(&GenreModel{}).Where("genres.id IN (?)", sub), params)
}

// GetOrCreate 按名称查找，不存在则创建
func (r *genreRepository) GetOrCreate(ctx context.Context, name string) (*genre.Genre, bool, error) {
	existing, err := r.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, genre.ErrGenreNotFound) {
		return nil, false, err
	}

	g := &genre.Genre{Name: name}
	if err := r.Create(ctx, g); err != nil {
		return nil, false, err
	}
	return g, true, nil
}

func (r *genreRepository) list(base *gorm.DB, params listing.Params) ([]*genre.Genre, int64, error) {
	models, total, err := paginate[GenreModel](base, genreCollection, params, nil)
	if err != nil {
		return nil, 0, err
	}
	genres := make([]*genre.Genre, len(models))
	for i, m := range models {
		genres[i] = &genre.Genre{ID: m.ID, Name: m.Name}
	}
	return genres, total, nil
}
