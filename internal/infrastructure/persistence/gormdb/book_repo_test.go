package gormdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestBookRepository_CreateAndFind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b := s.seedBook(t, &book.Book{
		Title:  "A Wizard of Earthsea",
		Type:   book.FormatPaperback,
		Pages:  intPtr(183),
		Rating: floatPtr(4.0),
	}, 3, 2, []string{"Ursula K. Le Guin"}, []string{"Fantasy", "Classics"})

	found, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, "A Wizard of Earthsea", found.Title)
	assert.Equal(t, book.FormatPaperback, found.Type)
	assert.Equal(t, intPtr(183), found.Pages)
	assert.Nil(t, found.RatingCount)
	require.Len(t, found.Authors, 1)
	assert.Equal(t, "Ursula K. Le Guin", found.Authors[0].Name)
	require.Len(t, found.Genres, 2)
	assert.Equal(t, "Fantasy", found.Genres[0].Name)
	require.NotNil(t, found.Inventory)
	assert.Equal(t, 3, found.Inventory.Owned)
	assert.Equal(t, 2, found.Inventory.Available)
}

func TestBookRepository_FindByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.books.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_UpdateWritesNulls(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b := s.seedBook(t, &book.Book{Title: "Dune", Pages: intPtr(412), Edition: "1st"}, 1, 1, nil, nil)

	b.Pages = nil
	b.Edition = ""
	require.NoError(t, s.books.Update(ctx, b))

	found, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Pages)
	assert.Empty(t, found.Edition)
}

func TestBookRepository_DeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b := s.seedBook(t, &book.Book{Title: "Dune"}, 1, 1, []string{"Frank Herbert"}, []string{"Science Fiction"})

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.books.Delete(ctx, b.ID)
	})
	require.NoError(t, err)

	_, err = s.books.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	_, err = s.inventories.FindByBookID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrInventoryNotFound)

	var joins int64
	require.NoError(t, s.db.Model(&bookAuthorModel{}).Count(&joins).Error)
	assert.Zero(t, joins)

	// 作者和分类保留
	_, created, err := s.authors.GetOrCreate(ctx, "Frank Herbert")
	require.NoError(t, err)
	assert.False(t, created)

	assert.ErrorIs(t, s.books.Delete(ctx, b.ID), book.ErrBookNotFound)
}

func TestBookRepository_ListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.seedBook(t, &book.Book{Title: "Dune", Pages: intPtr(412), Rating: floatPtr(4.2)}, 1, 1,
		[]string{"Frank Herbert"}, []string{"Science Fiction"})
	s.seedBook(t, &book.Book{Title: "Children of Dune", Pages: intPtr(444), Rating: floatPtr(3.9)}, 1, 1,
		[]string{"Frank Herbert"}, []string{"Science Fiction"})
	s.seedBook(t, &book.Book{Title: "Earthsea", Pages: intPtr(183), Rating: floatPtr(4.0)}, 1, 1,
		[]string{"Ursula K. Le Guin"}, []string{"Fantasy"})

	tests := []struct {
		name    string
		filters map[string]string
		want    []string
	}{
		{"by author", map[string]string{"author__name": "Frank Herbert"}, []string{"Dune", "Children of Dune"}},
		{"by genre", map[string]string{"genre__name": "Fantasy"}, []string{"Earthsea"}},
		{"by pages", map[string]string{"pages": "444"}, []string{"Children of Dune"}},
		{"by rating", map[string]string{"rating": "4.2"}, []string{"Dune"}},
		{"unknown filter ignored", map[string]string{"publisher": "Ace"}, []string{"Dune", "Children of Dune", "Earthsea"}},
		{"no match", map[string]string{"title": "Neuromancer"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, total, err := s.books.List(ctx, book.ListParams{Params: listing.Params{Filters: tt.filters}})
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			var titles []string
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestBookRepository_ListInvalidNumericFilter(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.books.List(context.Background(), book.ListParams{
		Params: listing.Params{Filters: map[string]string{"pages": "many"}},
	})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
}

func TestBookRepository_ListOrderingAndPaging(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"C", "A", "B", "A"} {
		s.seedBook(t, &book.Book{Title: title}, 1, 1, nil, nil)
	}

	books, total, err := s.books.List(ctx, book.ListParams{Params: listing.Params{
		Ordering: []string{"-title", "bogus"},
		PageSize: 3,
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, books, 3)
	assert.Equal(t, "C", books[0].Title)
	assert.Equal(t, "B", books[1].Title)
	assert.Equal(t, "A", books[2].Title)

	page2, _, err := s.books.List(ctx, book.ListParams{Params: listing.Params{
		Ordering: []string{"-title"}, Page: 2, PageSize: 3,
	}})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "A", page2[0].Title)
	assert.Greater(t, page2[0].ID, books[2].ID, "id breaks ties")

	_, _, err = s.books.List(ctx, book.ListParams{Params: listing.Params{Page: 3, PageSize: 3}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPage)
}

func TestBookRepository_ListByAuthorAndGenre(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dune := s.seedBook(t, &book.Book{Title: "Dune"}, 1, 1, []string{"Frank Herbert"}, []string{"Science Fiction", "Classics"})
	s.seedBook(t, &book.Book{Title: "Earthsea"}, 1, 1, []string{"Ursula K. Le Guin"}, []string{"Fantasy", "Classics"})

	herbert, _, err := s.authors.GetOrCreate(ctx, "Frank Herbert")
	require.NoError(t, err)
	classics, _, err := s.genres.GetOrCreate(ctx, "Classics")
	require.NoError(t, err)

	books, total, err := s.books.List(ctx, book.ListParams{AuthorID: herbert.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, dune.ID, books[0].ID)

	_, total, err = s.books.List(ctx, book.ListParams{GenreID: classics.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestBookRepository_GetOrCreate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &book.Book{Title: "Dune", ISBN: "", Pages: nil, Rating: floatPtr(4.2), RatingCount: intPtr(10)}
	created, err := s.books.GetOrCreate(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	again := &book.Book{Title: "Dune", ISBN: "", Pages: nil, Rating: floatPtr(4.2), RatingCount: intPtr(10)}
	created, err = s.books.GetOrCreate(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	different := &book.Book{Title: "Dune", Pages: intPtr(412), Rating: floatPtr(4.2), RatingCount: intPtr(10)}
	created, err = s.books.GetOrCreate(ctx, different)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestBookRepository_AttachIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b := s.seedBook(t, &book.Book{Title: "Dune"}, 1, 1, []string{"Frank Herbert"}, nil)
	a, _, err := s.authors.GetOrCreate(ctx, "Frank Herbert")
	require.NoError(t, err)

	require.NoError(t, s.books.AttachAuthors(ctx, b.ID, []uint{a.ID}))

	found, err := s.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, found.Authors, 1)
}

func TestTxManager_Rollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var id uint
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		b := &book.Book{Title: "Dune"}
		if err := s.books.Create(ctx, b); err != nil {
			return err
		}
		id = b.ID
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NotZero(t, id)

	_, err = s.books.FindByID(ctx, id)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestTxManager_NestedRollsBackToSavepoint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	outer := &book.Book{Title: "Dune"}
	inner := &book.Book{Title: "Dune Messiah"}
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.books.Create(ctx, outer); err != nil {
			return err
		}
		// 内层失败只回滚到Savepoint，外层继续提交
		innerErr := s.tx.Transaction(ctx, func(ctx context.Context) error {
			if err := s.books.Create(ctx, inner); err != nil {
				return err
			}
			return errors.New("boom")
		})
		assert.Error(t, innerErr)
		return nil
	})
	require.NoError(t, err)

	_, err = s.books.FindByID(ctx, outer.ID)
	assert.NoError(t, err)
	_, err = s.books.FindByID(ctx, inner.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
