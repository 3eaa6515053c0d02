package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type mockBookService struct{ mock.Mock }

func (m *mockBookService) Create(ctx context.Context, p book.Payload) (*book.Book, error) {
	args := m.Called(ctx, p)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) Update(ctx context.Context, id uint, p book.Payload) (*book.Book, error) {
	args := m.Called(ctx, id, p)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) PartialUpdate(ctx context.Context, id uint, p book.Payload) (*book.Book, error) {
	args := m.Called(ctx, id, p)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookService) Get(ctx context.Context, id uint) (*book.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	args := m.Called(ctx, params)
	books, _ := args.Get(0).([]*book.Book)
	return books, args.Get(1).(int64), args.Error(2)
}

func (m *mockBookService) GetInventory(ctx context.Context, bookID uint) (*book.Inventory, error) {
	args := m.Called(ctx, bookID)
	inv, _ := args.Get(0).(*book.Inventory)
	return inv, args.Error(1)
}

func (m *mockBookService) ListInventory(ctx context.Context, params listing.Params) ([]*book.Inventory, int64, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]*book.Inventory)
	return items, args.Get(1).(int64), args.Error(2)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event book.Event) error {
	return m.Called(ctx, event).Error(0)
}

func sampleBook() *book.Book {
	return &book.Book{
		ID:        7,
		Title:     "Dune",
		Inventory: &book.Inventory{ID: 1, BookID: 7, Owned: 3, Available: 2},
	}
}

func TestCreateBook_PublishesAfterSuccess(t *testing.T) {
	svc := new(mockBookService)
	pub := new(mockPublisher)
	payload := book.Payload{"title": "Dune"}

	svc.On("Create", mock.Anything, payload).Return(sampleBook(), nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e book.Event) bool {
		return e.Type == book.EventCreated && e.BookID == 7 && *e.Owned == 3 && *e.Available == 2
	})).Return(nil)

	uc := NewCreateBookUseCase(svc, pub, zap.NewNop())
	b, err := uc.Execute(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)
	pub.AssertExpectations(t)
}

func TestCreateBook_FailureSkipsEvent(t *testing.T) {
	svc := new(mockBookService)
	pub := new(mockPublisher)

	svc.On("Create", mock.Anything, mock.Anything).Return(nil, book.ErrMissingInventory)

	uc := NewCreateBookUseCase(svc, pub, zap.NewNop())
	_, err := uc.Execute(context.Background(), book.Payload{})

	assert.ErrorIs(t, err, book.ErrMissingInventory)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateBook_PublishErrorIsIgnored(t *testing.T) {
	svc := new(mockBookService)
	pub := new(mockPublisher)

	svc.On("Create", mock.Anything, mock.Anything).Return(sampleBook(), nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateBookUseCase(svc, pub, zap.NewNop())
	b, err := uc.Execute(context.Background(), book.Payload{})

	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestUpdateBook_RoutesByMode(t *testing.T) {
	payload := book.Payload{"title": "Dune Messiah"}

	t.Run("全量更新", func(t *testing.T) {
		svc := new(mockBookService)
		pub := new(mockPublisher)
		svc.On("Update", mock.Anything, uint(7), payload).Return(sampleBook(), nil)
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(e book.Event) bool {
			return e.Type == book.EventUpdated
		})).Return(nil)

		uc := NewUpdateBookUseCase(svc, pub, zap.NewNop())
		_, err := uc.Execute(context.Background(), UpdateBookRequest{ID: 7, Payload: payload})

		require.NoError(t, err)
		svc.AssertNotCalled(t, "PartialUpdate", mock.Anything, mock.Anything, mock.Anything)
		pub.AssertExpectations(t)
	})

	t.Run("部分更新", func(t *testing.T) {
		svc := new(mockBookService)
		pub := new(mockPublisher)
		svc.On("PartialUpdate", mock.Anything, uint(7), payload).Return(sampleBook(), nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

		uc := NewUpdateBookUseCase(svc, pub, zap.NewNop())
		_, err := uc.Execute(context.Background(), UpdateBookRequest{ID: 7, Payload: payload, Partial: true})

		require.NoError(t, err)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("库存不合法", func(t *testing.T) {
		svc := new(mockBookService)
		pub := new(mockPublisher)
		svc.On("PartialUpdate", mock.Anything, uint(7), mock.Anything).Return(nil, book.ErrInvalidInventory)

		uc := NewUpdateBookUseCase(svc, pub, zap.NewNop())
		_, err := uc.Execute(context.Background(), UpdateBookRequest{ID: 7, Partial: true})

		assert.ErrorIs(t, err, book.ErrInvalidInventory)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestDeleteBook(t *testing.T) {
	svc := new(mockBookService)
	pub := new(mockPublisher)

	svc.On("Delete", mock.Anything, uint(7)).Return(nil)
	svc.On("Delete", mock.Anything, uint(8)).Return(book.ErrBookNotFound)
	pub.On("Publish", mock.Anything, book.Event{Type: book.EventDeleted, BookID: 7}).Return(nil)

	uc := NewDeleteBookUseCase(svc, pub, zap.NewNop())

	require.NoError(t, uc.Execute(context.Background(), 7))
	assert.ErrorIs(t, uc.Execute(context.Background(), 8), book.ErrBookNotFound)
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestQueryBooks(t *testing.T) {
	svc := new(mockBookService)
	params := book.ListParams{Params: listing.Params{Page: 1, PageSize: 20}}

	svc.On("List", mock.Anything, params).Return([]*book.Book{sampleBook()}, int64(1), nil)
	svc.On("ListInventory", mock.Anything, params.Params).Return(nil, int64(0), apperrors.ErrInvalidPage)

	uc := NewQueryBooksUseCase(svc)

	page, err := uc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Books, 1)

	_, err = uc.ListInventory(context.Background(), params.Params)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPage)
}
