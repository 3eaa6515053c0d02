package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/tracing"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	logger      *zap.Logger
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(bookService book.Service, events book.EventPublisher, logger *zap.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		events:      events,
		logger:      logger,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteBook")
	defer func() {
		recordWrite(opDelete, err)
		tracing.End(span, err)
	}()

	if err = uc.bookService.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("图书已删除", zap.Uint("book_id", id))
	publish(ctx, uc.events, uc.logger, book.Event{Type: book.EventDeleted, BookID: id})
	return nil
}
