package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/tracing"
)

// UpdateBookUseCase 更新图书用例(PUT全量 / PATCH部分)
type UpdateBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	logger      *zap.Logger
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(bookService book.Service, events book.EventPublisher, logger *zap.Logger) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		events:      events,
		logger:      logger,
	}
}

// UpdateBookRequest 更新请求
type UpdateBookRequest struct {
	ID      uint
	Payload book.Payload
	Partial bool // true为PATCH语义
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (b *book.Book, err error) {
	op, spanName := opUpdate, "UpdateBook"
	if req.Partial {
		op, spanName = opPartialUpdate, "PartialUpdateBook"
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, spanName)
	defer func() {
		recordWrite(op, err)
		tracing.End(span, err)
	}()

	if req.Partial {
		b, err = uc.bookService.PartialUpdate(ctx, req.ID, req.Payload)
	} else {
		b, err = uc.bookService.Update(ctx, req.ID, req.Payload)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("图书已更新", zap.Uint("book_id", b.ID), zap.String("operation", op))
	publish(ctx, uc.events, uc.logger, book.NewEvent(book.EventUpdated, b))
	return b, nil
}
