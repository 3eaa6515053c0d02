package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/tracing"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 校验和写入由领域服务完成(库存必填、不变式、同一事务)
// 2. 应用层负责链路追踪、指标和事务提交后的事件发布
type CreateBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	logger      *zap.Logger
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, events book.EventPublisher, logger *zap.Logger) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		events:      events,
		logger:      logger,
	}
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, payload book.Payload) (b *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateBook")
	defer func() {
		recordWrite(opCreate, err)
		tracing.End(span, err)
	}()

	b, err = uc.bookService.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("图书已创建", zap.Uint("book_id", b.ID), zap.String("title", b.Title))
	publish(ctx, uc.events, uc.logger, book.NewEvent(book.EventCreated, b))
	return b, nil
}
