package book

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

const tracerName = "library/application/book"

// 写操作名称(metrics标签)
const (
	opCreate        = "create"
	opUpdate        = "update"
	opPartialUpdate = "partial_update"
	opDelete        = "delete"
)

// recordWrite 记录写操作结果，失败时以错误码作为result
func recordWrite(operation string, err error) {
	result := "ok"
	if err != nil {
		result = strconv.Itoa(apperrors.GetAppError(err).Code)
	}
	metrics.RecordBookWrite(operation, result)
}

// publish 事务提交后发布事件
// 发布失败只记录日志，不影响请求结果
func publish(ctx context.Context, events book.EventPublisher, log *zap.Logger, event book.Event) {
	if err := events.Publish(ctx, event); err != nil {
		log.Warn("发布图书事件失败",
			zap.String("event", event.Type),
			zap.Uint("book_id", event.BookID),
			zap.Error(err),
		)
	}
}
