//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/application/loader"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/events"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// repositorySet 数据库连接、仓储和事务管理器
var repositorySet = wire.NewSet(
	gormdb.NewDB,
	gormdb.NewBookRepository,
	gormdb.NewInventoryRepository,
	gormdb.NewAuthorRepository,
	gormdb.NewGenreRepository,
	gormdb.NewTxManager,
	wire.Bind(new(book.TxManager), new(*gormdb.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	author.NewService,
	genre.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	events.NewPublisher,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewQueryBooksUseCase,
	appauthor.NewAuthorUseCase,
	appgenre.NewGenreUseCase,
)

// handlerSet HTTP处理器和路由
var handlerSet = wire.NewSet(
	handler.NewPager,
	handler.NewBookHandler,
	handler.NewInventoryHandler,
	handler.NewAuthorHandler,
	handler.NewGenreHandler,
	router.New,
)

// InitializeServer 组装HTTP服务
func InitializeServer(cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(repositorySet, domainSet, applicationSet, handlerSet)
	return nil, nil, nil
}

// InitializeLoader 组装批量导入服务(不需要事件和HTTP)
func InitializeLoader(cfg *config.Config, log *zap.Logger) (*loader.Service, func(), error) {
	wire.Build(repositorySet, loader.NewService)
	return nil, nil, nil
}
