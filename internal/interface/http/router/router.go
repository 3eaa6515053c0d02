// Package router 组装gin引擎：中间件、系统路由和目录API路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/library/docs" // swagger文档注册

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/response"
)

// New 创建并配置gin引擎
// 路由都以"/"结尾，不带斜杠的请求由gin重定向
func New(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	inventoryHandler *handler.InventoryHandler,
	authorHandler *handler.AuthorHandler,
	genreHandler *handler.GenreHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.Tracing(),
	)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.Server.RateLimit.RPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.Server.RateLimit).Handler())
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档：http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	books := r.Group("/books")
	{
		books.GET("/", bookHandler.ListBooks)
		books.POST("/", bookHandler.CreateBook)
		books.GET("/:id/", bookHandler.GetBook)
		books.PUT("/:id/", bookHandler.UpdateBook)
		books.PATCH("/:id/", bookHandler.PartialUpdateBook)
		books.DELETE("/:id/", bookHandler.DeleteBook)
	}

	// 库存只读
	inventory := r.Group("/inventory")
	{
		inventory.GET("/", inventoryHandler.ListInventory)
		inventory.GET("/:id/", inventoryHandler.GetInventory)
	}

	authors := r.Group("/authors")
	{
		authors.GET("/", authorHandler.ListAuthors)
		authors.POST("/", authorHandler.CreateAuthor)
		authors.GET("/:id/", authorHandler.GetAuthor)
		authors.PUT("/:id/", authorHandler.UpdateAuthor)
		authors.PATCH("/:id/", authorHandler.UpdateAuthor)
		authors.DELETE("/:id/", authorHandler.DeleteAuthor)
		authors.GET("/:id/books/", authorHandler.ListAuthorBooks)
		authors.GET("/:id/genres/", authorHandler.ListAuthorGenres)
	}

	genres := r.Group("/genres")
	{
		genres.GET("/", genreHandler.ListGenres)
		genres.POST("/", genreHandler.CreateGenre)
		genres.GET("/:id/", genreHandler.GetGenre)
		genres.PUT("/:id/", genreHandler.UpdateGenre)
		genres.PATCH("/:id/", genreHandler.UpdateGenre)
		genres.DELETE("/:id/", genreHandler.DeleteGenre)
		genres.GET("/:id/books/", genreHandler.ListGenreBooks)
		genres.GET("/:id/authors/", genreHandler.ListGenreAuthors)
	}

	return r
}
