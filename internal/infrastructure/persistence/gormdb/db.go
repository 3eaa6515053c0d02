package gormdb

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按database.driver选择mysql/postgres/sqlite
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
//
// 返回的cleanup用于关闭连接池(wire约定)
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	// 1. 选择驱动
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	// TranslateError把各驱动的唯一索引冲突统一成gorm.ErrDuplicatedKey
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	if cfg.Database.Driver == config.DriverSQLite {
		// SQLite只允许一个写连接，内存库多连接时每个连接是独立的库
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功", zap.String("driver", cfg.Database.Driver))

	// 6. 自动迁移表结构
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := AutoMigrate(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, cleanup, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// AutoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. many2many会同时创建book_authors、book_genres关联表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&InventoryModel{},
	)
}

// AuthorModel GORM作者模型
// 名称不唯一(同名作者允许存在)，加普通索引供get-or-create和过滤使用
type AuthorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;index;not null;comment:作者名"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM分类模型
type GenreModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null;comment:分类名"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN不唯一(源数据中大量为空或重复)
// 2. 可选数值字段用指针，数据库中为NULL
// 3. 作者、分类通过显式的关联表多对多
type BookModel struct {
	ID          uint     `gorm:"primaryKey"`
	ISBN        string   `gorm:"size:20;index;not null;default:'';comment:ISBN号"`
	Title       string   `gorm:"type:text;not null;comment:书名"`
	Type        string   `gorm:"size:25;not null;default:'';comment:装帧类型"`
	Edition     string   `gorm:"type:text;not null;comment:版本"`
	Pages       *int     `gorm:"comment:页数"`
	Rating      *float64 `gorm:"comment:评分"`
	RatingCount *int     `gorm:"comment:评分人数"`
	ReviewCount *int     `gorm:"comment:评论数"`
	ImageURL    string   `gorm:"type:text;not null;comment:封面图片URL"`
	Description string   `gorm:"type:text;not null;comment:图书描述"`

	Authors   []AuthorModel   `gorm:"many2many:book_authors;joinForeignKey:BookID;joinReferences:AuthorID"`
	Genres    []GenreModel    `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
	Inventory *InventoryModel `gorm:"foreignKey:BookID"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// InventoryModel GORM库存模型
// BookID唯一索引保证一本书只有一条库存
type InventoryModel struct {
	ID        uint `gorm:"primaryKey"`
	BookID    uint `gorm:"uniqueIndex;not null;comment:图书ID"`
	Available uint `gorm:"not null;comment:可借册数"`
	Owned     uint `gorm:"not null;comment:馆藏册数"`
}

// TableName 指定表名
func (InventoryModel) TableName() string {
	return "inventories"
}
