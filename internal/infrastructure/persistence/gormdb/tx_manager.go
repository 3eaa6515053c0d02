package gormdb

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中存放事务DB的key
type txKey struct{}

// TxManager 事务管理器，实现book.TxManager
// 设计说明:
// 1. 图书和库存的写入、批量导入的每一行都在一个事务内完成
// 2. 事务DB放在context里，仓储通过dbFrom取用，调用方无需感知
// 3. ctx中已有事务时再次调用会变成Savepoint(GORM嵌套事务)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内的所有Repository操作都会在同一事务中执行,
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := bookRepo.Update(ctx, b); err != nil {
//	        return err // 自动回滚
//	    }
//	    return inventoryRepo.Update(ctx, inv) // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom 从context获取事务DB,如果没有则使用默认DB
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
