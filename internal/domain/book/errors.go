package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrInventoryNotFound 图书没有库存记录
	ErrInventoryNotFound = apperrors.New(apperrors.ErrCodeNotFound, "inventory not found")

	// ErrMissingInventory 创建图书时未提交库存
	ErrMissingInventory = apperrors.New(apperrors.ErrCodeMissingInventory,
		"inventory dictionary with owned and available must be part of the request data")

	// ErrInvalidInventory 库存数据缺失、类型错误或违反不变式
	ErrInvalidInventory = apperrors.New(apperrors.ErrCodeInvalidInventory, "invalid owned or available")

	// ErrInvalidBook 图书字段校验失败
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidBook, "invalid book data")
)
