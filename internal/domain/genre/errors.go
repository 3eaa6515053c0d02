package genre

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrGenreNotFound 分类不存在
	ErrGenreNotFound = apperrors.New(apperrors.ErrCodeGenreNotFound, "genre not found")

	// ErrInvalidGenre 分类名称为空或过长
	ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidGenre, "invalid genre data")

	// ErrGenreDuplicate 分类名称已存在
	ErrGenreDuplicate = apperrors.New(apperrors.ErrCodeGenreDuplicate, "genre with this name already exists")
)
