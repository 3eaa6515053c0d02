package author

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "author not found")

	// ErrInvalidAuthor 作者数据不合法
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidAuthor, "invalid author data")
)
