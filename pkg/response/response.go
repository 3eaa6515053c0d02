package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ErrorBody 统一错误响应结构
// reason是简短的错误原因，code是业务错误码，方便客户端区分错误类型
type ErrorBody struct {
	Code   int    `json:"code" example:"40011"`
	Reason string `json:"reason" example:"invalid owned or available"`
}

// StatusBody 创建成功时的响应体（只包含状态标记，资源由客户端重新读取）
type StatusBody struct {
	Status int `json:"status" example:"201"`
}

// Success 成功响应（200，直接返回数据）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功（201 + 状态标记）
func Created(c *gin.Context) {
	c.JSON(http.StatusCreated, StatusBody{Status: http.StatusCreated})
}

// CreatedWith 创建成功并返回资源（作者、分类）
func CreatedWith(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 更新/删除成功（204）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := bookService.Create(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只记录日志，不返回给客户端
	if appErr.Err != nil {
		logger(c).Warn("request failed",
			zap.Int("code", appErr.Code),
			zap.String("reason", appErr.Message),
			zap.Error(appErr.Err),
		)
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		Code:   appErr.Code,
		Reason: appErr.Message,
	})
}

// =========================================
// 日志
// =========================================

// LoggerKey 日志中间件把*zap.Logger放入gin.Context时使用的key
const LoggerKey = "logger"

func logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}
