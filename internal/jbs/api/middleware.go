package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/rs/zerolog"
)

const (
	headerRequestID = "X-Request-Id"
	headerAuthRoles = "X-Auth-Roles"
)

// RequestID 为每个请求分配请求 ID，调用方带了就沿用
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Writer.Header().Set(headerRequestID, requestID)
		ctx.Next()
	}
}

// RequestLogger 把带请求 ID 的 logger 注入请求上下文
// 后续 handler 通过 zerolog.Ctx 取用
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestLogger := logger.With().
			Str("requestID", ctx.Writer.Header().Get(headerRequestID)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Logger()
		ctx.Request = ctx.Request.WithContext(requestLogger.WithContext(ctx.Request.Context()))
		ctx.Next()
	}
}

// AuthContext 从认证头构造请求上下文
// 认证本身在上游网关完成，这里只消费它写入的角色头
func AuthContext() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rctx := &entity.RequestContext{
			RequestID: ctx.Writer.Header().Get(headerRequestID),
			IsAdmin:   hasAdminRole(ctx.GetHeader(headerAuthRoles)),
		}
		ctx.Request = ctx.Request.WithContext(entity.NewContext(ctx.Request.Context(), rctx))
		ctx.Next()
	}
}

func hasAdminRole(roles string) bool {
	for _, role := range strings.Split(roles, ",") {
		if strings.EqualFold(strings.TrimSpace(role), "admin") {
			return true
		}
	}
	return false
}
