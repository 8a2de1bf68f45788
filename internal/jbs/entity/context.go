package entity

import "context"

// RequestContext 请求级上下文
// 由认证中间件构造，显式地随请求传递，不使用隐式全局状态
// 认证与鉴权本身不在本服务范围内，这里只消费结果
type RequestContext struct {
	RequestID string `json:"request_id"`
	IsAdmin   bool   `json:"is_admin"`
}

// requestContextKey 用于在 context.Context 中存储 RequestContext
type requestContextKey struct{}

// NewContext 将 RequestContext 存入 context.Context
func NewContext(ctx context.Context, rctx *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rctx)
}

// RequestContextFrom 从 context.Context 中取出 RequestContext
// 没有时返回非 admin 的空上下文，保证调用方总是拿到可用的值
func RequestContextFrom(ctx context.Context) *RequestContext {
	if rctx, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok && rctx != nil {
		return rctx
	}
	return &RequestContext{}
}
