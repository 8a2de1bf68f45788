package ginx

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jbs/pkg/apierror"
)

// isXMLRequest 检查请求是否为 XML 格式
func isXMLRequest(ctx *gin.Context) bool {
	contentType := ctx.GetHeader("Content-Type")
	return strings.Contains(contentType, "application/xml") ||
		strings.Contains(contentType, "text/xml")
}

// hasRequestBody 检查请求是否携带 body
func hasRequestBody(ctx *gin.Context) bool {
	return ctx.Request != nil && ctx.Request.ContentLength > 0
}

// bindArgs 绑定请求参数到 args 结构体
// 优先级：XML/JSON Body（根据 Content-Type）> URI 参数 > Query 参数 > Form 参数
// 默认使用 JSON，如果 Content-Type 包含 xml，则使用 XML
//
// 如果请求携带了 body 但无法解析，直接返回错误，不再尝试其他绑定方式，
// 调用方会将其渲染为 400 级别的客户端错误
func bindArgs(ctx *gin.Context, args interface{}) error {
	// 1. 尝试从 XML/JSON body 绑定
	// 根据 Content-Type 决定使用 XML 还是 JSON
	if hasRequestBody(ctx) {
		if isXMLRequest(ctx) {
			if err := ctx.ShouldBindXML(args); err != nil {
				setResponseFormat(ctx, formatXML)
				return apierror.WrapError(apierror.ErrMalformedRequestBody,
					"The request body could not be parsed.", err)
			}
			// XML 绑定成功，同时尝试绑定 URI 和 Query 参数
			_ = ctx.ShouldBindUri(args)
			_ = ctx.ShouldBindQuery(args)
			// 标记使用 XML 格式
			setResponseFormat(ctx, formatXML)
			return nil
		}
		// 默认使用 JSON
		if err := ctx.ShouldBindJSON(args); err != nil {
			setResponseFormat(ctx, formatJSON)
			return apierror.WrapError(apierror.ErrMalformedRequestBody,
				"The request body could not be parsed.", err)
		}
		// JSON 绑定成功，同时尝试绑定 URI 和 Query 参数
		_ = ctx.ShouldBindUri(args)
		_ = ctx.ShouldBindQuery(args)
		// 标记使用 JSON 格式
		setResponseFormat(ctx, formatJSON)
		return nil
	}

	// 2. 尝试从 URI 参数绑定
	if err := ctx.ShouldBindUri(args); err == nil {
		// URI 绑定成功，同时绑定 Query 参数
		_ = ctx.ShouldBindQuery(args)
		// 默认使用 JSON
		setResponseFormat(ctx, formatJSON)
		return nil
	}

	// 3. 尝试从 Query 参数绑定
	if err := ctx.ShouldBindQuery(args); err == nil {
		// 默认使用 JSON
		setResponseFormat(ctx, formatJSON)
		return nil
	}

	// 4. 尝试从 Form 绑定
	// 默认使用 JSON
	setResponseFormat(ctx, formatJSON)
	return ctx.ShouldBind(args)
}
