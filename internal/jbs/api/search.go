package api

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/rs/zerolog"
)

// volumeSearchOptions 返回非管理员允许的列表过滤键
func volumeSearchOptions() []string {
	return []string{"display_name", "status"}
}

// removeInvalidOptions 原地移除调用方无权使用的过滤项
// 管理员不受白名单限制，被移除的键汇总为一条日志
func removeInvalidOptions(ctx context.Context, rctx *entity.RequestContext, searchOpts map[string]string, allowed ...string) {
	if rctx.IsAdmin {
		return
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	removed := make([]string, 0)
	for key := range searchOpts {
		if _, ok := allowedSet[key]; ok {
			continue
		}
		delete(searchOpts, key)
		removed = append(removed, key)
	}
	if len(removed) > 0 {
		zerolog.Ctx(ctx).Debug().
			Str("options", strings.Join(removed, ", ")).
			Msg("Removing options from query")
	}
}

const (
	// defaultListLimit 未指定 limit 时单次返回的最大条数
	defaultListLimit = 1000
	// maxListLimit limit 参数允许的上限
	maxListLimit = 1000
)

// Limiter 对列表结果做每请求截断
// 分页参数的解释对控制器是黑盒，方便测试时替换
type Limiter func(ctx *gin.Context, volumes []entity.Volume) []entity.Volume

// limitVolumes 按 offset/limit 查询参数截断列表
// 非法或越界的参数回退到默认值
func limitVolumes(ctx *gin.Context, volumes []entity.Volume) []entity.Volume {
	offset := parseListParam(ctx.Query("offset"), 0)
	limit := parseListParam(ctx.Query("limit"), defaultListLimit)
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset >= len(volumes) {
		return volumes[:0]
	}
	end := offset + limit
	if end > len(volumes) {
		end = len(volumes)
	}
	return volumes[offset:end]
}

func parseListParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
