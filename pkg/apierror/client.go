package apierror

import "net/http"

// 块存储服务客户端错误
// 客户端错误的 HTTP 状态码为 4xx，错误由请求本身引起，重试不会成功
var (
	// ErrVolumeNotFound 指定的卷不存在
	ErrVolumeNotFound = &Error{
		Code:       "InvalidVolume.NotFound",
		Message:    "The specified volume does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrVolumeTypeNotFound 指定的卷类型不存在
	ErrVolumeTypeNotFound = &Error{
		Code:       "InvalidVolumeType.NotFound",
		Message:    "Volume type not found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrSnapshotNotFound 指定的快照不存在
	ErrSnapshotNotFound = &Error{
		Code:       "InvalidSnapshot.NotFound",
		Message:    "The specified snapshot does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrUnprocessableEntity 请求体缺少必需的元素或无法处理
	ErrUnprocessableEntity = &Error{
		Code:       "UnprocessableEntity",
		Message:    "The request body is missing a required element or cannot be processed.",
		HTTPStatus: http.StatusUnprocessableEntity,
	}

	// ErrInvalidParameterCombination 请求中的参数组合不合法
	// 例如同时指定互斥的参数
	ErrInvalidParameterCombination = &Error{
		Code:       "InvalidParameterCombination",
		Message:    "The combination of parameters in the request is not valid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrInvalidParameterValue 请求中的参数值不合法
	ErrInvalidParameterValue = &Error{
		Code:       "InvalidParameterValue",
		Message:    "A value specified in a parameter is not valid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrMalformedRequestBody 请求体无法解析
	ErrMalformedRequestBody = &Error{
		Code:       "MalformedRequestBody",
		Message:    "The request body could not be parsed.",
		HTTPStatus: http.StatusBadRequest,
	}
)
