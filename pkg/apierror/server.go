package apierror

// 块存储服务服务端错误
// 服务端错误的 HTTP 状态码为 5xx，错误由服务端引起，客户端可以重试
var (
	// ErrInsufficientVolumeCapacity 没有足够的容量来满足卷配置请求
	// 可以尝试配置不同的卷类型、不同可用区的卷，或等待额外容量可用
	ErrInsufficientVolumeCapacity = &Error{
		Code:    "InsufficientVolumeCapacity",
		Message: "There is not enough capacity to fulfill your volume provision request. You can try to provision a different volume type, a volume in a different availability zone, or you can wait for additional capacity to become available.",
	}

	// ErrInternalFailure 由于未知错误、异常或故障，请求处理失败
	ErrInternalFailure = &Error{
		Code:    "InternalFailure",
		Message: "The request processing has failed because of an unknown error, exception, or failure.",
	}

	// ErrInternalError 发生了内部错误
	// 重试请求，如果问题仍然存在，请联系服务运维
	ErrInternalError = &Error{
		Code:    "InternalError",
		Message: "An internal error has occurred. Retry your request, but if the problem persists, contact the service operator with details.",
	}

	// ErrServiceUnavailable 由于服务器临时故障，请求失败
	ErrServiceUnavailable = &Error{
		Code:    "ServiceUnavailable",
		Message: "The request has failed due to a temporary failure of the server.",
	}

	// ErrUnavailable 服务器过载，无法处理请求
	ErrUnavailable = &Error{
		Code:    "Unavailable",
		Message: "The server is overloaded and can't handle the request.",
	}
)
