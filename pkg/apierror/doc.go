// Package apierror 提供 AWS 风格的错误类型，用于块存储服务的统一错误处理
//
// 错误响应格式支持 XML 和 JSON 两种格式：
//
//	XML 格式：
//	<Response>
//	    <Errors>
//	        <Error>
//	            <Code>InvalidVolume.NotFound</Code>
//	            <Message>The volume ID 'vol-1a2b3c4d' does not exist</Message>
//	        </Error>
//	    </Errors>
//	    <RequestID>ea966190-f9aa-478e-9ede-example</RequestID>
//	</Response>
//
//	JSON 格式：
//	{
//	    "errors": [
//	        {
//	            "code": "InvalidVolume.NotFound",
//	            "message": "The volume ID 'vol-1a2b3c4d' does not exist"
//	        }
//	    ],
//	    "requestID": "ea966190-f9aa-478e-9ede-example"
//	}
//
// 使用示例：
//
//	// 创建错误
//	err := apierror.NewError("InvalidVolume.NotFound", "The volume ID 'vol-1a2b3c4d' does not exist")
//
//	// 创建错误响应
//	errorResp := apierror.NewErrorResponse("request-id", err)
//
//	// 在 gin 中使用
//	c.XML(http.StatusNotFound, errorResp)
//	// 或
//	c.JSON(http.StatusNotFound, errorResp)
//
// 预定义的客户端错误变量（HTTP 状态码 4xx）：
//
//   - ErrVolumeNotFound: 卷不存在（404）
//   - ErrVolumeTypeNotFound: 卷类型不存在（404）
//   - ErrSnapshotNotFound: 快照不存在（404）
//   - ErrUnprocessableEntity: 请求体缺少必需元素（422）
//   - ErrInvalidParameterCombination: 互斥参数同时出现（400）
//   - ErrInvalidParameterValue: 参数值不合法（400）
//   - ErrMalformedRequestBody: 请求体无法解析（400）
//
// 预定义的服务端错误变量（HTTP 状态码 5xx）：
//
//   - ErrInsufficientVolumeCapacity: 存储卷容量不足
//   - ErrInternalFailure: 内部故障
//   - ErrInternalError: 内部错误
//   - ErrServiceUnavailable: 服务不可用
//   - ErrUnavailable: 服务器过载
//
// 使用示例：
//
//	// 直接使用预定义的错误
//	errorResp := apierror.NewErrorResponse("request-id", apierror.ErrVolumeNotFound)
//
//	// 或创建自定义错误
//	err := apierror.NewError("CustomError", "Custom error message")
package apierror
