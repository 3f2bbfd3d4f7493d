package payment

import "errors"

// 统一错误分类。各提供商客户端用 %w 包装并附带提供商与操作上下文，
// 调用方通过 errors.Is 判断类别。
var (
	// ErrProviderNotConfigured 请求的提供商没有配置客户端，属部署错误
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	// ErrRequestInvalid 统一请求本身不合法，未发起网络调用
	ErrRequestInvalid = errors.New("payment request invalid")
	// ErrRequestFailed 网络或传输层失败，是否重试由调用方决定
	ErrRequestFailed = errors.New("payment request failed")
	// ErrResponseInvalid 提供商已受理但返回业务失败或不可解析的应答
	ErrResponseInvalid = errors.New("payment response invalid")
	// ErrSignatureInvalid 异步通知验签失败，必须拒绝整条通知
	ErrSignatureInvalid = errors.New("payment signature invalid")
)
