package payment

import "time"

// Provider 支付提供商
type Provider string

const (
	ProviderWechat Provider = "wechat"
	ProviderAlipay Provider = "alipay"
)

// Method 统一支付方式
type Method string

const (
	MethodApp         Method = "app"
	MethodWeb         Method = "web"
	MethodQrCode      Method = "qrcode"
	MethodMiniProgram Method = "miniprogram"
	MethodH5          Method = "h5"
)

// IsSupportedMethod 是否为受支持的统一支付方式
func IsSupportedMethod(method Method) bool {
	switch method {
	case MethodApp, MethodWeb, MethodQrCode, MethodMiniProgram, MethodH5:
		return true
	default:
		return false
	}
}

// OrderStatus 统一订单状态
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusSuccess         OrderStatus = "success"
	OrderStatusFailed          OrderStatus = "failed"
	OrderStatusClosed          OrderStatus = "closed"
	OrderStatusRefunded        OrderStatus = "refunded"
	OrderStatusPartialRefunded OrderStatus = "partial_refunded"
)

// UnifiedOrderRequest 统一下单请求，金额一律使用分
type UnifiedOrderRequest struct {
	OutTradeNo  string
	Description string
	TotalAmount int64
	Currency    string
	UserID      string // 微信 openid 或支付宝 buyer_id
	NotifyURL   string
	TimeExpire  *time.Time
	Attach      string
	Extra       map[string]string
}

// UnifiedOrderResponse 统一下单返回。业务失败通过 Success=false 表达，
// 成功时按支付方式填充 PrepayID / PayURL / QRCode / PayParams 的子集。
type UnifiedOrderResponse struct {
	Success   bool
	ErrorMsg  string
	PrepayID  string
	PayURL    string
	QRCode    string
	PayParams string
	Raw       map[string]interface{}
}

// UnifiedQueryRequest 统一查询请求，out_trade_no 与 transaction_id 二选一，
// 两者都有时优先使用 out_trade_no。
type UnifiedQueryRequest struct {
	OutTradeNo    string
	TransactionID string
}

// UnifiedQueryResponse 统一查询返回。无法映射的状态与无法解析的金额
// 以 nil 表达，不做猜测。
type UnifiedQueryResponse struct {
	Success       bool
	ErrorMsg      string
	OutTradeNo    string
	TransactionID string
	Status        *OrderStatus
	TotalAmount   *int64
	PaidAmount    *int64
	PaidAt        *time.Time
	Raw           map[string]interface{}
}

// UnifiedNotifyData 统一异步通知数据。
// 只能由通过验签的通知构造，Raw 保留原始报文供调用方审计与去重。
type UnifiedNotifyData struct {
	OutTradeNo    string
	TransactionID string
	Status        OrderStatus
	TotalAmount   int64
	PaidAmount    int64
	PaidAt        *time.Time
	Attach        string
	Raw           []byte
}
