package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/unipay-next/internal/logger"

	"go.uber.org/zap"
)

// Client 单一提供商的支付客户端。实现必须只持有不可变配置，
// 可以被并发调用而无需外部加锁。
type Client interface {
	// CreateOrder 创建支付单，按统一支付方式映射到提供商的交易类型
	CreateOrder(ctx context.Context, method Method, req UnifiedOrderRequest) (*UnifiedOrderResponse, error)
	// QueryOrder 查询支付单，out_trade_no 优先于 transaction_id
	QueryOrder(ctx context.Context, req UnifiedQueryRequest) (*UnifiedQueryResponse, error)
	// CloseOrder 关闭支付单，成功仅代表提供商受理了关单请求
	CloseOrder(ctx context.Context, outTradeNo string) error
	// HandleNotify 验签并解析异步通知，验签失败必须整体拒绝
	HandleNotify(ctx context.Context, body []byte, headers map[string]string) (*UnifiedNotifyData, error)
}

// Gateway 统一支付分发器。每个提供商最多持有一个客户端实例，
// 客户端在进程启动时注入，之后只读。
type Gateway struct {
	clients map[Provider]Client
	log     *zap.SugaredLogger
}

// Option Gateway 构造配置
type Option func(*Gateway)

// WithClient 注册提供商客户端
func WithClient(provider Provider, client Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.clients[provider] = client
		}
	}
}

// WithLogger 注入日志实例
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGateway 构造统一支付分发器
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		clients: make(map[Provider]Client),
		log:     logger.S(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Client 返回指定提供商的客户端，未配置时返回 ErrProviderNotConfigured
func (g *Gateway) Client(provider Provider) (Client, error) {
	client, ok := g.clients[provider]
	if !ok || client == nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
	}
	return client, nil
}

// CreateOrder 统一下单。提供商未配置返回错误；
// 请求校验失败与提供商业务失败都以 Success=false 返回，供调用方展示给用户。
func (g *Gateway) CreateOrder(ctx context.Context, provider Provider, method Method, req UnifiedOrderRequest) (*UnifiedOrderResponse, error) {
	client, err := g.Client(provider)
	if err != nil {
		return nil, err
	}
	if err := validateOrderRequest(method, req); err != nil {
		return &UnifiedOrderResponse{Success: false, ErrorMsg: err.Error()}, nil
	}
	resp, err := client.CreateOrder(ctx, method, req)
	if err != nil {
		g.log.Warnw("payment_create_order_failed",
			"provider", provider, "method", method, "out_trade_no", req.OutTradeNo, "error", err)
		return &UnifiedOrderResponse{Success: false, ErrorMsg: err.Error()}, nil
	}
	return resp, nil
}

// QueryOrder 统一查询。两个订单号都缺失时直接返回失败，不发起网络调用。
func (g *Gateway) QueryOrder(ctx context.Context, provider Provider, req UnifiedQueryRequest) (*UnifiedQueryResponse, error) {
	client, err := g.Client(provider)
	if err != nil {
		return nil, err
	}
	req.OutTradeNo = strings.TrimSpace(req.OutTradeNo)
	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if req.OutTradeNo == "" && req.TransactionID == "" {
		return &UnifiedQueryResponse{
			Success:  false,
			ErrorMsg: "out_trade_no or transaction_id is required",
		}, nil
	}
	resp, err := client.QueryOrder(ctx, req)
	if err != nil {
		g.log.Warnw("payment_query_order_failed",
			"provider", provider, "out_trade_no", req.OutTradeNo, "transaction_id", req.TransactionID, "error", err)
		return &UnifiedQueryResponse{Success: false, ErrorMsg: err.Error()}, nil
	}
	return resp, nil
}

// CloseOrder 统一关单
func (g *Gateway) CloseOrder(ctx context.Context, provider Provider, outTradeNo string) error {
	client, err := g.Client(provider)
	if err != nil {
		return err
	}
	outTradeNo = strings.TrimSpace(outTradeNo)
	if outTradeNo == "" {
		return fmt.Errorf("%w: out_trade_no is required", ErrRequestInvalid)
	}
	if err := client.CloseOrder(ctx, outTradeNo); err != nil {
		g.log.Warnw("payment_close_order_failed",
			"provider", provider, "out_trade_no", outTradeNo, "error", err)
		return err
	}
	return nil
}

// HandleNotify 验签并解析异步通知。任何验签或解析失败都返回错误，
// 绝不返回部分填充的通知数据；验签失败单独记录日志。
func (g *Gateway) HandleNotify(ctx context.Context, provider Provider, body []byte, headers map[string]string) (*UnifiedNotifyData, error) {
	client, err := g.Client(provider)
	if err != nil {
		return nil, err
	}
	data, err := client.HandleNotify(ctx, body, headers)
	if err != nil {
		g.log.Errorw("payment_notify_rejected", "provider", provider, "error", err)
		return nil, err
	}
	return data, nil
}

func validateOrderRequest(method Method, req UnifiedOrderRequest) error {
	if !IsSupportedMethod(method) {
		return fmt.Errorf("%w: method %s is not supported", ErrRequestInvalid, method)
	}
	if strings.TrimSpace(req.OutTradeNo) == "" {
		return fmt.Errorf("%w: out_trade_no is required", ErrRequestInvalid)
	}
	if req.TotalAmount <= 0 {
		return fmt.Errorf("%w: total_amount must be greater than zero", ErrRequestInvalid)
	}
	return nil
}
