package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/unipay-next/internal/config"
	"github.com/unipay-next/internal/logger"
	"github.com/unipay-next/internal/payment"
	"github.com/unipay-next/internal/payment/alipay"
	"github.com/unipay-next/internal/payment/wechatpay"

	"github.com/google/uuid"
)

func main() {
	var (
		action     string
		provider   string
		method     string
		amount     int64
		subject    string
		outTradeNo string
	)
	flag.StringVar(&action, "action", "create", "操作: create, query, close")
	flag.StringVar(&provider, "provider", "alipay", "支付提供商: wechat, alipay")
	flag.StringVar(&method, "method", "qrcode", "支付方式: app, web, qrcode, miniprogram, h5")
	flag.Int64Var(&amount, "amount", 1, "支付金额（分）")
	flag.StringVar(&subject, "subject", "支付演示", "商品描述")
	flag.StringVar(&outTradeNo, "out-trade-no", "", "商户订单号（query/close 必填，create 留空自动生成）")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Mode, cfg.Log.ToLoggerOptions())
	defer func() { _ = logger.Z().Sync() }()

	gateway, err := buildGateway(cfg)
	if err != nil {
		logger.Errorw("gateway_init_failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prov := payment.Provider(strings.ToLower(strings.TrimSpace(provider)))

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "create":
		if outTradeNo == "" {
			outTradeNo = strings.ReplaceAll(uuid.NewString(), "-", "")
		}
		resp, err := gateway.CreateOrder(ctx, prov, payment.Method(method), payment.UnifiedOrderRequest{
			OutTradeNo:  outTradeNo,
			Description: subject,
			TotalAmount: amount,
			Currency:    "CNY",
		})
		if err != nil {
			logger.Errorw("create_order_failed", "error", err)
			os.Exit(1)
		}
		printJSON(resp)
	case "query":
		resp, err := gateway.QueryOrder(ctx, prov, payment.UnifiedQueryRequest{OutTradeNo: outTradeNo})
		if err != nil {
			logger.Errorw("query_order_failed", "error", err)
			os.Exit(1)
		}
		printJSON(resp)
	case "close":
		if err := gateway.CloseOrder(ctx, prov, outTradeNo); err != nil {
			logger.Errorw("close_order_failed", "error", err)
			os.Exit(1)
		}
		fmt.Println("订单已关闭:", outTradeNo)
	default:
		fmt.Fprintf(os.Stderr, "未知操作: %s\n", action)
		os.Exit(2)
	}
}

func buildGateway(cfg *config.Config) (*payment.Gateway, error) {
	opts := []payment.Option{payment.WithLogger(logger.S())}

	if cfg.Payment.Wechat.Enabled {
		wxCfg, err := wechatpay.ParseConfig(cfg.Payment.Wechat.Options)
		if err != nil {
			return nil, fmt.Errorf("微信支付配置解析失败: %w", err)
		}
		wxClient, err := wechatpay.NewClient(wxCfg)
		if err != nil {
			return nil, fmt.Errorf("微信支付客户端初始化失败: %w", err)
		}
		opts = append(opts, payment.WithClient(payment.ProviderWechat, wxClient))
	}

	if cfg.Payment.Alipay.Enabled {
		aliCfg, err := alipay.ParseConfig(cfg.Payment.Alipay.Options)
		if err != nil {
			return nil, fmt.Errorf("支付宝配置解析失败: %w", err)
		}
		aliClient, err := alipay.NewClient(aliCfg)
		if err != nil {
			return nil, fmt.Errorf("支付宝客户端初始化失败: %w", err)
		}
		opts = append(opts, payment.WithClient(payment.ProviderAlipay, aliClient))
	}

	return payment.NewGateway(opts...), nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}
