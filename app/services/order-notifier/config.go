package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

type config struct {
	Addr           string
	LogLevel       string
	MaxBodyBytes   int64
	ForwardTimeout time.Duration
	Shopify        struct {
		Secret string
	}
	WeCom struct {
		Webhook string
	}
}

// loadConfig parses flags, then lets set environment variables override them.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("order-notifier", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on, i.e 127.0.0.1:8000")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", 1<<20, "maximum webhook body size in bytes")
	fs.DurationVar(&cfg.ForwardTimeout, "forward-timeout", 10*time.Second, "timeout for the bot webhook call")
	fs.StringVar(&cfg.Shopify.Secret, "shopify-secret", "", "Shopify webhook signing secret, empty disables verification")
	fs.StringVar(&cfg.WeCom.Webhook, "wecom-webhook", "", "WeCom group bot webhook URL")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("SHOPIFY_WEBHOOK_SECRET"); v != "" {
		cfg.Shopify.Secret = v
	}
	if v := getenv("WECOM_WEBHOOK"); v != "" {
		cfg.WeCom.Webhook = v
	}
	if v := getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("config: MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}
	if v := getenv("FORWARD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("config: FORWARD_TIMEOUT: %w", err)
		}
		cfg.ForwardTimeout = d
	}

	if cfg.MaxBodyBytes <= 0 {
		return config{}, fmt.Errorf("config: max body bytes must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}
