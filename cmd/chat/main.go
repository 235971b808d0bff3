package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gemino/internal/client"
	"gemino/internal/config"
	"gemino/internal/conversation"
	"gemino/internal/logging"
	"gemino/internal/ui"
)

func main() {
	cfg, err := config.LoadChat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Configuration failed: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Must(logging.ForChat(cfg))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway := client.NewGatewayClient(cfg.GatewayURL, cfg.RequestTimeout, logger)
	controller := conversation.NewController(gateway, logger)
	chat := ui.New(controller, logger)

	logger.Info("chat started", zap.String("gateway", cfg.GatewayURL))
	if err := chat.Run(ctx); err != nil {
		logger.Error("chat UI failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "✗ Chat UI failed: %v\n", err)
		stop()
		os.Exit(1)
	}
	logger.Info("chat closed")
}
