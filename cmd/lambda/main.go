package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/globalpayments/gpapi-go/internal/config"
	"github.com/globalpayments/gpapi-go/internal/handler"
	"github.com/globalpayments/gpapi-go/pkg/gpapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("failed to configure logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg.GpAPI.Logger = logger
	if cfg.Debug {
		cfg.GpAPI.RequestLogger = gpapi.NewZapRequestLogger(logger)
	}
	if err := gpapi.ConfigureService(cfg.GpAPI); err != nil {
		logger.Fatal("failed to configure gp-api service", zap.Error(err))
	}

	opts := []handler.Option{handler.WithLogger(logger)}
	if cfg.CallbackURL != "" {
		sender, err := handler.NewHTTPSCallbackSender(cfg.CallbackURL, cfg.CallbackSecret, nil)
		if err != nil {
			logger.Fatal("failed to configure callback sender", zap.Error(err))
		}
		opts = append(opts, handler.WithCallbackSender(sender))
	}

	processor := handler.NewProcessor(handler.NewGateway(gpapi.DefaultConfigName), opts...)

	lambda.Start(processor.Handle)
}
