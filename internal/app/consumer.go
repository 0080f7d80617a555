package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eleave/internal/events"
	"eleave/internal/messaging/kafka/consumer"
	"eleave/internal/notification"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	emailSender := notification.NewSESSender(ses.NewFromConfig(awsCfg))
	chatSender := notification.NewSlackSender(os.Getenv("SLACK_BOT_TOKEN"))
	gateway := notification.NewGateway(emailSender, chatSender, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.NotificationTopic,
		GroupID:        "eleave-notification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	go consumer.ConsumeNotifications(ctx, reader, gateway, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
