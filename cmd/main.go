package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mike-pete/cms/internal/config"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/queue"
	"github.com/mike-pete/cms/internal/repository/chunk"
	"github.com/mike-pete/cms/internal/repository/contact"
	"github.com/mike-pete/cms/internal/repository/file"
	"github.com/mike-pete/cms/internal/routes"
	"github.com/mike-pete/cms/internal/service/mailer"
	"github.com/mike-pete/cms/internal/service/notifier"
	"github.com/mike-pete/cms/internal/service/processor"
	"github.com/mike-pete/cms/internal/service/progress"
	"github.com/mike-pete/cms/internal/service/splitter"
	"github.com/mike-pete/cms/internal/service/uploads"
	"github.com/mike-pete/cms/internal/storage/database"
	"github.com/mike-pete/cms/internal/storage/filestore"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/redis/go-redis/v9"
)

var (
	confFile = flag.String("config", "configs/app_conf.yml", "Configs file path")
	appHash  = os.Getenv("GIT_HASH")
)

func main() {
	flag.Parse()
	appLog := logger.NewAppSLogger(appHash)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLog.Info("app starting", slog.String("conf", *confFile))
	appConf, err := config.InitConf(*confFile)
	if err != nil {
		appLog.Fatal("unable to init config", err, slog.String("config", *confFile))
	}

	appLog.Info("create storage connections")
	dbConn, err := getDBConnect(appLog, &appConf.ConfigDB, appConf.MigratesFolder)
	if err != nil {
		appLog.Fatal("unable to connect to db", err, slog.String("host", appConf.ConfigDB.Address))
	}
	defer func() {
		if err = dbConn.Close(); err != nil {
			appLog.Fatal("unable to close db connection", err)
		}
	}()

	awsCfg, err := getAWSConfig(ctx, appConf)
	if err != nil {
		appLog.Fatal("unable to load aws config", err)
	}
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if appConf.ConfigStorage.Endpoint != "" {
			o.BaseEndpoint = aws.String(appConf.ConfigStorage.Endpoint)
			o.UsePathStyle = true
		}
	})
	sqsClient := sqs.NewFromConfig(awsCfg)
	redisClient := redis.NewClient(&redis.Options{Addr: appConf.ConfigRedis.Address})
	defer func() {
		if err = redisClient.Close(); err != nil {
			appLog.Error("unable to close redis connection", err)
		}
	}()

	appLog.Info("init repositories")
	repoFile := file.InitRepo(dbConn)
	repoChunk := chunk.InitRepo(dbConn)
	repoContact := contact.InitRepo(dbConn)

	appLog.Info("init services")
	store := filestore.NewS3Store(s3Client, appConf.ConfigStorage.Bucket)
	publisher := queue.NewSQSPublisher(sqsClient, appConf.ConfigQueue.QueueURL)
	eventNotifier := notifier.NewService(redisClient, appLog)
	completionSender := mailer.NewService(appConf.ConfigSMTP.Address, appConf.ConfigSMTP.From, appLog)

	serviceUploads := uploads.NewService(appLog, repoFile, store,
		time.Duration(appConf.ConfigStorage.UploadURLTTLMin)*time.Minute)
	serviceSplitter := splitter.NewService(ctx, &splitter.Config{ChunkSize: appConf.Pipeline.ChunkSize},
		appLog, repoFile, repoChunk, store, publisher, eventNotifier)
	serviceProcessor := processor.NewService(&processor.Config{BatchSize: appConf.Pipeline.BatchSize},
		appLog, dbConn, repoFile, repoChunk, repoContact, eventNotifier, completionSender)
	serviceProgress := progress.NewService(appLog, repoFile, repoChunk)

	appLog.Info("start queue consumer")
	consumer := queue.NewConsumer(ctx, sqsClient, serviceProcessor, appLog, appConf.ConfigQueue.QueueURL)
	consumer.Start()

	appLog.Info("init http service")
	appHTTPServer := routes.InitAppRouter(appLog, serviceUploads, serviceSplitter, serviceProgress,
		repoContact, fmt.Sprintf(":%d", appConf.AppPort))
	defer func() {
		if err = appHTTPServer.Stop(); err != nil {
			appLog.Fatal("unable to stop http service", err)
		}
	}()
	go func() {
		if err = appHTTPServer.Run(); err != nil {
			appLog.Fatal("unable to start http service", err)
		}
	}()

	// register app shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c // This blocks the main thread until an interrupt is received
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err = consumer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("unable to stop queue consumer", err)
	}
}

func getDBConnect(log logger.AppLogger, cnf *config.DBConf, migratesFolder string) (*database.DBConnect, error) {
	for i := 0; i < 5; i++ {
		dbConnect, err := database.InitDBConnect(cnf, migratesFolder)
		if err == nil {
			return dbConnect, nil
		}
		log.Error("can't connect to db", err, slog.Int("attempt", i))
		time.Sleep(time.Duration(i) * time.Second * 5)
	}
	return nil, fmt.Errorf("can't connect to db")
}

func getAWSConfig(ctx context.Context, appConf *config.AppConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(appConf.ConfigStorage.Region),
	}
	if appConf.ConfigStorage.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				appConf.ConfigStorage.AccessKeyID,
				appConf.ConfigStorage.SecretAccessKey,
				"",
			)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}
