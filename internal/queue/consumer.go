package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Consumer long-polls the chunk queue and hands each delivery to the
// handler. Messages are deleted only after the handler succeeds, failures
// stay on the queue until the visibility timeout expires and the queue
// redelivers.
type Consumer struct {
	client   *sqs.Client
	handler  ChunkHandler
	logger   logger.AppLogger
	queueURL string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewConsumer(parent context.Context, client *sqs.Client, handler ChunkHandler, log logger.AppLogger, queueURL string) *Consumer {
	ctx, cancel := context.WithCancel(parent)
	return &Consumer{
		client:   client,
		handler:  handler,
		logger:   log.With(slog.String("service", "queue_consumer")),
		queueURL: queueURL,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (c *Consumer) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.pollLoop()
	}()
}

func (c *Consumer) pollLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		out, err := c.client.ReceiveMessage(c.ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20, // long poll
			VisibilityTimeout:   60,
		})
		if err != nil {
			if c.ctx.Err() != nil {
				return
			}
			c.logger.Error("error receive messages", err)
			time.Sleep(time.Second)
			continue
		}

		// chunks of the same file carry no ordering guarantee, handle
		// deliveries in parallel
		var wg sync.WaitGroup
		wg.Add(len(out.Messages))
		for i := range out.Messages {
			go func(msg types.Message) {
				defer wg.Done()
				c.handleMessage(c.ctx, msg)
			}(out.Messages[i])
		}
		wg.Wait()
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg types.Message) {
	if msg.Body == nil {
		c.deleteMessage(ctx, msg)
		return
	}
	var job entities.ChunkJob
	if err := json.Unmarshal([]byte(*msg.Body), &job); err != nil {
		// poison message, requeueing cannot fix it
		c.logger.Error("error unmarshal chunk job, dropping message", err)
		c.deleteMessage(ctx, msg)
		return
	}
	if err := c.handler.HandleChunk(ctx, &job); err != nil {
		// leave on queue for redelivery
		c.logger.Error("error handle chunk job", err,
			slog.Int64("file_id", job.FileID),
			slog.Int("chunk_number", job.ChunkNumber))
		return
	}
	c.deleteMessage(ctx, msg)
}

func (c *Consumer) deleteMessage(ctx context.Context, msg types.Message) {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		c.logger.Error("error delete message", err)
	}
}

func (c *Consumer) Shutdown(ctx context.Context) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
