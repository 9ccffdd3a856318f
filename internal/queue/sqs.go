package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mike-pete/cms/internal/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
}

var _ Publisher = (*SQSPublisher)(nil)

func NewSQSPublisher(client *sqs.Client, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

func (p *SQSPublisher) PublishChunk(ctx context.Context, job *entities.ChunkJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("error marshal chunk job: %w", err)
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("error publish chunk job: %w", err)
	}
	return nil
}
