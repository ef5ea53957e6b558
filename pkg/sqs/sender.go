package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSClient defines the interface for SQS operations used by the Sender
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient

	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes the provided body to JSON and sends it to the named queue
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// getQueueURL resolves and caches the URL of the named queue
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	url, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return url, nil
	}

	output, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *output.QueueUrl
	s.mu.Unlock()

	return *output.QueueUrl, nil
}
