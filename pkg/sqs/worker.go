package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"frost-api/pkg/log"
)

// Handler defines an interface that processes a SQS message
type Handler interface {
	HandleMessage(msg *types.Message) error
}

// HandlerFunc defines a function that handles a SQS message
type HandlerFunc func(msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg *types.Message) error {
	return f(msg)
}

// WorkerStatus is the health status of a worker
type WorkerStatus string

const (
	StatusUp   WorkerStatus = "UP"
	StatusDown WorkerStatus = "DOWN"
)

// WorkerHealth is the health snapshot of a worker
type WorkerHealth struct {
	Status  WorkerStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
}

// Worker polls a SQS queue and dispatches messages to a Handler through a
// bounded goroutine pool. A message is deleted from the queue only when the
// handler returns nil.
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	lastError atomic.Value
}

// NewWorker creates and returns a new Worker.
//
// Defaults when the config is nil or fields are zero:
//   - MaxNumberOfMessages: 10 (must be 1-10)
//   - WaitTimeSeconds: 20 (must be 1-20)
//   - PoolSize: 1
func NewWorker(sqsClient SQSClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	result, err := sqsClient.GetQueueUrl(context.Background(), &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		handler:             handler,
	}, nil
}

// Start polls the queue until the context is cancelled. It blocks; run it in
// a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	log.Infof("SQS worker started for queue %s (pool size %d)", w.queueName, w.poolSize)

	sem := make(chan struct{}, w.poolSize)
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			log.Infof("SQS worker stopped for queue %s", w.queueName)
			return
		default:
		}

		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &w.queueURL,
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				wg.Wait()
				return
			}
			w.lastError.Store(err.Error())
			log.Warnf("Failed to receive messages from queue %s: %v", w.queueName, err)
			time.Sleep(time.Second)
			continue
		}

		for i := range output.Messages {
			message := output.Messages[i]
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				w.process(ctx, &message)
			}()
		}
	}
}

// process runs the handler for one message and deletes it on success.
func (w *Worker) process(ctx context.Context, message *types.Message) {
	if err := w.handler.HandleMessage(message); err != nil {
		w.failed.Add(1)
		w.lastError.Store(err.Error())
		log.Warnf("Handler failed for message on queue %s: %v", w.queueName, err)
		return
	}

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		w.failed.Add(1)
		w.lastError.Store(err.Error())
		log.Warnf("Failed to delete message from queue %s: %v", w.queueName, err)
		return
	}

	w.processed.Add(1)
}

// HealthCheck reports whether the worker loop is running plus its counters.
func (w *Worker) HealthCheck() WorkerHealth {
	status := StatusDown
	if w.running.Load() {
		status = StatusUp
	}

	details := map[string]string{
		"queue":     w.queueName,
		"pool_size": strconv.Itoa(w.poolSize),
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if lastErr, ok := w.lastError.Load().(string); ok && lastErr != "" {
		details["last_error"] = lastErr
	}

	return WorkerHealth{Status: status, Details: details}
}
