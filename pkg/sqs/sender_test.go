package sqs

import (
	"context"
	"fmt"
	"sync"
	"testing"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type fakeSQSClient struct {
	mu            sync.Mutex
	sentBodies    []string
	batchEntries  int
	failQueueURL  bool
	failBatchSend bool
}

func (f *fakeSQSClient) GetQueueUrl(ctx context.Context, params *awssqs.GetQueueUrlInput, optFns ...func(*awssqs.Options)) (*awssqs.GetQueueUrlOutput, error) {
	if f.failQueueURL {
		return nil, fmt.Errorf("queue does not exist")
	}
	url := "https://sqs.local/" + *params.QueueName
	return &awssqs.GetQueueUrlOutput{QueueUrl: &url}, nil
}

func (f *fakeSQSClient) SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentBodies = append(f.sentBodies, *params.MessageBody)
	return &awssqs.SendMessageOutput{}, nil
}

func (f *fakeSQSClient) SendMessageBatch(ctx context.Context, params *awssqs.SendMessageBatchInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageBatchOutput, error) {
	if f.failBatchSend {
		return nil, fmt.Errorf("batch send failed")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchEntries += len(params.Entries)

	output := &awssqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		id := *entry.Id
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: &id})
	}
	return output, nil
}

func (f *fakeSQSClient) ReceiveMessage(ctx context.Context, params *awssqs.ReceiveMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.ReceiveMessageOutput, error) {
	return &awssqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQSClient) DeleteMessage(ctx context.Context, params *awssqs.DeleteMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.DeleteMessageOutput, error) {
	return &awssqs.DeleteMessageOutput{}, nil
}

func TestSendMessageSerializesBody(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	err := sender.SendMessage("refresh-queue", map[string]string{"code": "04"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if len(client.sentBodies) != 1 {
		t.Fatalf("sent %d messages, want 1", len(client.sentBodies))
	}
	if client.sentBodies[0] != `{"code":"04"}` {
		t.Errorf("body = %s, want JSON payload", client.sentBodies[0])
	}
}

func TestSendMessageQueueURLError(t *testing.T) {
	sender := NewSender(&fakeSQSClient{failQueueURL: true})

	if err := sender.SendMessage("missing-queue", "x"); err == nil {
		t.Fatal("SendMessage() error = nil, want queue URL error")
	}
}

func TestSendMessageBatchSplitsIntoBatchesOfTen(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	messages := make([]BatchMessage, 23)
	for i := range messages {
		messages[i] = BatchMessage{
			MessageID: fmt.Sprintf("dept-%02d", i),
			Body:      map[string]int{"n": i},
		}
	}

	result, err := sender.SendMessageBatch("refresh-queue", messages)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}

	if len(result.Successful) != 23 {
		t.Errorf("successful = %d, want 23", len(result.Successful))
	}
	if len(result.Failed) != 0 {
		t.Errorf("failed = %v, want none", result.Failed)
	}
	if client.batchEntries != 23 {
		t.Errorf("entries sent = %d, want 23", client.batchEntries)
	}
}

func TestSendMessageBatchReportsFullBatchFailure(t *testing.T) {
	sender := NewSender(&fakeSQSClient{failBatchSend: true})

	messages := []BatchMessage{
		{MessageID: "a", Body: 1},
		{MessageID: "b", Body: 2},
	}

	result, err := sender.SendMessageBatch("refresh-queue", messages)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if len(result.Failed) != 2 {
		t.Errorf("failed = %v, want both message IDs", result.Failed)
	}
}

func TestSendMessageBatchEmpty(t *testing.T) {
	sender := NewSender(&fakeSQSClient{})

	result, err := sender.SendMessageBatch("refresh-queue", nil)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if len(result.Successful) != 0 || len(result.Failed) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
