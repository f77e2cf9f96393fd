package queue

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string
	Body      any
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string
	Failed     []string
}

// Sender is the domain boundary for enqueueing refresh jobs.
type Sender interface {
	SendMessage(queueName string, body any) error
	SendMessageBatch(queueName string, messages []BatchMessage) (*BatchResult, error)
}
