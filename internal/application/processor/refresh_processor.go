package processor

import (
	"encoding/json"
	"fmt"
	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/usecase/department"
	"frost-api/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type RefreshProcessor struct {
	departmentUseCase department.UseCase
}

func NewRefreshProcessor(departmentUseCase department.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		departmentUseCase: departmentUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	log.Infof("Processing refresh message: %s", *msg.MessageId)

	// Parse the message body as a Department entity
	var dept entity.Department
	if err := json.Unmarshal([]byte(*msg.Body), &dept); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if err := p.departmentUseCase.RefreshDepartment(dept); err != nil {
		return fmt.Errorf("failed to refresh department %s: %w", dept.Code, err)
	}

	log.Infof("Successfully processed refresh for department: %s", dept.Code)
	return nil
}
