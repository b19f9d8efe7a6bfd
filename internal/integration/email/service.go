package email

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// Recipient is the address notifications are sent to.
type Recipient struct {
	Email string
	Name  string
}

// Service queues notifications for the worker to deliver.
type Service struct {
	queue      adapter.EmailQueueRepository
	recipient  Recipient
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, recipient Recipient, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		recipient:  recipient,
		appBaseURL: appBaseURL,
	}
}

// QueueBudgetAlert queues an overspend alert for the owner.
func (s *Service) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	if s.recipient.Email == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeNoRecipient,
			"no owner email configured",
			domainerror.ErrNoRecipient,
		)
	}

	subject := fmt.Sprintf("Budget '%s' exceeded - FinApple", input.BudgetName)

	templateData := map[string]interface{}{
		"recipient_name": s.recipient.Name,
		"budget_id":      input.BudgetID,
		"budget_name":    input.BudgetName,
		"limit":          input.Limit,
		"spent":          input.Spent,
		"overspent":      input.Overspent,
		"currency":       input.Currency,
		"transaction_id": input.Transaction,
		"budgets_url":    s.appBaseURL + "/budgets",
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		s.recipient.Email,
		s.recipient.Name,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert",
			err,
		)
	}

	return nil
}

var _ adapter.EmailService = (*Service)(nil)
