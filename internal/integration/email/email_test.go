package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/integration/email/templates"
)

// memoryQueue is an in-memory adapter.EmailQueueRepository.
type memoryQueue struct {
	jobs []*entity.EmailJob
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess() && len(out) < limit {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(_ context.Context, _ *entity.EmailJob) error {
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func (q *memoryQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func alert() adapter.QueueBudgetAlertInput {
	return adapter.QueueBudgetAlertInput{
		BudgetID:   "b1",
		BudgetName: "Food",
		Limit:      "8000.00",
		Spent:      "8100.00",
		Overspent:  "100.00",
		Currency:   "UAH",
	}
}

func TestService_QueueBudgetAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("queues a job for the owner", func(t *testing.T) {
		queue := &memoryQueue{}
		svc := NewService(queue, Recipient{Email: "me@example.com", Name: "Me"}, "https://finapple.local")

		if err := svc.QueueBudgetAlert(ctx, alert()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 job, got %d", len(queue.jobs))
		}
		job := queue.jobs[0]
		if job.TemplateType != entity.TemplateBudgetAlert || job.RecipientEmail != "me@example.com" {
			t.Errorf("unexpected job: %+v", job)
		}
		if job.TemplateData["budgets_url"] != "https://finapple.local/budgets" {
			t.Errorf("unexpected budgets url: %v", job.TemplateData["budgets_url"])
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		err := NewService(&memoryQueue{}, Recipient{}, "").QueueBudgetAlert(ctx, alert())
		if !errors.Is(err, domainerror.ErrNoRecipient) {
			t.Errorf("expected ErrNoRecipient, got %v", err)
		}
	})
}

func TestWorker(t *testing.T) {
	ctx := context.Background()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	newQueue := func(t *testing.T) *memoryQueue {
		t.Helper()
		queue := &memoryQueue{}
		svc := NewService(queue, Recipient{Email: "me@example.com", Name: "Me"}, "https://finapple.local")
		if err := svc.QueueBudgetAlert(ctx, alert()); err != nil {
			t.Fatalf("queue: %v", err)
		}
		return queue
	}

	t.Run("sends and marks sent", func(t *testing.T) {
		queue := newQueue(t)
		sender := NewMockEmailSender()
		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if !strings.Contains(sent.HTML, "Food") || !strings.Contains(sent.Text, "Over by: 100.00 UAH") {
			t.Errorf("unexpected bodies:\n%s\n%s", sent.HTML, sent.Text)
		}
		job := queue.jobs[0]
		if job.Status != entity.EmailStatusSent || job.ProviderID != "mock-1" {
			t.Errorf("unexpected job state: %s %s", job.Status, job.ProviderID)
		}
	})

	t.Run("temporary failure is retried", func(t *testing.T) {
		queue := newQueue(t)
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("503"), false)
		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		job := queue.jobs[0]
		if job.Status != entity.EmailStatusPending || job.Attempts != 1 {
			t.Errorf("expected pending retry, got %s after %d attempts", job.Status, job.Attempts)
		}
	})

	t.Run("permanent failure stops", func(t *testing.T) {
		queue := newQueue(t)
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("422"), true)
		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if job := queue.jobs[0]; job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed, got %s", job.Status)
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		queue := &memoryQueue{}
		_ = queue.Create(ctx, entity.NewEmailJob("newsletter", "me@example.com", "", "Hi", nil))
		sender := NewMockEmailSender()
		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if job := queue.jobs[0]; job.Status != entity.EmailStatusFailed || len(sender.SentEmails) != 0 {
			t.Errorf("expected failed job and no email, got %s", job.Status)
		}
	})
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{nil, false},
		{errors.New("422 validation_error"), true},
		{errors.New("401 Unauthorized"), true},
		{errors.New("429 rate limit"), false},
		{errors.New("500 internal"), false},
	}
	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.expected {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.expected)
		}
	}
}
