package advice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/integration/persistence"
)

type stubAdvisor struct {
	tip       string
	err       error
	available bool
	delay     time.Duration
	request   *adapter.AdviceRequest
}

func (s *stubAdvisor) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	s.request = request
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.tip, s.err
}

func (s *stubAdvisor) IsAvailable() bool {
	return s.available
}

func TestGetAdviceUseCase(t *testing.T) {
	ctx := context.Background()
	snapshot := entity.NewSnapshot()
	snapshot.Settings.Language = entity.LanguageUkrainian
	repo := persistence.NewMemorySnapshotRepository(snapshot)

	tests := []struct {
		name           string
		remote         *stubAdvisor
		expectedTip    string
		expectedSource string
	}{
		{
			name:           "remote tip",
			remote:         &stubAdvisor{tip: "Save more", available: true},
			expectedTip:    "Save more",
			expectedSource: SourceRemote,
		},
		{
			name:           "remote not configured",
			remote:         &stubAdvisor{tip: "Save more"},
			expectedTip:    "local tip",
			expectedSource: SourceLocal,
		},
		{
			name:           "remote error",
			remote:         &stubAdvisor{err: errors.New("quota exceeded"), available: true},
			expectedTip:    "local tip",
			expectedSource: SourceLocal,
		},
		{
			name:           "remote empty answer",
			remote:         &stubAdvisor{available: true},
			expectedTip:    "local tip",
			expectedSource: SourceLocal,
		},
		{
			name:           "remote timeout",
			remote:         &stubAdvisor{tip: "late", available: true, delay: time.Second},
			expectedTip:    "local tip",
			expectedSource: SourceLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := &stubAdvisor{tip: "local tip", available: true}
			uc := NewGetAdviceUseCase(repo, tt.remote, local, 20*time.Millisecond)

			out, err := uc.Execute(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Tip != tt.expectedTip || out.Source != tt.expectedSource {
				t.Errorf("expected %q from %s, got %q from %s", tt.expectedTip, tt.expectedSource, out.Tip, out.Source)
			}
		})
	}

	t.Run("request carries the language", func(t *testing.T) {
		local := &stubAdvisor{tip: "x"}
		if _, err := NewGetAdviceUseCase(repo, nil, local, time.Second).Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if local.request == nil || local.request.Language != entity.LanguageUkrainian {
			t.Errorf("expected ua language in request, got %+v", local.request)
		}
	})
}
