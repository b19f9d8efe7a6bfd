// Package advice contains the financial tip use case.
package advice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finapple/backend/internal/application/adapter"
)

// Tip sources.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// GetAdviceOutput represents a financial tip.
type GetAdviceOutput struct {
	Tip    string
	Source string
}

// GetAdviceUseCase asks the remote advisor for a tip and falls back to the
// local one when it is not configured, fails or times out.
type GetAdviceUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	remote       adapter.Advisor
	local        adapter.Advisor
	timeout      time.Duration
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance. remote may be nil.
func NewGetAdviceUseCase(snapshotRepo adapter.SnapshotRepository, remote, local adapter.Advisor, timeout time.Duration) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		snapshotRepo: snapshotRepo,
		remote:       remote,
		local:        local,
		timeout:      timeout,
	}
}

// Execute returns a tip.
func (uc *GetAdviceUseCase) Execute(ctx context.Context) (*GetAdviceOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	request := &adapter.AdviceRequest{
		Wallets:      s.Wallets,
		Budgets:      s.Budgets,
		Envelopes:    s.Envelopes,
		Transactions: s.Transactions,
		Language:     s.Settings.Language,
	}

	if uc.remote != nil && uc.remote.IsAvailable() {
		remoteCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		tip, err := uc.remote.Advise(remoteCtx, request)
		cancel()
		if err == nil && tip != "" {
			return &GetAdviceOutput{Tip: tip, Source: SourceRemote}, nil
		}
		slog.Warn("Remote advisor failed, using local tips", "error", err)
	}

	tip, err := uc.local.Advise(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get local tip: %w", err)
	}
	return &GetAdviceOutput{Tip: tip, Source: SourceLocal}, nil
}
