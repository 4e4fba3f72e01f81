package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"guestlist/internal/domain"
	"guestlist/internal/observability"
)

type ledgerService struct {
	store  domain.SlotStore
	slot   string
	logger *slog.Logger

	// mu serializes Append's read-modify-write and Write against each other
	// within this process. Separate processes sharing the same database file
	// remain last-write-wins.
	mu sync.Mutex
}

// NewLedgerService creates a Ledger persisting all entries as one JSON array
// in the named slot of the given store.
func NewLedgerService(store domain.SlotStore, slot string, logger *slog.Logger) domain.Ledger {
	return &ledgerService{
		store:  store,
		slot:   slot,
		logger: logger,
	}
}

// Read loads the stored sequence. An absent slot is the normal initial state
// and yields the empty sequence silently; an unreadable or corrupt slot is
// logged, counted, and also yields the empty sequence. Read never fails.
func (l *ledgerService) Read(ctx context.Context) []domain.Entry {
	raw, ok, err := l.store.Get(ctx, l.slot)
	if err != nil {
		l.logger.ErrorContext(ctx, "ledger slot unavailable, serving empty", "slot", l.slot, "error", err)
		observability.LedgerReadRecoveries.WithLabelValues("unavailable").Inc()
		return []domain.Entry{}
	}
	if !ok || raw == "" {
		return []domain.Entry{}
	}

	var entries []domain.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		l.logger.ErrorContext(ctx, "ledger slot corrupt, serving empty", "slot", l.slot, "error", err)
		observability.LedgerReadRecoveries.WithLabelValues("corrupt").Inc()
		return []domain.Entry{}
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries
}

func (l *ledgerService) Append(ctx context.Context, e domain.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.Read(ctx), e)
	if err := l.write(ctx, entries); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

func (l *ledgerService) Write(ctx context.Context, entries []domain.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write(ctx, entries)
}

// write persists the whole sequence as one slot replacement. Callers hold mu.
func (l *ledgerService) write(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := l.store.Set(ctx, l.slot, string(raw)); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
