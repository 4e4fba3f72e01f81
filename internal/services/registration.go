package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"guestlist/internal/domain"
	"guestlist/internal/observability"
	"guestlist/internal/phone"
)

type registrationService struct {
	ledger domain.Ledger
}

// NewRegistrationService creates a RegistrationService over the given ledger.
func NewRegistrationService(ledger domain.Ledger) domain.RegistrationService {
	return &registrationService{
		ledger: ledger,
	}
}

func (s *registrationService) Submit(ctx context.Context, in domain.SubmitInput) (domain.Entry, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		observability.ValidationFailures.WithLabelValues("full_name").Inc()
		return domain.Entry{}, domain.ErrNameRequired
	}

	canonical, err := phone.Normalize(in.Phone)
	if err != nil {
		observability.ValidationFailures.WithLabelValues("phone").Inc()
		return domain.Entry{}, fmt.Errorf("%w: %w", domain.ErrPhoneInvalid, err)
	}

	entry := domain.NewEntry(uuid.NewString(), fullName, canonical, time.Now().UTC())
	if err := s.ledger.Append(ctx, entry); err != nil {
		return domain.Entry{}, fmt.Errorf("append registration: %w", err)
	}
	observability.Registrations.Inc()
	return entry, nil
}

func (s *registrationService) List(ctx context.Context) []domain.Entry {
	entries := s.ledger.Read(ctx)
	// Newest first; equal timestamps keep their stored order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SubmittedAt.After(entries[j].SubmittedAt)
	})
	return entries
}
