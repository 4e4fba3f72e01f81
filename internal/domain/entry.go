package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for registration input validation.
var (
	ErrNameRequired = errors.New("full name is required")
	ErrPhoneInvalid = errors.New("phone number is invalid")
)

// Entry is one submitted registration: who signed up and when.
// Entries are immutable once stored; the ledger as a whole is append-only.
type Entry struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewEntry returns an Entry with the given fields. FullName must already be
// trimmed and Phone already canonical; the registration service is the only
// producer.
func NewEntry(id, fullName, phone string, submittedAt time.Time) Entry {
	return Entry{
		ID:          id,
		FullName:    fullName,
		Phone:       phone,
		SubmittedAt: submittedAt,
	}
}

// SlotStore is the low-level persistence port: a string-keyed store where
// each named slot holds one serialized value, replaced wholesale on write.
type SlotStore interface {
	// Get returns the slot value. ok is false when the slot does not exist.
	Get(ctx context.Context, name string) (value string, ok bool, err error)
	// Set stores value under name, atomically replacing any previous value.
	Set(ctx context.Context, name, value string) error
}

// Ledger is the ordered collection of entries persisted in one named slot.
//
// Read recovers from an absent, corrupt, or unreadable slot by returning the
// empty sequence; it never fails. Append inserts at the tail via
// read-modify-write and persists the whole sequence as one replacement.
// Write replaces the sequence wholesale and is the only way entries leave
// the ledger; no HTTP surface exposes it.
type Ledger interface {
	Read(ctx context.Context) []Entry
	Append(ctx context.Context, e Entry) error
	Write(ctx context.Context, entries []Entry) error
}

// SubmitInput is the raw form input for a registration submission.
type SubmitInput struct {
	FullName string
	Phone    string
}

// RegistrationService defines the visitor-facing operations: submitting a
// registration and listing existing ones.
type RegistrationService interface {
	// Submit validates in, builds the entry, and appends it to the ledger.
	// It returns ErrNameRequired or ErrPhoneInvalid (possibly wrapped) on
	// invalid input, in which case the ledger is guaranteed untouched.
	Submit(ctx context.Context, in SubmitInput) (Entry, error)
	// List returns all entries newest first; entries with equal timestamps
	// keep their stored order.
	List(ctx context.Context) []Entry
}
