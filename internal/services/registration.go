package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
)

// RegistrationState is the state of one registration form.
type RegistrationState int

const (
	StateIdle RegistrationState = iota
	StateSubmitting
	StateSuccess
	StateDuplicateRejected
	StateStoreError
)

func (s RegistrationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateDuplicateRejected:
		return "duplicate_rejected"
	case StateStoreError:
		return "store_error"
	default:
		return fmt.Sprintf("RegistrationState(%d)", int(s))
	}
}

// RegistrationWorkflow registers one person for one event against a local
// snapshot of that event.
//
// Each attempt performs exactly one existence read and at most one insert.
// The read and the insert are not atomic: two concurrent attempts with the
// same phone can both pass the read. The store's (event_id, phone) unique
// index rejects the second insert, which is reported as a duplicate.
// Capacity is checked against the snapshot only, so it may admit a
// registration past a limit that another client has just reached.
type RegistrationWorkflow struct {
	store   domain.RegistrationRepository
	regions *geo.Table
	now     func() time.Time

	mu    sync.Mutex
	event domain.Event
	state RegistrationState
}

// NewRegistrationWorkflow returns an Idle workflow over a copy of event.
// The district must be one of the regions in the table; a nil table accepts
// any non-empty district.
func NewRegistrationWorkflow(store domain.RegistrationRepository, regions *geo.Table, event *domain.Event) *RegistrationWorkflow {
	return &RegistrationWorkflow{
		store:   store,
		regions: regions,
		now:     time.Now,
		event:   *event,
		state:   StateIdle,
	}
}

// State returns the current state of the form.
func (w *RegistrationWorkflow) State() RegistrationState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Event returns a copy of the local event snapshot.
func (w *RegistrationWorkflow) Event() *domain.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.event
	return &e
}

// Reset returns a finished workflow to Idle. It has no effect while a
// submission is in flight.
func (w *RegistrationWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSubmitting {
		w.state = StateIdle
	}
}

// Submit runs one registration attempt.
//
// Validation and capacity failures are decided locally, never reach the store
// and leave the state unchanged. Otherwise the outcome is Success, a
// DuplicateRejected error matching domain.ErrAlreadyRegistered, or a
// StoreError matching domain.ErrStoreUnavailable.
func (w *RegistrationWorkflow) Submit(ctx context.Context, form domain.RegistrationForm) (*domain.Registration, error) {
	w.mu.Lock()
	switch w.state {
	case StateSubmitting:
		w.mu.Unlock()
		return nil, domain.ErrSubmissionInProgress
	case StateSuccess, StateDuplicateRejected:
		w.mu.Unlock()
		return nil, domain.ErrSubmissionFinished
	}

	reg, err := w.prepare(form)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.state = StateSubmitting
	w.mu.Unlock()

	state, err := w.write(ctx, reg)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = state
	if err != nil {
		return nil, err
	}
	w.event.RegisteredCount++
	return reg, nil
}

// prepare validates the form and checks capacity. Callers hold mu.
func (w *RegistrationWorkflow) prepare(form domain.RegistrationForm) (*domain.Registration, error) {
	var problems []string
	name := strings.TrimSpace(form.Name)
	if name == "" {
		problems = append(problems, "name is required")
	}
	phone, ok := NormalizePhone(form.Phone)
	if !ok {
		problems = append(problems, "phone must be a valid Uzbek number (+998XXXXXXXXX)")
	}
	district := strings.TrimSpace(form.District)
	switch {
	case district == "":
		problems = append(problems, "district is required")
	case w.regions != nil:
		region, ok := w.regions.RegionFor(district)
		if !ok {
			problems = append(problems, fmt.Sprintf("district %q is not a Tashkent district", district))
		} else {
			district = region.Name
		}
	}
	email := optionalString(form.Email)
	if email != nil && !validEmail(*email) {
		problems = append(problems, "email is not valid")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	if w.event.IsFull() {
		return nil, domain.ErrEventFull
	}
	return domain.NewRegistration(w.event.ID, name, phone, district, email, w.now()), nil
}

func (w *RegistrationWorkflow) write(ctx context.Context, reg *domain.Registration) (RegistrationState, error) {
	_, err := w.store.GetByEventAndPhone(ctx, reg.EventID, reg.Phone)
	switch {
	case err == nil:
		return StateDuplicateRejected, domain.ErrAlreadyRegistered
	case !errors.Is(err, domain.ErrNotFound):
		return StateStoreError, fmt.Errorf("check registration: %w: %w", domain.ErrStoreUnavailable, err)
	}

	if err := w.store.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return StateDuplicateRejected, domain.ErrAlreadyRegistered
		}
		return StateStoreError, fmt.Errorf("create registration: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return StateSuccess, nil
}
