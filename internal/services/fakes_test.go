package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
)

var testRegions = geo.MustDefault()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRegistrationRepo is an in-memory RegistrationRepository that counts calls.
type fakeRegistrationRepo struct {
	mu        sync.Mutex
	byKey     map[string]*domain.Registration
	nextID    int
	getErr    error
	createErr error
	reads     int
	writes    int
	// beforeCreate runs inside Create before the insert, so tests can
	// interleave a competing attempt.
	beforeCreate func()
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{byKey: make(map[string]*domain.Registration), nextID: 1}
}

func regKey(eventID, phone string) string { return eventID + "|" + phone }

func (f *fakeRegistrationRepo) seed(reg *domain.Registration) {
	f.byKey[regKey(reg.EventID, reg.Phone)] = reg
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.beforeCreate != nil {
		f.beforeCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.createErr != nil {
		return f.createErr
	}
	k := regKey(reg.EventID, reg.Phone)
	if _, ok := f.byKey[k]; ok {
		return domain.ErrAlreadyRegistered
	}
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.nextID++
	f.byKey[k] = reg
	return nil
}

func (f *fakeRegistrationRepo) GetByEventAndPhone(ctx context.Context, eventID, phone string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if r, ok := f.byKey[regKey(eventID, phone)]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Registration{}
	for _, r := range f.byKey {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events []*domain.Event
	err    error
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeAmbassadorRepo struct {
	ambassadors []*domain.Ambassador
	err         error
	calls       int
}

func (f *fakeAmbassadorRepo) List(ctx context.Context) ([]*domain.Ambassador, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ambassadors, nil
}

// fakeEmailService records every email it is asked to send.
type fakeEmailService struct {
	mu            sync.Mutex
	confirmations []*domain.RegistrationConfirmationEmailData
	teamRequests  []*domain.TeamRequestNotificationEmailData
	contacts      []*domain.ContactNotificationEmailData
	err           error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, data)
	return f.err
}

func (f *fakeEmailService) SendTeamRequestNotification(ctx context.Context, data *domain.TeamRequestNotificationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamRequests = append(f.teamRequests, data)
	return f.err
}

func (f *fakeEmailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, data)
	return f.err
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
