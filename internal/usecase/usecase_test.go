package usecase

import (
	"context"
	"io"
	"sync"

	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/domain/gateway"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func boolPtr(b bool) *bool {
	return &b
}

type subscribeCall struct {
	DoctorEmail string
	UserEmail   string
}

// fakeDoctorGateway serves a fixed list and scripted subscribe replies.
// Block channels hold a call until closed or until its context ends. A fetch
// answers with the list as it was when the call arrived.
type fakeDoctorGateway struct {
	mu             sync.Mutex
	doctors        []entity.DoctorRecord
	fetchErr       error
	fetchBlock     chan struct{}
	fetchCalls     int
	fetchReturns   int
	reply          *gateway.SubscribeReply
	subscribeErr   error
	subscribeBlock chan struct{}
	started        chan struct{}
	subscribeCalls []subscribeCall
}

func (f *fakeDoctorGateway) FetchDoctors(ctx context.Context) ([]entity.DoctorRecord, error) {
	f.mu.Lock()
	f.fetchCalls++
	block := f.fetchBlock
	doctors := make([]entity.DoctorRecord, len(f.doctors))
	copy(doctors, f.doctors)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.fetchReturns++
		f.mu.Unlock()
	}()

	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return doctors, nil
}

func (f *fakeDoctorGateway) Subscribe(ctx context.Context, doctorEmail, userEmail string) (*gateway.SubscribeReply, error) {
	f.mu.Lock()
	f.subscribeCalls = append(f.subscribeCalls, subscribeCall{DoctorEmail: doctorEmail, UserEmail: userEmail})
	block := f.subscribeBlock
	f.mu.Unlock()

	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	reply := *f.reply
	return &reply, nil
}

func (f *fakeDoctorGateway) setDoctors(doctors []entity.DoctorRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doctors = doctors
}

func (f *fakeDoctorGateway) setFetchBlock(block chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchBlock = block
}

func (f *fakeDoctorGateway) fetchesReturned() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchReturns
}

func (f *fakeDoctorGateway) calls() []subscribeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]subscribeCall, len(f.subscribeCalls))
	copy(out, f.subscribeCalls)
	return out
}

type fakePaymentGateway struct {
	reply   *gateway.PaymentReply
	err     error
	amounts []decimal.Decimal
}

func (f *fakePaymentGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal) (*gateway.PaymentReply, error) {
	f.amounts = append(f.amounts, amount)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

type auditEntry struct {
	UserEmail string
	Action    string
	EntityID  string
	Details   interface{}
}

type fakeAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
	err     error
	listErr error
}

func (f *fakeAuditService) Record(ctx context.Context, userEmail string, action string, entityName string, entityID string, details interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, auditEntry{UserEmail: userEmail, Action: action, EntityID: entityID, Details: details})
	return nil
}

func (f *fakeAuditService) ListForUser(ctx context.Context, userEmail string, limit int) ([]entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var logs []entity.AuditLog
	for i, e := range f.entries {
		if e.UserEmail != userEmail {
			continue
		}
		email := e.UserEmail
		logs = append(logs, entity.AuditLog{ID: int64(i + 1), UserEmail: &email, Action: e.Action})
	}
	return logs, nil
}

func (f *fakeAuditService) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Action
	}
	return out
}
