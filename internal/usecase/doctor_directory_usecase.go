package usecase

import (
	"context"
	"errors"

	"doctor-directory-bff/internal/converter"
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/delivery/http/middleware"
	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/domain/gateway"
	"doctor-directory-bff/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotLoggedInMessage is the blocking notice shown to anonymous subscribers.
const NotLoggedInMessage = "You must be logged in to Subscribe."

// DoctorDetailRoute is the screen opened after a successful subscription.
const DoctorDetailRoute = "DoctorsInfoWithRating"

const actionSubscribe = "subscribe"

var (
	ErrNotAuthenticated     = errors.New(NotLoggedInMessage)
	ErrSubscriptionInFlight = errors.New("subscription already in progress")
	ErrSubscribeFailed      = errors.New("subscription failed")
)

type DoctorDirectoryUsecase interface {
	OpenView(ctx context.Context, wait bool) (*dto.DirectoryViewResponse, error)
	GetView(ctx context.Context, viewID uuid.UUID) (*dto.DirectoryViewResponse, error)
	CloseView(ctx context.Context, viewID uuid.UUID) error
	ReloadView(ctx context.Context, viewID uuid.UUID) (*dto.DirectoryViewResponse, error)
	LikeDoctor(ctx context.Context, viewID uuid.UUID, doctorEmail string) (*dto.LikeResponse, error)
	SubscribeToDoctor(ctx context.Context, viewID uuid.UUID, doctorEmail string) (*dto.SubscribeResponse, error)
	SelectSlot(ctx context.Context, viewID uuid.UUID, doctorEmail string, req *dto.SelectSlotRequest) (*dto.DirectoryViewResponse, error)
}

type doctorDirectoryUsecase struct {
	log           *logrus.Logger
	registry      *service.ViewRegistry
	doctorGateway gateway.DoctorGateway
	guard         service.InflightGuard
	auditService  service.AuditService
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	registry *service.ViewRegistry,
	doctorGateway gateway.DoctorGateway,
	guard service.InflightGuard,
	auditService service.AuditService,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:           log,
		registry:      registry,
		doctorGateway: doctorGateway,
		guard:         guard,
		auditService:  auditService,
	}
}

// OpenView mounts a new directory view and starts its one-shot load.
// With wait set the call returns after the load settles.
func (u *doctorDirectoryUsecase) OpenView(ctx context.Context, wait bool) (*dto.DirectoryViewResponse, error) {
	view := u.registry.Open()
	gen, err := view.BeginLoading()
	if err != nil {
		return nil, service.ErrViewNotFound
	}

	if wait {
		u.loadDoctors(view, gen)
	} else {
		go u.loadDoctors(view, gen)
	}

	return converter.SnapshotToResponse(view.Snapshot()), nil
}

func (u *doctorDirectoryUsecase) GetView(ctx context.Context, viewID uuid.UUID) (*dto.DirectoryViewResponse, error) {
	view, err := u.registry.Get(viewID)
	if err != nil {
		return nil, err
	}
	return converter.SnapshotToResponse(view.Snapshot()), nil
}

// CloseView unmounts the view. In-flight upstream calls for it are cancelled.
func (u *doctorDirectoryUsecase) CloseView(ctx context.Context, viewID uuid.UUID) error {
	return u.registry.Close(viewID)
}

// ReloadView re-runs the loader synchronously. A failed reload keeps the
// previously loaded list, and a load still running from before is discarded
// when it returns.
func (u *doctorDirectoryUsecase) ReloadView(ctx context.Context, viewID uuid.UUID) (*dto.DirectoryViewResponse, error) {
	view, err := u.registry.Get(viewID)
	if err != nil {
		return nil, err
	}
	gen, err := view.BeginLoading()
	if err != nil {
		return nil, service.ErrViewNotFound
	}

	u.loadDoctors(view, gen)
	return converter.SnapshotToResponse(view.Snapshot()), nil
}

// LikeDoctor is an optimistic local increment. Nothing is sent upstream.
func (u *doctorDirectoryUsecase) LikeDoctor(ctx context.Context, viewID uuid.UUID, doctorEmail string) (*dto.LikeResponse, error) {
	view, err := u.registry.Get(viewID)
	if err != nil {
		return nil, err
	}

	count, err := view.Like(doctorEmail)
	if err != nil {
		return nil, service.ErrViewNotFound
	}

	userEmail, _ := middleware.GetUserEmailFromContext(ctx)
	u.audit(ctx, userEmail, entity.AuditActionDoctorLike, doctorEmail, map[string]interface{}{
		"view_id":          view.ID.String(),
		"subscriber_count": count,
	})

	return &dto.LikeResponse{Email: doctorEmail, SubscriberCount: count}, nil
}

// SubscribeToDoctor subscribes the current user to a doctor.
//
// Flow:
// 1. Anonymous callers get ErrNotAuthenticated, no upstream call
// 2. Duplicate (user, doctor) submissions in flight get ErrSubscriptionInFlight
// 3. Upstream subscribe, cancelled if the view closes or the caller goes away
// 4. Transport failure or a reply without a success flag -> ErrSubscribeFailed
// 5. success=false -> server message as notice, nothing else changes
// 6. success=true  -> count +1, navigate to the detail screen with the
// merged view-model whose subscriberCount is the prior count + 1
func (u *doctorDirectoryUsecase) SubscribeToDoctor(ctx context.Context, viewID uuid.UUID, doctorEmail string) (*dto.SubscribeResponse, error) {
	view, err := u.registry.Get(viewID)
	if err != nil {
		return nil, err
	}

	// Step 1: precondition
	userEmail, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	// Step 2: in-flight guard
	release, err := u.guard.Acquire(ctx, actionSubscribe, userEmail, doctorEmail)
	switch {
	case errors.Is(err, service.ErrActionInFlight):
		return nil, ErrSubscriptionInFlight
	case err != nil:
		// Guard is best effort; an unavailable Redis must not block subscriptions.
		u.log.Warnf("Subscribing %s to %s without in-flight guard: %+v", userEmail, doctorEmail, err)
	default:
		defer release()
	}

	// Step 3: upstream call scoped to both the view and the request
	callCtx, cancel := context.WithCancel(view.Context())
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	reply, err := u.doctorGateway.Subscribe(callCtx, doctorEmail, userEmail)
	if err != nil {
		// Step 4: transport failure
		u.log.Errorf("Subscription failed for %s -> %s: %+v", userEmail, doctorEmail, err)
		return nil, ErrSubscribeFailed
	}
	if reply.Success == nil {
		u.log.Warnf("Subscription reply for %s -> %s has no success flag, treating as failed: %q", userEmail, doctorEmail, reply.Message)
		return nil, ErrSubscribeFailed
	}

	notice := &dto.Notice{Message: reply.Message}

	// Step 5: logical failure
	if !*reply.Success {
		u.log.Infof("Subscription rejected for %s -> %s: %s", userEmail, doctorEmail, reply.Message)
		u.audit(ctx, userEmail, entity.AuditActionDoctorSubscribe, doctorEmail, map[string]interface{}{
			"accepted": false,
			"message":  reply.Message,
		})
		return &dto.SubscribeResponse{Subscribed: false, Notice: notice}, nil
	}

	// Step 6: apply and navigate
	before, err := view.RecordSubscribe(doctorEmail, userEmail)
	if err != nil {
		u.log.Debugf("View %s closed before subscription result was applied", view.ID)
		return nil, service.ErrViewNotFound
	}

	doctor, found := view.Doctor(doctorEmail)
	if !found {
		doctor = entity.DoctorRecord{Email: doctorEmail}
	}
	viewModel := converter.DoctorToViewModel(doctor, before+1)

	u.log.Infof("Subscribed %s to %s (count %d -> %d)", userEmail, doctorEmail, before, before+1)
	u.audit(ctx, userEmail, entity.AuditActionDoctorSubscribe, doctorEmail, map[string]interface{}{
		"accepted":         true,
		"message":          reply.Message,
		"subscriber_count": before + 1,
	})

	return &dto.SubscribeResponse{
		Subscribed: true,
		Notice:     notice,
		Navigation: &dto.Navigation{
			Route:  DoctorDetailRoute,
			Params: dto.DoctorDetailParams{Doctors: viewModel},
		},
	}, nil
}

func (u *doctorDirectoryUsecase) SelectSlot(ctx context.Context, viewID uuid.UUID, doctorEmail string, req *dto.SelectSlotRequest) (*dto.DirectoryViewResponse, error) {
	view, err := u.registry.Get(viewID)
	if err != nil {
		return nil, err
	}

	if err := view.SelectSlot(doctorEmail, req.Slot); err != nil {
		if errors.Is(err, service.ErrViewClosed) {
			return nil, service.ErrViewNotFound
		}
		return nil, err
	}

	userEmail, _ := middleware.GetUserEmailFromContext(ctx)
	u.audit(ctx, userEmail, entity.AuditActionSlotSelect, doctorEmail, map[string]interface{}{
		"slot": req.Slot,
	})

	return converter.SnapshotToResponse(view.Snapshot()), nil
}

// loadDoctors fetches the list once for view as load generation gen.
// Failures only reach the log; the loading flag is lowered unless a newer
// load has started meanwhile.
func (u *doctorDirectoryUsecase) loadDoctors(view *service.DirectoryView, gen uint64) {
	defer view.FinishLoading(gen)

	doctors, err := u.doctorGateway.FetchDoctors(view.Context())
	if err != nil {
		if view.Closed() {
			u.log.Debugf("Dropped doctor load for closed view %s", view.ID)
			return
		}
		u.log.Errorf("Failed to fetch doctors for view %s: %+v", view.ID, err)
		return
	}

	if err := view.ReplaceDoctors(gen, doctors); err != nil {
		if errors.Is(err, service.ErrStaleLoad) {
			u.log.Debugf("Dropped superseded doctor load for view %s", view.ID)
			return
		}
		u.log.Debugf("Dropped doctor load for closed view %s", view.ID)
		return
	}

	u.log.Infof("Loaded %d doctors into view %s", len(doctors), view.ID)
}

// audit records an action; failures are logged and never fail the caller.
func (u *doctorDirectoryUsecase) audit(ctx context.Context, userEmail, action, doctorEmail string, details map[string]interface{}) {
	if err := u.auditService.Record(ctx, userEmail, action, "doctor", doctorEmail, details); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
