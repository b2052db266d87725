package services

//go:generate mockgen -source=submission.go -destination=submission_mock_test.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

const (
	// DefaultSuccessDisplayWindow is how long a settled swap stays visible before the form resets.
	DefaultSuccessDisplayWindow = 3 * time.Second
)

var (
	// ErrNotSubmittable is returned when a preview or confirm is requested for an invalid form.
	ErrNotSubmittable = errors.New("swap is not submittable")
	// ErrInvalidTransition is returned when an action is not allowed in the current status.
	ErrInvalidTransition = errors.New("invalid submission transition")
	// ErrSettlement wraps failures reported by the settlement backend.
	ErrSettlement = errors.New("settlement failed")
	// ErrFlowClosed is returned once the flow has been torn down.
	ErrFlowClosed = errors.New("submission flow closed")
)

// Scheduler runs action once after delay. The returned func cancels it.
type Scheduler interface {
	Schedule(delay time.Duration, action func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(delay time.Duration, action func()) func() {
	t := time.AfterFunc(delay, action)
	return func() { t.Stop() }
}

// TimerScheduler schedules actions with time.AfterFunc.
var TimerScheduler Scheduler = timerScheduler{}

// Settler finalizes a confirmed swap.
type Settler interface {
	Settle(ctx context.Context, holder string, preview models.SwapPreview) error
}

// SwapForm is the part of the form the submission flow drives.
type SwapForm interface {
	Preview(now time.Time) (models.SwapPreview, error)
	Submittable() bool
	ClearAmount() models.FormState
}

// SwapSubmissionFlow drives preview -> confirm -> settle -> reset for one form.
// It is the only writer of the submission status.
type SwapSubmissionFlow struct {
	mu            sync.Mutex
	holder        string
	form          SwapForm
	settler       Settler
	scheduler     Scheduler
	displayWindow time.Duration
	now           func() time.Time

	submission models.SwapSubmission
	// generation invalidates settlement results and timers that belong to an
	// abandoned transition.
	generation   uint64
	cancelReset  func()
	cancelSettle context.CancelFunc
	closed       bool
	inflight     sync.WaitGroup
}

// NewSwapSubmissionFlow creates an idle flow.
func NewSwapSubmissionFlow(
	holder string,
	form SwapForm,
	settler Settler,
	scheduler Scheduler,
	displayWindow time.Duration,
) *SwapSubmissionFlow {
	if scheduler == nil {
		scheduler = TimerScheduler
	}
	if displayWindow <= 0 {
		displayWindow = DefaultSuccessDisplayWindow
	}
	return &SwapSubmissionFlow{
		holder:        holder,
		form:          form,
		settler:       settler,
		scheduler:     scheduler,
		displayWindow: displayWindow,
		now:           time.Now,
		submission:    models.SwapSubmission{Status: models.StatusIdle},
	}
}

// Submission returns a copy of the current submission.
func (f *SwapSubmissionFlow) Submission() models.SwapSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.submission
	if s.Preview != nil {
		p := *s.Preview
		s.Preview = &p
	}
	return s
}

// Status returns the current lifecycle status.
func (f *SwapSubmissionFlow) Status() models.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submission.Status
}

// RequestPreview freezes the current form figures and moves idle -> previewing.
func (f *SwapSubmissionFlow) RequestPreview() (models.SwapPreview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(models.StatusIdle); err != nil {
		return models.SwapPreview{}, err
	}

	now := f.now()
	preview, err := f.form.Preview(now)
	if err != nil {
		return models.SwapPreview{}, err
	}

	f.submission = models.SwapSubmission{
		ID:        uuid.NewString(),
		Status:    models.StatusPreviewing,
		Preview:   &preview,
		StartedAt: now,
	}
	logger.Log.Infow("swap preview requested",
		"holder", f.holder,
		"submission_id", f.submission.ID,
		"from", preview.Source.Symbol,
		"to", preview.Target.Symbol,
		"amount", preview.SourceAmount,
	)
	return preview, nil
}

// Cancel abandons a preview. It is a no-op when idle.
func (f *SwapSubmissionFlow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFlowClosed
	}
	switch f.submission.Status {
	case models.StatusIdle:
		return nil
	case models.StatusPreviewing:
		logger.Log.Infow("swap preview cancelled", "holder", f.holder, "submission_id", f.submission.ID)
		f.submission = models.SwapSubmission{Status: models.StatusIdle}
		return nil
	default:
		return fmt.Errorf("%w: cannot cancel while %s", ErrInvalidTransition, f.submission.Status)
	}
}

// Confirm starts settlement of the previewed swap. While a settlement is in
// flight further calls are no-ops.
func (f *SwapSubmissionFlow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFlowClosed
	}
	if f.submission.Status == models.StatusConfirming {
		logger.Log.Debugw("duplicate confirm ignored", "holder", f.holder, "submission_id", f.submission.ID)
		return nil
	}
	if err := f.expect(models.StatusPreviewing); err != nil {
		return err
	}
	if !f.form.Submittable() {
		return ErrNotSubmittable
	}

	preview := *f.submission.Preview
	f.submission.Status = models.StatusConfirming
	f.generation++
	gen := f.generation

	settleCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancelSettle = cancel

	logger.Log.Infow("swap confirmed", "holder", f.holder, "submission_id", f.submission.ID)

	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()
		defer cancel()
		err := f.settler.Settle(settleCtx, f.holder, preview)
		f.resolve(gen, err)
	}()
	return nil
}

// Dismiss hides a settled swap right away instead of waiting for the display window.
func (f *SwapSubmissionFlow) Dismiss() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(models.StatusSettled); err != nil {
		return err
	}
	f.reset()
	return nil
}

// Wait blocks until the in-flight settlement, if any, has resolved.
func (f *SwapSubmissionFlow) Wait() {
	f.inflight.Wait()
}

// Close tears the flow down: the reset timer and any in-flight settlement are
// cancelled and their late results are discarded.
func (f *SwapSubmissionFlow) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.generation++
	f.stopTimer()
	if f.cancelSettle != nil {
		f.cancelSettle()
		f.cancelSettle = nil
	}
	f.mu.Unlock()

	f.inflight.Wait()
}

func (f *SwapSubmissionFlow) resolve(gen uint64, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.generation || f.submission.Status != models.StatusConfirming {
		return
	}
	f.cancelSettle = nil

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSettlement, err)
		logger.Log.Errorw("swap settlement failed",
			"holder", f.holder,
			"submission_id", f.submission.ID,
			"error", err,
		)
		f.submission = models.SwapSubmission{Status: models.StatusIdle, LastError: err.Error()}
		return
	}

	f.submission.Status = models.StatusSettled
	f.submission.SettledAt = f.now()
	logger.Log.Infow("swap settled", "holder", f.holder, "submission_id", f.submission.ID)

	f.cancelReset = f.scheduler.Schedule(f.displayWindow, func() { f.autoReset(gen) })
}

func (f *SwapSubmissionFlow) autoReset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.generation || f.submission.Status != models.StatusSettled {
		return
	}
	f.cancelReset = nil
	f.reset()
}

// reset returns a settled flow to idle and clears the form amounts.
func (f *SwapSubmissionFlow) reset() {
	f.stopTimer()
	f.generation++
	f.form.ClearAmount()
	f.submission = models.SwapSubmission{Status: models.StatusIdle}
}

func (f *SwapSubmissionFlow) stopTimer() {
	if f.cancelReset != nil {
		f.cancelReset()
		f.cancelReset = nil
	}
}

func (f *SwapSubmissionFlow) expect(status models.SubmissionStatus) error {
	if f.closed {
		return ErrFlowClosed
	}
	if f.submission.Status != status {
		return fmt.Errorf("%w: %s, want %s", ErrInvalidTransition, f.submission.Status, status)
	}
	return nil
}
