package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	applog "oceanbistro/internal/log"
)

var (
	// ErrInvalid wraps validation failures returned by Submit.
	ErrInvalid = errors.New("contact: form is invalid")
	// ErrInFlight is returned by Submit while a previous submission is sending.
	ErrInFlight = errors.New("contact: submission already in flight")
)

// State is a snapshot of the form for rendering.
type State struct {
	Values Values
	Errors Errors
	Status Status
}

// Controller owns the state of one contact form.
type Controller struct {
	sender Sender

	mu       sync.Mutex
	values   Values
	errors   Errors
	status   Status
	observer func(Status)
}

// NewController returns an empty idle form that delivers through sender.
// A nil sender uses a SimulatedSender with DefaultDelay.
func NewController(sender Sender) *Controller {
	if sender == nil {
		sender = NewSimulatedSender(DefaultDelay)
	}
	return &Controller{
		sender: sender,
		errors: Errors{},
		status: StatusIdle,
	}
}

// OnStatus registers fn to be called after every status transition.
func (c *Controller) OnStatus(fn func(Status)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = fn
}

// UpdateField overwrites one field without validating it.
func (c *Controller) UpdateField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Set(field, value)
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// State returns a copy of the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make(Errors, len(c.errors))
	for k, v := range c.errors {
		errs[k] = v
	}
	return State{Values: c.values, Errors: errs, Status: c.status}
}

// Submit validates the form and, when valid, delivers it through the sender.
// Invalid forms keep their status; successful deliveries clear the values.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSending {
		c.mu.Unlock()
		return ErrInFlight
	}
	errs := Validate(c.values)
	c.errors = errs
	if len(errs) > 0 {
		c.mu.Unlock()
		applog.Debug(ctx, "contact form rejected", "invalidFields", len(errs))
		return fmt.Errorf("%w: %d invalid field(s)", ErrInvalid, len(errs))
	}
	submission := Submission{ID: uuid.NewString(), Values: c.values}
	notify := c.transition(StatusSending)
	c.mu.Unlock()
	notify()

	applog.Debug(ctx, "contact submission sending", "submission", submission.ID)
	err := c.sender.Send(ctx, submission)

	c.mu.Lock()
	if err != nil {
		notify = c.transition(StatusError)
	} else {
		c.values = Values{}
		notify = c.transition(StatusSuccess)
	}
	c.mu.Unlock()
	notify()

	if err != nil {
		applog.Error(ctx, "contact submission failed", "submission", submission.ID, "error", err)
		return fmt.Errorf("send contact submission: %w", err)
	}
	applog.Info(ctx, "contact submission completed", "submission", submission.ID)
	return nil
}

// transition must be called with c.mu held; the returned func must be called without it.
func (c *Controller) transition(status Status) func() {
	c.status = status
	observer := c.observer
	return func() {
		if observer != nil {
			observer(status)
		}
	}
}
