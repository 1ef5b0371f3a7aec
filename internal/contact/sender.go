package contact

import (
	"context"
	"time"

	applog "oceanbistro/internal/log"
)

// DefaultDelay approximates the latency of a real message delivery.
const DefaultDelay = 700 * time.Millisecond

// Submission is a validated form handed to a Sender.
type Submission struct {
	ID     string
	Values Values
}

// Sender delivers a submission. It is the only source of submission failures.
type Sender interface {
	Send(ctx context.Context, submission Submission) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, submission Submission) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, submission Submission) error {
	return f(ctx, submission)
}

// SimulatedSender waits for Delay and reports success without transmitting anything.
type SimulatedSender struct {
	Delay time.Duration
}

// NewSimulatedSender returns a sender with the given delay, or DefaultDelay when
// delay is negative.
func NewSimulatedSender(delay time.Duration) *SimulatedSender {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &SimulatedSender{Delay: delay}
}

// Send blocks for the configured delay or until ctx is done.
func (s *SimulatedSender) Send(ctx context.Context, submission Submission) error {
	applog.Debug(ctx, "simulating contact delivery", "submission", submission.ID, "delay", s.Delay.String())
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
