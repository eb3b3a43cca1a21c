// Package submit hands customization snapshots to their collaborators.
package submit

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// Acknowledgement is the message shown once a snapshot was handed off.
const Acknowledgement = "Submitted! Check the log for output."

// Submitter receives a finished customization.
type Submitter interface {
	Name() string
	Submit(ctx context.Context, req customization.Request) error
}

// LogSubmitter records the snapshot as a structured log entry.
type LogSubmitter struct {
	log *logger.Logger
}

// NewLogSubmitter creates a LogSubmitter writing to log.
func NewLogSubmitter(log *logger.Logger) *LogSubmitter {
	return &LogSubmitter{log: log}
}

func (s *LogSubmitter) Name() string { return "log" }

// Submit writes req. It only fails when ctx is already done.
func (s *LogSubmitter) Submit(ctx context.Context, req customization.Request) error {
	if err := ctx.Err(); err != nil {
		return teeerrors.NewSubmissionError(s.Name(), err)
	}
	s.log.WithFields(req.Fields()).Info("customization submitted")
	return nil
}

// Chain fans a snapshot out to every submitter in order. All submitters
// run even when an earlier one fails.
type Chain []Submitter

func (c Chain) Name() string { return "chain" }

// Submit returns the joined errors of the failing submitters.
func (c Chain) Submit(ctx context.Context, req customization.Request) error {
	var errs []error
	for _, s := range c {
		if err := s.Submit(ctx, req); err != nil {
			var subErr *teeerrors.SubmissionError
			if !errors.As(err, &subErr) {
				err = teeerrors.NewSubmissionError(s.Name(), err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
