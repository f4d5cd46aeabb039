package impl

import (
	"context"
	"log/slog"

	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/errors"
)

// sagaStep is one write of a multi-write flow. compensate may be nil for
// steps that leave nothing behind.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga runs steps in order. When a step fails, the compensations of every
// completed step run in reverse order and the flow fails as a whole.
type saga struct {
	steps  []sagaStep
	logger *slog.Logger
}

func newSaga(logger *slog.Logger) *saga {
	return &saga{logger: logger}
}

// step appends a step and returns the saga for chaining.
func (s *saga) step(name string, run, compensate func(ctx context.Context) error) *saga {
	s.steps = append(s.steps, sagaStep{name: name, run: run, compensate: compensate})

	return s
}

// execute runs the steps. On failure it returns a *domainerrors.ProvisioningError
// naming the failed step.
func (s *saga) execute(ctx context.Context) error {
	for i, st := range s.steps {
		if err := st.run(ctx); err != nil {
			s.logger.Warn("Saga step failed, compensating", slog.String("step", st.name), slog.Any("error", err))

			return &domainerrors.ProvisioningError{
				Step:         st.name,
				Cause:        err,
				Compensation: s.rollback(ctx, i),
			}
		}
	}

	return nil
}

// rollback compensates steps [0, failed) in reverse order. It keeps going
// after a compensation error so that as much as possible is undone.
func (s *saga) rollback(ctx context.Context, failed int) error {
	// The request context may already be cancelled; compensation must still run.
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := failed - 1; i >= 0; i-- {
		st := s.steps[i]
		if st.compensate == nil {
			continue
		}
		if err := st.compensate(ctx); err != nil {
			s.logger.Error("Saga compensation failed", slog.String("step", st.name), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "undo %s", st.name))
		}
	}

	return errors.Join(errs...)
}
