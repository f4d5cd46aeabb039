package impl

import (
	"context"
	"testing"

	domainerrors "churchadmin/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_AllStepsSucceed(t *testing.T) {
	var calls []string
	record := func(name string) func(context.Context) error {
		return func(context.Context) error {
			calls = append(calls, name)

			return nil
		}
	}

	err := newSaga(newDiscardLogger()).
		step("a", record("run a"), record("undo a")).
		step("b", record("run b"), record("undo b")).
		execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"run a", "run b"}, calls)
}

func TestSaga_CompensatesInReverseOrder(t *testing.T) {
	var calls []string
	record := func(name string) func(context.Context) error {
		return func(context.Context) error {
			calls = append(calls, name)

			return nil
		}
	}
	cause := errors.New("link failed")

	err := newSaga(newDiscardLogger()).
		step("create district", record("run district"), record("undo district")).
		step("create user", record("run user"), record("undo user")).
		step("link pastor", func(context.Context) error { return cause }, record("undo link")).
		execute(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"run district", "run user", "undo user", "undo district"}, calls)

	var provErr *domainerrors.ProvisioningError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "link pastor", provErr.Step)
	assert.NoError(t, provErr.Compensation)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domainerrors.ErrProvisioningFailed)
	assert.Equal(t, "link pastor failed: link failed", err.Error())
}

func TestSaga_CompensationErrorsAreJoined(t *testing.T) {
	undoErr := errors.New("delete refused")
	var undone []string

	err := newSaga(newDiscardLogger()).
		step("first", func(context.Context) error { return nil }, func(context.Context) error {
			undone = append(undone, "first")

			return nil
		}).
		step("second", func(context.Context) error { return nil }, func(context.Context) error { return undoErr }).
		step("third", func(context.Context) error { return errors.New("boom") }, nil).
		execute(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"first"}, undone, "a failing compensation does not stop the rollback")
	assert.ErrorIs(t, err, undoErr)
	assert.Contains(t, err.Error(), "(rollback: undo second: delete refused)")
}

func TestSaga_CompensatesAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var compensationCtxErr error

	err := newSaga(newDiscardLogger()).
		step("create", func(context.Context) error { return nil }, func(ctx context.Context) error {
			compensationCtxErr = ctx.Err()

			return nil
		}).
		step("link", func(context.Context) error {
			cancel()

			return context.Canceled
		}, nil).
		execute(ctx)

	require.Error(t, err)
	assert.NoError(t, compensationCtxErr)
}
