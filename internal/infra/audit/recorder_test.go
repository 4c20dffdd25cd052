package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"placement/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRepo collects appended records behind a mutex.
type captureRepo struct {
	mu      sync.Mutex
	records []entity.ActivityRecord
	err     error
}

func (r *captureRepo) Append(_ context.Context, record *entity.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, *record)

	return nil
}

func (r *captureRepo) recorded() []entity.ActivityRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.ActivityRecord(nil), r.records...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorder_RecordAndDrain(t *testing.T) {
	repo := &captureRepo{}
	recorder := newRecorder(repo, testLogger())

	recorder.Record(context.Background(), "a@example.com", entity.RoleStudent, entity.ActivitySignup)
	recorder.Record(context.Background(), "a@example.com", entity.RoleStudent, entity.ActivityLogin)

	// Close drains the buffer before returning.
	recorder.Close()

	records := repo.recorded()
	require.Len(t, records, 2)
	assert.Equal(t, "a@example.com", records[0].Email)
	assert.Equal(t, entity.ActivitySignup, records[0].Activity)
	assert.Equal(t, entity.ActivityLogin, records[1].Activity)
	assert.False(t, records[0].CreatedAt.IsZero())
	assert.Zero(t, recorder.Dropped())
}

func TestRecorder_AppendFailureIsSwallowed(t *testing.T) {
	repo := &captureRepo{err: errors.New("insert failed")}
	recorder := newRecorder(repo, testLogger())

	// Must not panic or surface the failure to the caller.
	recorder.Record(context.Background(), "b@example.com", entity.RoleAdmin, entity.ActivityLogin)
	recorder.Close()

	assert.Empty(t, repo.recorded())
}

func TestRecorder_RecordAfterCloseIsNoop(t *testing.T) {
	repo := &captureRepo{}
	recorder := newRecorder(repo, testLogger())
	recorder.Close()

	recorder.Record(context.Background(), "c@example.com", entity.RoleTPO, entity.ActivitySignup)

	assert.Empty(t, repo.recorded())
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	recorder := newRecorder(&captureRepo{}, testLogger())

	recorder.Close()
	recorder.Close()
}
