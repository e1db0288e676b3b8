package singleton

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/shared/apperror"
)

// table giả lập bảng có unique constraint trên singleton_key
type table struct {
	mu   sync.Mutex
	rows int
}

func (t *table) exists(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows > 0, nil
}

func (t *table) insert(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rows > 0 {
		return ErrDuplicate
	}
	t.rows++
	return nil
}

func TestGuard_SecondCreateConflicts(t *testing.T) {
	tbl := &table{}
	guard := NewGuard(SiteSettings, tbl.exists)
	ctx := context.Background()

	ok, err := guard.CanCreate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, guard.Create(ctx, tbl.insert))

	ok, err = guard.CanCreate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	err = guard.Create(ctx, tbl.insert)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Contains(t, err.Error(), "singleton already initialized")
	assert.Equal(t, 1, tbl.rows)
}

func TestGuard_RacingCreatesOnlyOneWins(t *testing.T) {
	tbl := &table{}
	// exists luôn trả false để mọi goroutine cùng vượt qua fast check
	guard := NewGuard(About, func(ctx context.Context) (bool, error) { return false, nil })

	const n = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := guard.Create(context.Background(), tbl.insert)
			switch {
			case err == nil:
				successes.Add(1)
			case apperror.IsConflict(err):
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())
	assert.Equal(t, 1, tbl.rows)
}

func TestGuard_DeleteIsForbidden(t *testing.T) {
	for _, kind := range Kinds() {
		guard := NewGuard(kind, (&table{}).exists)

		assert.False(t, guard.CanDelete())
		err := guard.Delete()
		assert.True(t, apperror.IsForbidden(err), "kind %s", kind)
	}
}

func TestGuard_StorageErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")

	guard := NewGuard(ContactInfo, func(ctx context.Context) (bool, error) { return false, boom })
	err := guard.Create(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, boom)
	assert.False(t, apperror.IsConflict(err))

	guard = NewGuard(ContactInfo, func(ctx context.Context) (bool, error) { return false, nil })
	err = guard.Create(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestGuard_NotConfigured(t *testing.T) {
	guard := NewGuard(About, (&table{}).exists)

	err := guard.NotConfigured("About page not configured yet.")
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "About page not configured yet.", err.Error())

	assert.Equal(t, "About page not configured yet.", guard.NotConfigured("").Error())
}

func TestNewGuard_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { NewGuard(Kind("hero_slide"), nil) })
	assert.False(t, IsGuarded("hero_slide"))
}

func TestInsertError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "about_pages_singleton_key"}
	other := &pgconn.PgError{Code: "23505", ConstraintName: "about_pages_pkey"}

	err := InsertError(dup, "about_pages_singleton_key", "insert about page")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "insert about page")

	err = InsertError(other, "about_pages_singleton_key", "insert about page")
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, other)
}
