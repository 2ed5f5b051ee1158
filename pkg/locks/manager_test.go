package locks

import (
	"context"
	"testing"
	"time"

	enthistory "github.com/conductorhq/conductor/ent/lockhistory"
	testdb "github.com/conductorhq/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	client := testdb.NewTestClient(t)
	return NewManager(client.Client, Options{
		DefaultLease: 60 * time.Second,
		PollInterval: 20 * time.Millisecond,
	})
}

func TestManager_Acquire(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	t.Run("acquires free lock", func(t *testing.T) {
		res, err := m.Acquire(ctx, "infrastructure:prod-a", "agent-1", 30*time.Second, AcquireOptions{Reason: "deploy"})
		require.NoError(t, err)
		assert.True(t, res.Acquired)
		assert.WithinDuration(t, time.Now().Add(30*time.Second), res.ExpiresAt, 2*time.Second)

		status, err := m.Check(ctx, "infrastructure:prod-a")
		require.NoError(t, err)
		assert.True(t, status.Locked)
		assert.Equal(t, "agent-1", status.Holder)
		assert.Zero(t, status.Waiters)
	})

	t.Run("contention returns holder details", func(t *testing.T) {
		_, err := m.Acquire(ctx, "infrastructure:prod-b", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		res, err := m.Acquire(ctx, "infrastructure:prod-b", "agent-2", 30*time.Second, AcquireOptions{})
		require.Error(t, err)
		assert.True(t, IsContended(err))

		var ce *ContendedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "infrastructure:prod-b", ce.ResourceID)
		assert.Equal(t, "agent-1", ce.HeldBy)
		assert.False(t, ce.ExpiresAt.IsZero())
		assert.False(t, res.Acquired)
		assert.Equal(t, "agent-1", res.HeldBy)
	})

	t.Run("re-acquire by holder extends lease", func(t *testing.T) {
		first, err := m.Acquire(ctx, "database:users", "agent-1", 5*time.Second, AcquireOptions{})
		require.NoError(t, err)

		second, err := m.Acquire(ctx, "database:users", "agent-1", 60*time.Second, AcquireOptions{})
		require.NoError(t, err)
		assert.True(t, second.Acquired)
		assert.True(t, second.ExpiresAt.After(first.ExpiresAt))
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := m.Acquire(ctx, "", "agent-1", time.Second, AcquireOptions{})
		assert.Error(t, err)

		_, err = m.Acquire(ctx, "infrastructure:x", "", time.Second, AcquireOptions{})
		assert.Error(t, err)

		_, err = m.Acquire(ctx, "infrastructure:x", "agent-1", 0, AcquireOptions{})
		assert.Error(t, err)
	})
}

func TestManager_Release(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	t.Run("holder releases and lock frees", func(t *testing.T) {
		_, err := m.Acquire(ctx, "cluster:east", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		require.NoError(t, m.Release(ctx, "cluster:east", "agent-1"))

		status, err := m.Check(ctx, "cluster:east")
		require.NoError(t, err)
		assert.False(t, status.Locked)

		res, err := m.Acquire(ctx, "cluster:east", "agent-2", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)
		assert.True(t, res.Acquired)
	})

	t.Run("non-holder release fails", func(t *testing.T) {
		_, err := m.Acquire(ctx, "cluster:west", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		err = m.Release(ctx, "cluster:west", "agent-2")
		assert.ErrorIs(t, err, ErrNotHolder)

		// Holder unchanged.
		status, err := m.Check(ctx, "cluster:west")
		require.NoError(t, err)
		assert.Equal(t, "agent-1", status.Holder)
	})

	t.Run("releasing absent lock is idempotent", func(t *testing.T) {
		assert.NoError(t, m.Release(ctx, "cluster:never-held", "agent-1"))
	})
}

func TestManager_Expiry(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	t.Run("expired lock is swept and freed", func(t *testing.T) {
		_, err := m.Acquire(ctx, "node:worker-1", "agent-1", 50*time.Millisecond, AcquireOptions{})
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		n, err := m.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		status, err := m.Check(ctx, "node:worker-1")
		require.NoError(t, err)
		assert.False(t, status.Locked)

		// Expiry is recorded as a timeout, attributed to the expired holder.
		rows, err := m.History(ctx, "node:worker-1", 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, enthistory.OpAcquire, rows[0].Op)
		assert.Equal(t, enthistory.OpTimeout, rows[1].Op)
		assert.Equal(t, "agent-1", rows[1].AgentID)
	})

	t.Run("release after expiry succeeds without release history", func(t *testing.T) {
		_, err := m.Acquire(ctx, "node:worker-2", "agent-1", 50*time.Millisecond, AcquireOptions{})
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)
		require.NoError(t, m.Release(ctx, "node:worker-2", "agent-1"))

		rows, err := m.History(ctx, "node:worker-2", 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, enthistory.OpTimeout, rows[1].Op)
	})
}

func TestManager_AcquireWithWait(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	t.Run("waiter is granted after release", func(t *testing.T) {
		_, err := m.Acquire(ctx, "deploy:api", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			res, err := m.AcquireWithWait(ctx, "deploy:api", "agent-2", 30*time.Second, 5*time.Second, AcquireOptions{})
			if err == nil && !res.Acquired {
				err = assert.AnError
			}
			done <- err
		}()

		// Let the waiter enqueue, then free the lock. The sweep on the
		// waiter's retry path promotes it.
		time.Sleep(150 * time.Millisecond)
		require.NoError(t, m.Release(ctx, "deploy:api", "agent-1"))

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("waiter was not granted the lock")
		}

		status, err := m.Check(ctx, "deploy:api")
		require.NoError(t, err)
		assert.Equal(t, "agent-2", status.Holder)
	})

	t.Run("granted waiter keeps its acquire options", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		mgr := NewManager(client.Client, Options{
			DefaultLease: 60 * time.Second,
			PollInterval: 20 * time.Millisecond,
		})

		_, err := mgr.Acquire(ctx, "deploy:frontend", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			_, err := mgr.AcquireWithWait(ctx, "deploy:frontend", "agent-2", 30*time.Second, 5*time.Second, AcquireOptions{
				Reason:   "canary rollout",
				Metadata: map[string]any{"ticket": "OPS-7"},
			})
			done <- err
		}()

		time.Sleep(150 * time.Millisecond)
		require.NoError(t, mgr.Release(ctx, "deploy:frontend", "agent-1"))

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("waiter was not granted the lock")
		}

		// The promoted waiter's row carries the same reason and metadata the
		// non-contended path would have written.
		row, err := client.ResourceLock.Get(ctx, "deploy:frontend")
		require.NoError(t, err)
		assert.Equal(t, "agent-2", row.AgentID)
		require.NotNil(t, row.Reason)
		assert.Equal(t, "canary rollout", *row.Reason)
		assert.Equal(t, "OPS-7", row.Metadata["ticket"])
	})

	t.Run("waiter times out", func(t *testing.T) {
		_, err := m.Acquire(ctx, "deploy:worker", "agent-1", 30*time.Second, AcquireOptions{})
		require.NoError(t, err)

		_, err = m.AcquireWithWait(ctx, "deploy:worker", "agent-2", 30*time.Second, 200*time.Millisecond, AcquireOptions{})
		assert.ErrorIs(t, err, ErrWaitTimeout)

		// Failed wait leaves an unsuccessful acquire in history.
		rows, err := m.History(ctx, "deploy:worker", 10)
		require.NoError(t, err)
		var sawWaitTimeout bool
		for _, r := range rows {
			if !r.Success && r.ErrorMessage != nil && *r.ErrorMessage == "wait_timeout" {
				sawWaitTimeout = true
			}
		}
		assert.True(t, sawWaitTimeout)
	})

	t.Run("higher priority waiter is promoted first", func(t *testing.T) {
		_, err := m.Acquire(ctx, "deploy:db", "agent-1", 150*time.Millisecond, AcquireOptions{})
		require.NoError(t, err)

		type outcome struct {
			agent string
			err   error
		}
		results := make(chan outcome, 2)
		wait := func(agent string, priority int) {
			_, err := m.AcquireWithWait(ctx, "deploy:db", agent, 30*time.Second, 5*time.Second, AcquireOptions{Priority: priority})
			results <- outcome{agent: agent, err: err}
		}

		go wait("agent-low", 0)
		time.Sleep(50 * time.Millisecond)
		go wait("agent-high", 10)

		// Holder's lease expires; the sweep promotes the high-priority
		// waiter despite it having enqueued later.
		time.Sleep(200 * time.Millisecond)
		_, err = m.SweepExpired(ctx)
		require.NoError(t, err)

		first := <-results
		require.NoError(t, first.err)
		assert.Equal(t, "agent-high", first.agent)

		require.NoError(t, m.Release(ctx, "deploy:db", "agent-high"))

		second := <-results
		require.NoError(t, second.err)
		assert.Equal(t, "agent-low", second.agent)
	})
}

func TestManager_ForceRelease(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "infrastructure:stuck", "agent-1", time.Hour, AcquireOptions{})
	require.NoError(t, err)

	require.NoError(t, m.ForceRelease(ctx, "infrastructure:stuck", "admin"))

	status, err := m.Check(ctx, "infrastructure:stuck")
	require.NoError(t, err)
	assert.False(t, status.Locked)

	rows, err := m.History(ctx, "infrastructure:stuck", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, enthistory.OpForceRelease, rows[1].Op)
	assert.Equal(t, "admin", rows[1].AgentID)

	// Force-releasing an absent lock is a no-op.
	assert.NoError(t, m.ForceRelease(ctx, "infrastructure:stuck", "admin"))
}

func TestManager_HistoryPairing(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	// Every successful acquire must be closed by exactly one of
	// release, timeout, or force_release.
	_, err := m.Acquire(ctx, "audit:r1", "agent-1", 30*time.Second, AcquireOptions{})
	require.NoError(t, err)
	require.NoError(t, m.Release(ctx, "audit:r1", "agent-1"))

	_, err = m.Acquire(ctx, "audit:r1", "agent-2", 50*time.Millisecond, AcquireOptions{})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	_, err = m.SweepExpired(ctx)
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "audit:r1", "agent-3", time.Hour, AcquireOptions{})
	require.NoError(t, err)
	require.NoError(t, m.ForceRelease(ctx, "audit:r1", "admin"))

	rows, err := m.History(ctx, "audit:r1", 50)
	require.NoError(t, err)

	var acquires, closes int
	for _, r := range rows {
		if !r.Success {
			continue
		}
		switch r.Op {
		case enthistory.OpAcquire:
			acquires++
		case enthistory.OpRelease, enthistory.OpTimeout, enthistory.OpForceRelease:
			closes++
		}
	}
	assert.Equal(t, 3, acquires)
	assert.Equal(t, 3, closes)
}

func TestManager_AcquireMany(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	release, err := m.AcquireMany(ctx, []string{"multi:b", "multi:a", "multi:c"}, "agent-1", 30*time.Second, time.Second, AcquireOptions{})
	require.NoError(t, err)

	for _, id := range []string{"multi:a", "multi:b", "multi:c"} {
		status, err := m.Check(ctx, id)
		require.NoError(t, err)
		assert.True(t, status.Locked, id)
		assert.Equal(t, "agent-1", status.Holder)
	}

	release()

	for _, id := range []string{"multi:a", "multi:b", "multi:c"} {
		status, err := m.Check(ctx, id)
		require.NoError(t, err)
		assert.False(t, status.Locked, id)
	}
}
