// Package locks implements distributed advisory locks with leases, a wait
// queue, contention metrics, and auto-expiry. Locks are rows in PostgreSQL;
// all mutations run in a transaction so concurrent acquirers serialize and
// at most one wins.
package locks

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent"
	entlock "github.com/conductorhq/conductor/ent/resourcelock"
	enthistory "github.com/conductorhq/conductor/ent/lockhistory"
	entqueue "github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/pkg/metrics"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

const maxResourceIDLen = 256

// Options configures a Manager.
type Options struct {
	// DefaultLease bounds how long a lock may be held before expiry when the
	// caller does not specify a lease.
	DefaultLease time.Duration
	// PollInterval is how often a blocked AcquireWithWait re-checks the lock.
	PollInterval time.Duration
}

// Manager is the resource lock manager. Lease clocks are server-side;
// clients never propose absolute deadlines.
type Manager struct {
	client       *ent.Client
	defaultLease time.Duration
	pollInterval time.Duration
}

// NewManager creates a lock manager over the given Ent client.
func NewManager(client *ent.Client, opts Options) *Manager {
	if opts.DefaultLease <= 0 {
		opts.DefaultLease = 300 * time.Second
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 250 * time.Millisecond
	}
	return &Manager{
		client:       client,
		defaultLease: opts.DefaultLease,
		pollInterval: opts.PollInterval,
	}
}

// AcquireOptions carries optional acquire parameters.
type AcquireOptions struct {
	Reason   string
	Metadata map[string]any
	Priority int
}

// lockKey hashes a resource id to the 64-bit advisory key stored with the row.
func lockKey(resourceID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(resourceID))
	return int64(h.Sum64())
}

func validateAcquire(resourceID, agentID string, lease time.Duration) error {
	if resourceID == "" || len(resourceID) > maxResourceIDLen {
		return fmt.Errorf("invalid resource_id: must be 1..%d characters", maxResourceIDLen)
	}
	if agentID == "" {
		return fmt.Errorf("invalid agent_id: required")
	}
	if lease <= 0 {
		return fmt.Errorf("invalid lease: must be positive")
	}
	return nil
}

// Acquire attempts a non-blocking acquisition. On contention it records a
// failed history row and returns a *ContendedError. Re-acquiring an
// already-held lock extends the lease and refreshes metadata.
func (m *Manager) Acquire(ctx context.Context, resourceID, agentID string, lease time.Duration, opts AcquireOptions) (*models.AcquireResult, error) {
	if err := validateAcquire(resourceID, agentID, lease); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := m.tryAcquire(ctx, resourceID, agentID, lease, opts, true)
	if err != nil {
		return nil, err
	}
	res.WaitTime = time.Since(start)

	rt := metrics.ResourceType(resourceID)
	if res.Acquired {
		metrics.LockAcquisitions.WithLabelValues(rt, agentID).Inc()
		metrics.LockWaitTime.WithLabelValues(rt, agentID).Observe(res.WaitTime.Seconds())
	} else {
		metrics.LockContentions.WithLabelValues(rt, agentID).Inc()
		return res, &ContendedError{ResourceID: resourceID, HeldBy: res.HeldBy, ExpiresAt: res.ExpiresAt}
	}
	return res, nil
}

// AcquireWithWait enqueues on contention and polls until the lock is granted
// or the wait deadline passes. Waiters resolve in priority DESC,
// requested_at ASC order.
func (m *Manager) AcquireWithWait(ctx context.Context, resourceID, agentID string, lease, waitTimeout time.Duration, opts AcquireOptions) (*models.AcquireResult, error) {
	if err := validateAcquire(resourceID, agentID, lease); err != nil {
		return nil, err
	}

	start := time.Now()
	deadline := start.Add(waitTimeout)
	rt := metrics.ResourceType(resourceID)

	// Fast path.
	res, err := m.tryAcquire(ctx, resourceID, agentID, lease, opts, true)
	if err != nil {
		return nil, err
	}
	if res.Acquired {
		res.WaitTime = time.Since(start)
		metrics.LockAcquisitions.WithLabelValues(rt, agentID).Inc()
		metrics.LockWaitTime.WithLabelValues(rt, agentID).Observe(res.WaitTime.Seconds())
		return res, nil
	}
	metrics.LockContentions.WithLabelValues(rt, agentID).Inc()

	entryID, err := m.enqueue(ctx, resourceID, agentID, deadline, lease, opts)
	if err != nil {
		return nil, err
	}
	defer m.dequeue(resourceID, entryID)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if time.Now().After(deadline) {
			m.recordHistory(ctx, historyRecord{
				resourceID: resourceID,
				agentID:    agentID,
				op:         models.LockOpAcquire,
				waitMS:     time.Since(start).Milliseconds(),
				success:    false,
				errMsg:     "wait_timeout",
			})
			return nil, ErrWaitTimeout
		}

		res, err := m.tryAcquireWaiting(ctx, resourceID, agentID, lease, opts, entryID, start)
		if err != nil {
			return nil, err
		}
		if res != nil {
			res.WaitTime = time.Since(start)
			metrics.LockWaitTime.WithLabelValues(rt, agentID).Observe(res.WaitTime.Seconds())
			return res, nil
		}
	}
}

// tryAcquireWaiting is one poll step of a queued waiter. Returns a non-nil
// result when the lock is obtained: either the sweep already promoted this
// waiter (the lock row names it as holder), or the lock is free and this
// waiter is at the head of the queue. Returns (nil, nil) to keep polling.
func (m *Manager) tryAcquireWaiting(ctx context.Context, resourceID, agentID string, lease time.Duration, opts AcquireOptions, entryID string, start time.Time) (*models.AcquireResult, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	if err := m.sweepResourceTx(ctx, tx, resourceID, now); err != nil {
		return nil, err
	}

	current, err := tx.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err == nil {
		if current.AgentID != agentID {
			// Still held by someone else.
			if commitErr := tx.Commit(); commitErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, commitErr)
			}
			return nil, nil
		}
		// The sweep promoted this waiter; the grant history row is
		// already written. Just confirm and clear the queue entry.
		if _, err := tx.LockWaitQueue.Delete().Where(entqueue.IDEQ(entryID)).Exec(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		expiresAt := current.ExpiresAt
		if commitErr := tx.Commit(); commitErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, commitErr)
		}
		return &models.AcquireResult{Acquired: true, ExpiresAt: expiresAt}, nil
	}

	// Lock is free: take it only if this waiter is at the head.
	head, err := tx.LockWaitQueue.Query().
		Where(
			entqueue.ResourceIDEQ(resourceID),
			entqueue.TimeoutAtGT(now),
		).
		Order(ent.Desc(entqueue.FieldPriority), ent.Asc(entqueue.FieldRequestedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err == nil && head.ID != entryID {
		if commitErr := tx.Commit(); commitErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, commitErr)
		}
		return nil, nil
	}

	expiresAt := now.Add(lease)
	create := tx.ResourceLock.Create().
		SetID(resourceID).
		SetAgentID(agentID).
		SetLockKey(lockKey(resourceID)).
		SetAcquiredAt(now).
		SetExpiresAt(expiresAt)
	if opts.Reason != "" {
		create = create.SetReason(opts.Reason)
	}
	if opts.Metadata != nil {
		create = create.SetMetadata(opts.Metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if _, err := tx.LockWaitQueue.Delete().Where(entqueue.IDEQ(entryID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	m.recordHistoryTx(ctx, tx, historyRecord{
		resourceID: resourceID,
		agentID:    agentID,
		op:         models.LockOpAcquire,
		acquiredAt: &now,
		waitMS:     now.Sub(start).Milliseconds(),
		success:    true,
	})
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	rt := metrics.ResourceType(resourceID)
	metrics.LocksActive.WithLabelValues(rt).Inc()
	metrics.LockAcquisitions.WithLabelValues(rt, agentID).Inc()
	return &models.AcquireResult{Acquired: true, ExpiresAt: expiresAt}, nil
}

// tryAcquire performs the transactional acquire step: sweep the resource,
// test the current record, insert or extend on success. recordContention
// controls whether a failed attempt writes a history row (polling retries
// must not flood history).
func (m *Manager) tryAcquire(ctx context.Context, resourceID, agentID string, lease time.Duration, opts AcquireOptions, recordContention bool) (*models.AcquireResult, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	if err := m.sweepResourceTx(ctx, tx, resourceID, now); err != nil {
		return nil, err
	}

	current, err := tx.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	expiresAt := now.Add(lease)

	switch {
	case err == nil && current.AgentID != agentID && current.ExpiresAt.After(now):
		// Held by someone else.
		if recordContention {
			m.recordHistoryTx(ctx, tx, historyRecord{
				resourceID: resourceID,
				agentID:    agentID,
				op:         models.LockOpAcquire,
				success:    false,
				errMsg:     "contended",
			})
		}
		held := current.AgentID
		heldUntil := current.ExpiresAt
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return &models.AcquireResult{Acquired: false, HeldBy: held, ExpiresAt: heldUntil}, nil

	case err == nil && current.AgentID == agentID:
		// Idempotent re-acquire: extend the lease, refresh metadata.
		update := tx.ResourceLock.UpdateOneID(resourceID).
			SetExpiresAt(expiresAt)
		if opts.Metadata != nil {
			update = update.SetMetadata(opts.Metadata)
		}
		if _, err := update.Save(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return &models.AcquireResult{Acquired: true, ExpiresAt: expiresAt}, nil

	default:
		// Free (absent or just swept): take it.
		create := tx.ResourceLock.Create().
			SetID(resourceID).
			SetAgentID(agentID).
			SetLockKey(lockKey(resourceID)).
			SetAcquiredAt(now).
			SetExpiresAt(expiresAt)
		if opts.Reason != "" {
			create = create.SetReason(opts.Reason)
		}
		if opts.Metadata != nil {
			create = create.SetMetadata(opts.Metadata)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Lost an insert race; report contention without details.
				return &models.AcquireResult{Acquired: false}, nil
			}
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		m.recordHistoryTx(ctx, tx, historyRecord{
			resourceID: resourceID,
			agentID:    agentID,
			op:         models.LockOpAcquire,
			acquiredAt: &now,
			success:    true,
		})
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		metrics.LocksActive.WithLabelValues(metrics.ResourceType(resourceID)).Inc()
		return &models.AcquireResult{Acquired: true, ExpiresAt: expiresAt}, nil
	}
}

// Release releases a held lock. Idempotent: releasing an absent or expired
// lock succeeds silently (the expiry sweep owns the timeout history row).
// Releasing a lock held live by another agent fails ErrNotHolder.
func (m *Manager) Release(ctx context.Context, resourceID, agentID string) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	current, err := tx.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return tx.Commit()
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if !current.ExpiresAt.After(now) {
		// Already expired; the sweeper records the timeout.
		if err := m.sweepResourceTx(ctx, tx, resourceID, now); err != nil {
			return err
		}
		return tx.Commit()
	}

	if current.AgentID != agentID {
		return ErrNotHolder
	}

	if _, err := tx.ResourceLock.Delete().Where(entlock.IDEQ(resourceID)).Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	m.recordHistoryTx(ctx, tx, historyRecord{
		resourceID: resourceID,
		agentID:    agentID,
		op:         models.LockOpRelease,
		acquiredAt: &current.AcquiredAt,
		releasedAt: &now,
		heldMS:     now.Sub(current.AcquiredAt).Milliseconds(),
		success:    true,
	})
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	metrics.LocksActive.WithLabelValues(metrics.ResourceType(resourceID)).Dec()
	return nil
}

// ForceRelease unconditionally releases a lock, bypassing ownership checks.
// Administrative; expected to be rare.
func (m *Manager) ForceRelease(ctx context.Context, resourceID, adminID string) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	current, err := tx.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return tx.Commit()
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if _, err := tx.ResourceLock.Delete().Where(entlock.IDEQ(resourceID)).Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	m.recordHistoryTx(ctx, tx, historyRecord{
		resourceID: resourceID,
		agentID:    adminID,
		op:         models.LockOpForceRelease,
		acquiredAt: &current.AcquiredAt,
		releasedAt: &now,
		heldMS:     now.Sub(current.AcquiredAt).Milliseconds(),
		success:    true,
		errMsg:     "previous holder: " + current.AgentID,
	})
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	metrics.LocksActive.WithLabelValues(metrics.ResourceType(resourceID)).Dec()
	slog.Warn("Lock force-released", "resource_id", resourceID, "admin_id", adminID,
		"previous_holder", current.AgentID)
	return nil
}

// Check reports the lock status of a resource.
func (m *Manager) Check(ctx context.Context, resourceID string) (*models.LockStatus, error) {
	now := time.Now()
	status := &models.LockStatus{ResourceID: resourceID}

	current, err := m.client.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err == nil && current.ExpiresAt.After(now) {
		status.Locked = true
		status.Holder = current.AgentID
		status.ExpiresAt = current.ExpiresAt
		status.SecondsRemaining = current.ExpiresAt.Sub(now).Seconds()
	}

	waiters, err := m.client.LockWaitQueue.Query().
		Where(
			entqueue.ResourceIDEQ(resourceID),
			entqueue.TimeoutAtGT(now),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	status.Waiters = waiters
	return status, nil
}

// SweepExpired releases all expired locks and promotes the top eligible
// waiter for each freed resource. Invoked periodically and on each mutation.
// Returns the number of expired locks released.
func (m *Manager) SweepExpired(ctx context.Context) (int, error) {
	now := time.Now()
	expired, err := m.client.ResourceLock.Query().
		Where(entlock.ExpiresAtLTE(now)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	swept := 0
	for _, lock := range expired {
		tx, err := m.client.Tx(ctx)
		if err != nil {
			return swept, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if err := m.sweepResourceTx(ctx, tx, lock.ID, now); err != nil {
			_ = tx.Rollback()
			return swept, err
		}
		if err := tx.Commit(); err != nil {
			return swept, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		swept++
	}
	return swept, nil
}

// sweepResourceTx releases an expired lock on one resource and promotes the
// highest-priority waiter whose own deadline has not passed. Must run inside
// the caller's transaction.
func (m *Manager) sweepResourceTx(ctx context.Context, tx *ent.Tx, resourceID string, now time.Time) error {
	current, err := tx.ResourceLock.Query().
		Where(entlock.IDEQ(resourceID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return m.dropExpiredWaitersTx(ctx, tx, resourceID, now)
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if current.ExpiresAt.After(now) {
		return m.dropExpiredWaitersTx(ctx, tx, resourceID, now)
	}

	// Expired: logically released.
	if _, err := tx.ResourceLock.Delete().Where(entlock.IDEQ(resourceID)).Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	m.recordHistoryTx(ctx, tx, historyRecord{
		resourceID: resourceID,
		agentID:    current.AgentID,
		op:         models.LockOpTimeout,
		acquiredAt: &current.AcquiredAt,
		releasedAt: &now,
		heldMS:     now.Sub(current.AcquiredAt).Milliseconds(),
		success:    true,
	})
	metrics.LocksActive.WithLabelValues(metrics.ResourceType(resourceID)).Dec()

	if err := m.dropExpiredWaitersTx(ctx, tx, resourceID, now); err != nil {
		return err
	}
	return m.promoteTx(ctx, tx, resourceID, now)
}

// promoteTx grants the freed lock to the top waiter, if any.
func (m *Manager) promoteTx(ctx context.Context, tx *ent.Tx, resourceID string, now time.Time) error {
	head, err := tx.LockWaitQueue.Query().
		Where(
			entqueue.ResourceIDEQ(resourceID),
			entqueue.TimeoutAtGT(now),
		).
		Order(ent.Desc(entqueue.FieldPriority), ent.Asc(entqueue.FieldRequestedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	lease := m.defaultLease
	if head.Metadata != nil {
		if secs, ok := head.Metadata["lease_seconds"].(float64); ok && secs > 0 {
			lease = time.Duration(secs * float64(time.Second))
		}
	}

	if _, err := tx.ResourceLock.Create().
		SetID(resourceID).
		SetAgentID(head.AgentID).
		SetLockKey(lockKey(resourceID)).
		SetAcquiredAt(now).
		SetExpiresAt(now.Add(lease)).
		Save(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if _, err := tx.LockWaitQueue.Delete().Where(entqueue.IDEQ(head.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	m.recordHistoryTx(ctx, tx, historyRecord{
		resourceID: resourceID,
		agentID:    head.AgentID,
		op:         models.LockOpAcquire,
		acquiredAt: &now,
		waitMS:     now.Sub(head.RequestedAt).Milliseconds(),
		success:    true,
	})
	metrics.LocksActive.WithLabelValues(metrics.ResourceType(resourceID)).Inc()
	metrics.LockAcquisitions.WithLabelValues(metrics.ResourceType(resourceID), head.AgentID).Inc()
	return nil
}

// dropExpiredWaitersTx removes queue entries whose deadline has passed.
func (m *Manager) dropExpiredWaitersTx(ctx context.Context, tx *ent.Tx, resourceID string, now time.Time) error {
	_, err := tx.LockWaitQueue.Delete().
		Where(
			entqueue.ResourceIDEQ(resourceID),
			entqueue.TimeoutAtLTE(now),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// enqueue adds a wait queue entry and returns its id.
func (m *Manager) enqueue(ctx context.Context, resourceID, agentID string, timeoutAt time.Time, lease time.Duration, opts AcquireOptions) (string, error) {
	meta := map[string]any{"lease_seconds": lease.Seconds()}
	for k, v := range opts.Metadata {
		meta[k] = v
	}

	entry, err := m.client.LockWaitQueue.Create().
		SetID(uuid.New().String()).
		SetResourceID(resourceID).
		SetAgentID(agentID).
		SetRequestedAt(time.Now()).
		SetTimeoutAt(timeoutAt).
		SetPriority(opts.Priority).
		SetMetadata(meta).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return entry.ID, nil
}

// dequeue removes a wait queue entry. Best effort; promotion may already
// have consumed it.
func (m *Manager) dequeue(resourceID, entryID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := m.client.LockWaitQueue.Delete().
		Where(entqueue.IDEQ(entryID)).
		Exec(ctx); err != nil {
		slog.Warn("Failed to remove lock wait queue entry",
			"resource_id", resourceID, "entry_id", entryID, "error", err)
	}
}

// History returns the lock history for a resource, oldest first.
func (m *Manager) History(ctx context.Context, resourceID string, limit int) ([]*ent.LockHistory, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := m.client.LockHistory.Query().
		Where(enthistory.ResourceIDEQ(resourceID)).
		Order(ent.Asc(enthistory.FieldCreatedAt), ent.Asc(enthistory.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return rows, nil
}

// AcquireMany acquires several locks in globally deterministic (lexicographic)
// order to prevent deadlocks, releasing everything already taken on failure.
// Returns a release function covering all acquired locks.
func (m *Manager) AcquireMany(ctx context.Context, resourceIDs []string, agentID string, lease, waitTimeout time.Duration, opts AcquireOptions) (func(), error) {
	sorted := make([]string, len(resourceIDs))
	copy(sorted, resourceIDs)
	sort.Strings(sorted)

	acquired := make([]string, 0, len(sorted))
	releaseAll := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for i := len(acquired) - 1; i >= 0; i-- {
			if err := m.Release(ctx, acquired[i], agentID); err != nil {
				slog.Warn("Failed to release lock",
					"resource_id", acquired[i], "agent_id", agentID, "error", err)
			}
		}
	}

	for _, id := range sorted {
		if _, err := m.AcquireWithWait(ctx, id, agentID, lease, waitTimeout, opts); err != nil {
			releaseAll()
			return nil, err
		}
		acquired = append(acquired, id)
	}
	return releaseAll, nil
}

// historyRecord is the internal shape of a lock history row.
type historyRecord struct {
	resourceID string
	agentID    string
	op         models.LockOp
	acquiredAt *time.Time
	releasedAt *time.Time
	heldMS     int64
	waitMS     int64
	success    bool
	errMsg     string
}

// recordHistoryTx appends a history row inside a transaction. History is
// append-only; failures here fail the surrounding transaction.
func (m *Manager) recordHistoryTx(ctx context.Context, tx *ent.Tx, rec historyRecord) {
	create := tx.LockHistory.Create().
		SetResourceID(rec.resourceID).
		SetAgentID(rec.agentID).
		SetOp(enthistory.Op(rec.op)).
		SetSuccess(rec.success)
	if rec.acquiredAt != nil {
		create = create.SetAcquiredAt(*rec.acquiredAt)
	}
	if rec.releasedAt != nil {
		create = create.SetReleasedAt(*rec.releasedAt)
	}
	if rec.heldMS > 0 {
		create = create.SetDurationMs(rec.heldMS)
	}
	if rec.waitMS > 0 {
		create = create.SetWaitTimeMs(rec.waitMS)
	}
	if rec.errMsg != "" {
		create = create.SetErrorMessage(rec.errMsg)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("Failed to record lock history",
			"resource_id", rec.resourceID, "op", rec.op, "error", err)
	}
}

// recordHistory appends a history row outside any transaction.
func (m *Manager) recordHistory(ctx context.Context, rec historyRecord) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to open history transaction", "error", err)
		return
	}
	m.recordHistoryTx(ctx, tx, rec)
	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit history record", "error", err)
	}
}
