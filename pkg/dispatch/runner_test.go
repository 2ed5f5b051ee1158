package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/locks"
	"github.com/conductorhq/conductor/pkg/mcp"
)

type fakeRequester struct {
	responses []*bus.Response
	errs      []error
	calls     []*bus.Request
}

func (f *fakeRequester) Request(_ context.Context, req *bus.Request, _ time.Duration) (*bus.Response, error) {
	i := len(f.calls)
	f.calls = append(f.calls, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return &bus.Response{Payload: map[string]any{"status": "ok"}}, nil
}

type fakeLocker struct {
	acquired [][]string
	released int
	err      error
}

func (f *fakeLocker) AcquireMany(_ context.Context, resourceIDs []string, _ string, _, _ time.Duration, _ locks.AcquireOptions) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.acquired = append(f.acquired, resourceIDs)
	return func() { f.released++ }, nil
}

func fastOptions() Options {
	return Options{
		SourceAgent:    "orchestrator",
		Attempts:       3,
		BaseDelay:      time.Millisecond,
		RequestTimeout: time.Second,
	}
}

func TestRunner_Run(t *testing.T) {
	t.Run("success carries payload and correlation", func(t *testing.T) {
		requester := &fakeRequester{
			responses: []*bus.Response{{Payload: map[string]any{"quality_score": 90.0}}},
		}
		r := NewRunner(requester, &fakeLocker{}, nil, nil, fastOptions())

		result, err := r.Run(t.Context(), Task{
			AgentID:     "code-agent",
			RequestType: "task.execute",
			Payload:     map[string]any{"pr_number": 123},
		})
		require.NoError(t, err)
		assert.Equal(t, 90.0, result.Payload["quality_score"])

		require.Len(t, requester.calls, 1)
		req := requester.calls[0]
		assert.Equal(t, "code-agent", req.TargetAgent)
		assert.Equal(t, "orchestrator", req.SourceAgent)
		assert.NotEmpty(t, req.CorrelationID)
	})

	t.Run("timeouts retried then surfaced as agent failure", func(t *testing.T) {
		requester := &fakeRequester{
			errs: []error{bus.ErrRequestTimeout, bus.ErrRequestTimeout, bus.ErrRequestTimeout},
		}
		r := NewRunner(requester, &fakeLocker{}, nil, nil, fastOptions())

		_, err := r.Run(t.Context(), Task{AgentID: "slow-agent", RequestType: "task.execute"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentFailure)
		assert.Len(t, requester.calls, 3)
	})

	t.Run("recovers within the retry budget", func(t *testing.T) {
		requester := &fakeRequester{
			errs:      []error{bus.ErrRemoteError, nil},
			responses: []*bus.Response{nil, {Payload: map[string]any{"status": "ok"}}},
		}
		r := NewRunner(requester, &fakeLocker{}, nil, nil, fastOptions())

		result, err := r.Run(t.Context(), Task{AgentID: "flaky-agent", RequestType: "task.execute"})
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Payload["status"])
		assert.Len(t, requester.calls, 2)
	})

	t.Run("unreachable target fails without retry", func(t *testing.T) {
		requester := &fakeRequester{errs: []error{bus.ErrTargetUnreachable}}
		r := NewRunner(requester, &fakeLocker{}, nil, nil, fastOptions())

		_, err := r.Run(t.Context(), Task{AgentID: "ghost-agent", RequestType: "task.execute"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentFailure)
		assert.Len(t, requester.calls, 1)
	})
}

func TestRunner_Locks(t *testing.T) {
	t.Run("locks acquired before the request and released after", func(t *testing.T) {
		requester := &fakeRequester{}
		locker := &fakeLocker{}
		r := NewRunner(requester, locker, nil, nil, fastOptions())

		_, err := r.Run(t.Context(), Task{
			AgentID:     "infra-agent",
			RequestType: "task.execute",
			Resources:   []string{"cluster-config", "deploy-pipeline"},
		})
		require.NoError(t, err)
		require.Len(t, locker.acquired, 1)
		assert.Equal(t, []string{"cluster-config", "deploy-pipeline"}, locker.acquired[0])
		assert.Equal(t, 1, locker.released)
	})

	t.Run("locks released when the request fails", func(t *testing.T) {
		requester := &fakeRequester{errs: []error{bus.ErrTargetUnreachable}}
		locker := &fakeLocker{}
		r := NewRunner(requester, locker, nil, nil, fastOptions())

		_, err := r.Run(t.Context(), Task{
			AgentID:     "infra-agent",
			RequestType: "task.execute",
			Resources:   []string{"cluster-config"},
		})
		require.Error(t, err)
		assert.Equal(t, 1, locker.released)
	})

	t.Run("wait timeout surfaces unchanged, no request sent", func(t *testing.T) {
		requester := &fakeRequester{}
		locker := &fakeLocker{err: locks.ErrWaitTimeout}
		r := NewRunner(requester, locker, nil, nil, fastOptions())

		_, err := r.Run(t.Context(), Task{
			AgentID:     "infra-agent",
			RequestType: "task.execute",
			Resources:   []string{"cluster-config"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, locks.ErrWaitTimeout)
		assert.False(t, errors.Is(err, ErrAgentFailure))
		assert.Empty(t, requester.calls)
	})
}

func TestRunner_ToolSelection(t *testing.T) {
	catalog := mcp.NewStaticCatalog("v1", map[string][]mcp.ToolSchema{
		"kubernetes": {{Name: "get_pods"}, {Name: "scale_deployment"}},
		"argocd":     {{Name: "sync_app"}},
	})
	selector := mcp.NewSelector(mcp.SelectorConfig{
		KeywordServers: map[string][]string{"scale": {"kubernetes"}},
		AgentServers:   map[string][]string{"infra-agent": {"argocd"}},
	})

	t.Run("defaults to progressive: keyword plus agent servers", func(t *testing.T) {
		requester := &fakeRequester{}
		r := NewRunner(requester, &fakeLocker{}, selector, catalog, fastOptions())

		result, err := r.Run(t.Context(), Task{
			AgentID:     "infra-agent",
			RequestType: "task.execute",
			Description: "scale the api deployment",
			Payload:     map[string]any{"replicas": 5},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"kubernetes.get_pods", "kubernetes.scale_deployment", "argocd.sync_app",
		}, result.Tools)

		// The offered tool set rides along in the request payload; the
		// original payload map is left untouched.
		req := requester.calls[0]
		assert.Equal(t, result.Tools, req.Payload["available_tools"])
		assert.Equal(t, 5, req.Payload["replicas"])
	})

	t.Run("explicit minimal strategy skips the agent servers", func(t *testing.T) {
		requester := &fakeRequester{}
		r := NewRunner(requester, &fakeLocker{}, selector, catalog, fastOptions())

		result, err := r.Run(t.Context(), Task{
			AgentID:      "infra-agent",
			RequestType:  "task.execute",
			Description:  "scale the api deployment",
			ToolStrategy: mcp.StrategyMinimal,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"kubernetes.get_pods", "kubernetes.scale_deployment",
		}, result.Tools)
	})
}
