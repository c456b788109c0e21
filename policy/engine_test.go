package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), DefaultPolicy)
	require.NoError(t, err)
	return e
}

func TestDefaultPolicyEscalatesComplaints(t *testing.T) {
	e := newTestEngine(t)

	decision, err := e.Evaluate(context.Background(), Input{
		Intent:       "complaint",
		Confidence:   0.8,
		MessageCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionEscalate, decision)
}

func TestDefaultPolicyRespondsToOrdinaryTurns(t *testing.T) {
	e := newTestEngine(t)

	for _, intent := range []string{"greeting", "product_search", "shipping"} {
		decision, err := e.Evaluate(context.Background(), Input{
			Intent:       intent,
			Confidence:   0.5,
			MessageCount: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, DecisionRespond, decision, "intent %s", intent)
	}
}

func TestDefaultPolicyEscalatesStuckSessions(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	decision, err := e.Evaluate(ctx, Input{Intent: "general", MessageCount: 4})
	require.NoError(t, err)
	assert.Equal(t, DecisionRespond, decision)

	decision, err = e.Evaluate(ctx, Input{Intent: "general", MessageCount: 5})
	require.NoError(t, err)
	assert.Equal(t, DecisionEscalate, decision)
}

func TestNewEngineRejectsBadPolicy(t *testing.T) {
	_, err := NewEngine(context.Background(), "package broken\n\ndecision {")
	assert.Error(t, err)
}
