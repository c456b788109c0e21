// Package policy decides when a conversation turn should be routed to
// priority support instead of a plain templated reply.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the policy.
const (
	DecisionRespond  = "respond"
	DecisionEscalate = "escalate"
)

// Input is what a turn looks like to the policy.
type Input struct {
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	MessageCount int     `json:"message_count"`
}

// Engine is the OPA escalation policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a policy engine from the given rego content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.globot_policy.decision"),
		rego.Module("globot_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate returns the escalation decision for a turn. Missing rules fall
// back to respond.
func (e *Engine) Evaluate(ctx context.Context, in Input) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(in))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionRespond, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionRespond, nil
}

// DefaultPolicy escalates complaints and sessions that keep circling the
// fallback intent.
const DefaultPolicy = `
package globot_policy

import rego.v1

default decision := "respond"

decision := "escalate" if {
	input.intent == "complaint"
}

decision := "escalate" if {
	input.intent == "general"
	input.message_count >= 5
}
`
