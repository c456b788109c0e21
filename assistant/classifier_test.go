package assistant

import (
	"testing"

	"github.com/globalantic/globot/domain"
)

func TestClassifySingleIntent(t *testing.T) {
	cases := []struct {
		tokens []string
		want   domain.Intent
		conf   float64
	}{
		{[]string{"paypal", "checkout"}, domain.IntentPayment, 1.0},
		{[]string{"hello", "there"}, domain.IntentGreeting, 0.5},
		{[]string{"broken", "damaged", "item"}, domain.IntentComplaint, 2.0 / 3.0},
		{[]string{"refund"}, domain.IntentReturnRefund, 1.0},
	}
	for _, tc := range cases {
		got := Classify(tc.tokens)
		if got.Intent != tc.want {
			t.Fatalf("Classify(%v) intent = %s, want %s", tc.tokens, got.Intent, tc.want)
		}
		if got.Confidence != tc.conf {
			t.Fatalf("Classify(%v) confidence = %v, want %v", tc.tokens, got.Confidence, tc.conf)
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	got := Classify(nil)
	if got.Intent != domain.IntentGeneral {
		t.Fatalf("expected general intent, got %s", got.Intent)
	}
	if got.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", got.Confidence)
	}
}

func TestClassifyNoSignal(t *testing.T) {
	got := Classify([]string{"completely", "unrelated", "words"})
	if got.Intent != domain.IntentGeneral {
		t.Fatalf("expected general intent, got %s", got.Intent)
	}
	if got.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", got.Confidence)
	}
}

func TestClassifyTieBreakTaxonomyOrder(t *testing.T) {
	// "track" scores order_tracking, "shipping" scores shipping; the tie
	// resolves to order_tracking because it is declared earlier.
	for _, tokens := range [][]string{
		{"track", "shipping"},
		{"shipping", "track"},
	} {
		got := Classify(tokens)
		if got.Intent != domain.IntentOrderTracking {
			t.Fatalf("Classify(%v) = %s, want order_tracking", tokens, got.Intent)
		}
	}

	// "delivery" is a keyword of both order_tracking and shipping; the
	// earlier rule wins.
	got := Classify([]string{"delivery"})
	if got.Intent != domain.IntentOrderTracking {
		t.Fatalf("Classify([delivery]) = %s, want order_tracking", got.Intent)
	}
}

func TestClassifyDuplicateTokensCount(t *testing.T) {
	got := Classify([]string{"size", "size", "payment"})
	if got.Intent != domain.IntentSizeHelp {
		t.Fatalf("expected size_help, got %s", got.Intent)
	}
	if got.Confidence != 2.0/3.0 {
		t.Fatalf("expected confidence 2/3, got %v", got.Confidence)
	}
}

func TestClassifyLowConfidenceStillWins(t *testing.T) {
	tokens := []string{"um", "so", "about", "that", "thing", "with", "the", "refund"}
	got := Classify(tokens)
	if got.Intent != domain.IntentReturnRefund {
		t.Fatalf("expected return_refund, got %s", got.Intent)
	}
	if got.Confidence >= 0.2 {
		t.Fatalf("expected low confidence, got %v", got.Confidence)
	}
}
