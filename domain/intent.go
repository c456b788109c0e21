package domain

// Intent is the classified purpose category of a user utterance.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentProductSearch  Intent = "product_search"
	IntentOrderTracking  Intent = "order_tracking"
	IntentSizeHelp       Intent = "size_help"
	IntentPayment        Intent = "payment"
	IntentShipping       Intent = "shipping"
	IntentReturnRefund   Intent = "return_refund"
	IntentComplaint      Intent = "complaint"
	IntentRecommendation Intent = "recommendation"
	// IntentGeneral is the fallback when no keyword scores.
	IntentGeneral Intent = "general"
)

// IntentRule binds an intent to its keyword set.
type IntentRule struct {
	Name     Intent
	Keywords []string
}

// Matches reports whether token exactly equals one of the rule's keywords.
// Tokens are expected to be lowercased already.
func (r IntentRule) Matches(token string) bool {
	for _, kw := range r.Keywords {
		if token == kw {
			return true
		}
	}
	return false
}

// taxonomy is the static intent catalog. Declaration order is the
// tie-break order: when two rules score equally, the earlier one wins.
var taxonomy = []IntentRule{
	{Name: IntentGreeting, Keywords: []string{"hi", "hello", "hey", "good", "morning", "afternoon"}},
	{Name: IntentProductSearch, Keywords: []string{"find", "search", "looking", "want", "need", "show", "recommend"}},
	{Name: IntentOrderTracking, Keywords: []string{"track", "order", "status", "shipped", "delivery"}},
	{Name: IntentSizeHelp, Keywords: []string{"size", "fit", "measurement", "large", "small", "medium"}},
	{Name: IntentPayment, Keywords: []string{"payment", "pay", "card", "paypal", "checkout"}},
	{Name: IntentShipping, Keywords: []string{"shipping", "delivery", "ship", "arrive", "when"}},
	{Name: IntentReturnRefund, Keywords: []string{"return", "refund", "exchange", "cancel"}},
	{Name: IntentComplaint, Keywords: []string{"problem", "issue", "wrong", "broken", "damaged", "complaint"}},
	{Name: IntentRecommendation, Keywords: []string{"suggest", "recommend", "best", "popular", "trending"}},
}

// Taxonomy returns the intent rules in declaration order.
func Taxonomy() []IntentRule {
	return taxonomy
}
