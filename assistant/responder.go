package assistant

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/globalantic/globot/catalog"
	"github.com/globalantic/globot/domain"
	"github.com/globalantic/globot/policy"
	"github.com/globalantic/globot/shop"
)

const (
	searchLimit    = 3
	recommendLimit = 4

	stageDateLayout = "Jan 2, 2006"
)

// Responder maps a classified user turn to a structured assistant reply.
// All collaborators are read-only: the catalog is queried, the cart and
// wishlist counters are sampled at generation time, the policy engine
// decides whether the turn is routed to priority support.
type Responder struct {
	catalog  catalog.Catalog
	cart     shop.Counter
	wishlist shop.Counter
	policy   *policy.Engine
	now      func() time.Time
}

// NewResponder wires a responder with its collaborators. The policy engine
// may be nil, in which case every turn gets the plain reply.
func NewResponder(cat catalog.Catalog, cart, wishlist shop.Counter, engine *policy.Engine) *Responder {
	return &Responder{
		catalog:  cat,
		cart:     cart,
		wishlist: wishlist,
		policy:   engine,
		now:      time.Now,
	}
}

// Welcome is the synthesized greeting appended when a session is first
// opened.
func (r *Responder) Welcome() domain.Message {
	text := fmt.Sprintf("%s! 👋 I'm GloBot, your AI-powered shopping assistant. I use advanced algorithms to provide personalized recommendations and instant support.", r.salutation())
	return r.plain(text, []string{"Show trending products", "Help me find something", "Track my order", "Size guide"})
}

// Apology is the fixed reply used when generation fails. It is the worst
// observable outcome of a turn.
func (r *Responder) Apology() domain.Message {
	return r.plain(
		"I apologize, but I'm having trouble processing your request. Please try again or contact our support team.",
		[]string{"Try again", "Contact support", "Main menu"},
	)
}

// Generate builds the reply for one classified turn. Catalog failures are
// returned to the caller; the session converts them to the apology reply at
// the turn boundary.
func (r *Responder) Generate(ctx context.Context, cls Classification, rawText string, uc domain.UserContext) (domain.Message, error) {
	decision := r.escalationDecision(ctx, cls, uc)

	var msg domain.Message
	switch cls.Intent {
	case domain.IntentGreeting:
		msg = r.greeting()
	case domain.IntentProductSearch:
		var err error
		msg, err = r.productSearch(ctx, rawText)
		if err != nil {
			return domain.Message{}, err
		}
	case domain.IntentOrderTracking:
		msg = r.orderTracking(rawText)
	case domain.IntentRecommendation:
		var err error
		msg, err = r.recommendation(ctx)
		if err != nil {
			return domain.Message{}, err
		}
	case domain.IntentSizeHelp:
		msg = r.sizeHelp()
	case domain.IntentPayment:
		msg = r.payment()
	case domain.IntentShipping:
		msg = r.shipping()
	case domain.IntentReturnRefund:
		msg = r.returnRefund()
	case domain.IntentComplaint:
		msg = r.complaint(decision)
	default:
		msg = r.general()
	}

	if decision == policy.DecisionEscalate && cls.Intent != domain.IntentComplaint {
		msg.Suggestions = appendUnique(msg.Suggestions, "Contact support")
	}

	return msg, nil
}

// escalationDecision consults the policy engine for the turn. Evaluation
// failures route to escalate so a broken policy never hides a complaint.
func (r *Responder) escalationDecision(ctx context.Context, cls Classification, uc domain.UserContext) string {
	if r.policy == nil {
		return policy.DecisionRespond
	}
	decision, err := r.policy.Evaluate(ctx, policy.Input{
		Intent:       string(cls.Intent),
		Confidence:   cls.Confidence,
		MessageCount: len(uc.RecentQueries),
	})
	if err != nil {
		log.Printf("WARN: policy evaluation failed: %v", err)
		return policy.DecisionEscalate
	}
	return decision
}

func (r *Responder) greeting() domain.Message {
	text := fmt.Sprintf("%s! 👋 I'm GloBot, your AI shopping assistant. I can help you find products, track orders, answer questions, and provide personalized recommendations. What can I help you with today?", r.salutation())
	return r.plain(text, []string{"Show trending products", "Track my order", "Size guide help", "Payment options"})
}

func (r *Responder) productSearch(ctx context.Context, rawText string) (domain.Message, error) {
	term := ExtractSearchTerm(rawText)

	products, err := r.catalog.Search(ctx, term, searchLimit)
	if err != nil {
		return domain.Message{}, fmt.Errorf("catalog search failed: %w", err)
	}

	if len(products) == 0 {
		text := fmt.Sprintf("I couldn't find exact matches for %q, but I can show you our popular items in similar categories. Would you like me to suggest alternatives?", term)
		return r.plain(text, []string{"Show popular items", "Browse categories", "Refine search"}), nil
	}

	msg := r.plain(
		fmt.Sprintf("I found %d products matching %q. Here are the top results:", len(products), term),
		[]string{"Show more results", "Filter by price", "Check availability"},
	)
	msg.Kind = domain.KindProductList
	msg.Products = products
	return msg, nil
}

func (r *Responder) orderTracking(rawText string) domain.Message {
	orderNumber := ExtractOrderNumber(rawText)
	if orderNumber == "" {
		return r.plain(
			"I can help you track your order! Please provide your order number (format: #ABC123) or email address used for the purchase.",
			[]string{"I have order number", "Use email instead", "Recent orders"},
		)
	}

	status := r.orderStatus(orderNumber)
	text := fmt.Sprintf("📦 Order #%s Status:\n\n", orderNumber)
	icons := []string{"✅", "🏭", "📦", "🚚", "🏠"}
	for i, stage := range status.Stages {
		text += fmt.Sprintf("%s %s - %s\n", icons[i], stage.Label, stage.Date)
	}
	text += fmt.Sprintf("\nTracking: %s", status.TrackingCode)

	msg := r.plain(text, []string{"Track another order", "Contact support", "View order details"})
	msg.Kind = domain.KindActionCard
	msg.Action = &status
	return msg
}

// orderStatus synthesizes the deterministic five-stage narrative for an
// order token. No order system exists behind it.
func (r *Responder) orderStatus(orderNumber string) domain.OrderStatus {
	now := r.now()
	day := 24 * time.Hour
	stages := []domain.OrderStage{
		{Label: "Order Confirmed", Date: now.Add(-4 * day).Format(stageDateLayout)},
		{Label: "Processing", Date: now.Add(-3 * day).Format(stageDateLayout)},
		{Label: "Shipped", Date: now.Add(-2 * day).Format(stageDateLayout)},
		{Label: "Out for Delivery", Date: now.Format(stageDateLayout)},
		{Label: "Expected Delivery", Date: now.Add(2 * day).Format(stageDateLayout)},
	}
	return domain.OrderStatus{
		OrderNumber:  orderNumber,
		TrackingCode: "TRK" + orderNumber + "123",
		Stages:       stages,
	}
}

func (r *Responder) recommendation(ctx context.Context) (domain.Message, error) {
	products, err := r.catalog.Recommend(ctx, recommendLimit)
	if err != nil {
		return domain.Message{}, fmt.Errorf("catalog recommend failed: %w", err)
	}

	msg := r.plain(
		"Based on current trends and customer favorites, here are my top recommendations for you:",
		[]string{"More recommendations", "Filter by category", "Price range"},
	)
	msg.Kind = domain.KindProductList
	msg.Products = products
	return msg, nil
}

func (r *Responder) sizeHelp() domain.Message {
	return r.plain(
		"👕 Size Guide Assistant:\n\n• **Clothing**: Check our detailed size charts\n• **Shoes**: We recommend going up 0.5 size\n• **Accessories**: One size fits most\n\nNeed help with a specific item? Share the product name!",
		[]string{"View size chart", "Fit recommendations", "Exchange policy"},
	)
}

func (r *Responder) payment() domain.Message {
	return r.plain(
		"💳 **Secure Payment Options:**\n\n✅ Credit/Debit Cards (Visa, Mastercard, Amex)\n✅ PayPal & Apple Pay\n✅ Buy Now, Pay Later (Klarna)\n✅ Cryptocurrency (Bitcoin, Ethereum)\n\n🔒 256-bit SSL encryption ensures your data is safe!",
		[]string{"Payment security", "Installment options", "Currency support"},
	)
}

func (r *Responder) shipping() domain.Message {
	return r.plain(
		"🚚 **Shipping Information:**\n\n🆓 **Free Standard** (3-5 days) - Orders $75+\n⚡ **Express** (1-2 days) - $9.99\n🌍 **International** (7-14 days) - Varies\n📦 **Same Day** (Select cities) - $19.99\n\nYour location: Estimated delivery in 2-3 days!",
		[]string{"Track shipment", "Delivery options", "International rates"},
	)
}

func (r *Responder) returnRefund() domain.Message {
	return r.plain(
		"🔄 **Easy Returns & Refunds:**\n\n✅ 30-day return window\n✅ Free return shipping\n✅ Full refund or exchange\n✅ No questions asked policy\n\nWant to start a return? I can help you with that!",
		[]string{"Start return", "Return status", "Exchange item"},
	)
}

func (r *Responder) complaint(decision string) domain.Message {
	if decision == policy.DecisionEscalate {
		return r.plain(
			"I'm sorry to hear you're experiencing an issue! 😔 I'm here to help resolve this quickly. Can you please describe the problem in detail? I'll escalate this to our priority support team.",
			[]string{"Describe issue", "Request refund", "Speak to manager"},
		)
	}
	return r.plain(
		"I'm sorry to hear you're experiencing an issue! 😔 Can you please describe the problem in detail so I can help resolve it?",
		[]string{"Describe issue", "Request refund", "Contact support"},
	)
}

func (r *Responder) general() domain.Message {
	text := "I'm here to help! I can assist with:\n\n🔍 Product search & recommendations\n📦 Order tracking & status\n💳 Payment & checkout help\n🚚 Shipping information\n🔄 Returns & exchanges\n📏 Size guides & fit help"

	if r.cart != nil {
		if n := r.cart.ItemCount(); n > 0 {
			text += fmt.Sprintf("\n\n🛒 I see you have %d items in your cart. Need help with checkout?", n)
		}
	}
	if r.wishlist != nil {
		if n := r.wishlist.ItemCount(); n > 0 {
			text += fmt.Sprintf("\n❤️ You have %d items in your wishlist.", n)
		}
	}

	return r.plain(text, []string{"Find products", "Track order", "Size help", "Payment info"})
}

// salutation picks the time-of-day greeting: morning before 12h, afternoon
// before 17h, evening otherwise.
func (r *Responder) salutation() string {
	hour := r.now().Hour()
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (r *Responder) plain(text string, suggestions []string) domain.Message {
	return domain.Message{
		Sender:      domain.SenderAssistant,
		Text:        text,
		Kind:        domain.KindPlain,
		CreatedAt:   r.now(),
		Suggestions: suggestions,
	}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
