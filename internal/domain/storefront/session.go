// internal/domain/storefront/session.go
package storefront

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/coupon"
	"github.com/pawtopia/storefront/internal/domain/rating"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/pawtopia/storefront/internal/pkg/debounce"
	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/sirupsen/logrus"
)

// ErrInvalidAction is returned when an action is missing a required field
// or carries an unusable value
var ErrInvalidAction = errors.New("invalid action")

// Deps are the collaborators shared by every session
type Deps struct {
	Catalog *catalog.Service
	Store   storage.Store
	Config  *config.Config
	Log     logrus.FieldLogger

	// NewRandom returns the random source of one session. Defaults to a
	// freshly seeded PCG.
	NewRandom func() rating.RandomSource
}

func (d Deps) random() rating.RandomSource {
	if d.NewRandom != nil {
		return d.NewRandom()
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Session is the state of one open page: its listing view, the coupon
// applied in this tab and handles on the namespace's cart, preferences and
// ratings. Actions are serialized one at a time.
type Session struct {
	namespace string
	tab       string
	log       logrus.FieldLogger

	mu       sync.Mutex
	catalog  *catalog.Service
	view     *catalog.View
	prefs    *catalog.Preferences
	cart     *cart.Store
	coupons  *coupon.Engine
	ratings  *rating.Service
	random   rating.RandomSource
	lastSeen time.Time

	listenMu  sync.Mutex
	nextID    int
	listeners map[int]Notifier

	searchInput  *debounce.Debouncer
	priceInput   *debounce.Debouncer
	suggestInput *debounce.Debouncer

	closed    chan struct{}
	closeOnce sync.Once
}

// NewSession opens a page session for tab within namespace
func NewSession(ctx context.Context, deps Deps, namespace, tab string) *Session {
	bucket := storage.Scope(deps.Store, namespace)
	log := deps.Log.WithFields(logrus.Fields{"namespace": namespace, "tab": tab})
	random := deps.random()
	prefs := catalog.NewPreferences(bucket, log)

	return &Session{
		namespace:    namespace,
		tab:          tab,
		log:          log,
		catalog:      deps.Catalog,
		view:         deps.Catalog.NewView(ctx, prefs),
		prefs:        prefs,
		cart:         cart.NewStore(bucket, uuid.NewString(), log),
		coupons:      coupon.NewEngine(deps.Config.Coupons.Codes),
		ratings:      rating.NewService(bucket, random, log),
		random:       random,
		lastSeen:     time.Now(),
		listeners:    make(map[int]Notifier),
		searchInput:  debounce.New(deps.Config.Catalog.SearchDebounce),
		priceInput:   debounce.New(deps.Config.Catalog.PriceDebounce),
		suggestInput: debounce.New(deps.Config.Catalog.SuggestDebounce),
		closed:       make(chan struct{}),
	}
}

// Namespace returns the storage namespace the session reads and writes
func (s *Session) Namespace() string {
	return s.namespace
}

// Dispatch runs a through the handler registered for its type
func (s *Session) Dispatch(ctx context.Context, a Action) (Outcome, error) {
	h, ok := dispatch[a.Type]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()

	var out Outcome
	err := h(s, ctx, a, &out)
	return out, err
}

// Debounced dispatches search and set-price actions once their input has
// been quiet for the configured delay; a newer action of the same type
// replaces a pending one, whose done is then never called. Other actions
// run immediately.
func (s *Session) Debounced(ctx context.Context, a Action, done func(Outcome, error)) {
	var input *debounce.Debouncer
	switch a.Type {
	case ActionSearch:
		input = s.searchInput
	case ActionSetPrice:
		input = s.priceInput
	default:
		done(s.Dispatch(ctx, a))
		return
	}

	ctx = context.WithoutCancel(ctx)
	input.Call(func() {
		done(s.Dispatch(ctx, a))
	})
}

// Suggest computes autocomplete suggestions for q after the suggestion
// delay
func (s *Session) Suggest(q string, done func([]catalog.Suggestion)) {
	s.suggestInput.Call(func() {
		done(s.catalog.Suggest(q))
	})
}

// Result recomputes the current listing
func (s *Session) Result() catalog.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Result()
}

// Load is a page load. The tab starts over from a fresh view seeded with
// the stored preferences and without a coupon, then the deep link, if any,
// is applied. It reports which product the link points at.
func (s *Session) Load(ctx context.Context, link catalog.DeepLink) (catalog.DeepLinkOutcome, catalog.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()

	s.view = s.catalog.NewView(ctx, s.prefs)
	s.coupons.Remove()

	if link.IsZero() {
		return catalog.DeepLinkOutcome{}, s.view.Result()
	}
	return s.view.ApplyDeepLink(link), s.view.Result()
}

// Cart returns the cart with this tab's coupon applied
func (s *Session) Cart(ctx context.Context) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(ctx)
}

// Rating returns the memoized rating for key
func (s *Session) Rating(ctx context.Context, key string) rating.Rating {
	return s.ratings.GetOrCreate(ctx, key)
}

// Reviews builds the review feed for the whole catalog
func (s *Session) Reviews(ctx context.Context, max int) []rating.Review {
	return s.ratings.Reviews(ctx, s.catalog.Index().Products(), max)
}

// CouponSuggestions lists the codes offered in the coupon dropdown
func (s *Session) CouponSuggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coupons.Suggestions()
}

// Recommend picks up to n random products
func (s *Session) Recommend(n int) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Recommend(n, s.random)
}

// OnCartChange calls fn with the badge after every cart write in the
// namespace, from this tab or another one. fn runs on its own goroutine so
// a slow observer never holds up the writer; writes that land while fn is
// busy are coalesced into one call that reads the latest cart.
func (s *Session) OnCartChange(fn func(cart.Badge)) func() {
	pending := make(chan struct{}, 1)
	done := make(chan struct{})

	unsubscribe := s.cart.Subscribe(func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-s.closed:
				return
			case <-pending:
				fn(cart.BadgeFor(cart.ItemCount(s.cart.Load(context.Background()))))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}

// Listen registers n for toast messages. The returned function removes it.
func (s *Session) Listen(n Notifier) func() {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = n
	return func() {
		s.listenMu.Lock()
		defer s.listenMu.Unlock()
		delete(s.listeners, id)
	}
}

// LastSeen is when the session last handled an action
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// Close cancels pending input and stops listening for cart changes. It
// may be called more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.searchInput.Cancel()
		s.priceInput.Cancel()
		s.suggestInput.Cancel()
		s.cart.Close()
		close(s.closed)
	})
}

func (s *Session) toast(out *Outcome, message string) {
	out.Toasts = append(out.Toasts, message)

	s.listenMu.Lock()
	listeners := make([]Notifier, 0, len(s.listeners))
	for _, n := range s.listeners {
		listeners = append(listeners, n)
	}
	s.listenMu.Unlock()

	if len(listeners) == 0 {
		LogNotifier{Log: s.log}.Notify(message)
	}
	for _, n := range listeners {
		n.Notify(message)
	}
}

func (s *Session) summary(ctx context.Context) CartSummary {
	items := s.cart.Load(ctx)
	return s.summarize(items)
}

func (s *Session) summarize(items []cart.LineItem) CartSummary {
	subtotal := cart.Subtotal(items)
	totals := cart.ComputeTotals(items, s.coupons.Discount(subtotal))
	sum := CartSummary{
		Items:  items,
		Totals: totals,
		Display: TotalsText{
			Subtotal: money.Format(totals.Subtotal),
			Discount: money.Format(totals.Discount),
			Total:    money.Format(totals.Total),
		},
		Badge: cart.BadgeFor(cart.ItemCount(items)),
	}
	if code, rate, ok := s.coupons.Active(); ok {
		sum.Coupon = &AppliedCoupon{Code: code, Rate: rate, Percent: coupon.Percent(rate)}
	}
	return sum
}
