package storefront

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/pawtopia/storefront/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

type storefrontTestContext struct {
	deps     Deps
	sessions map[string]*Session
	current  *Session
	badgeMu  sync.Mutex
	badges   map[string][]cart.Badge
	outcome  Outcome
	toasts   []string
	err      error
}

func (c *storefrontTestContext) reset() {
	for _, s := range c.sessions {
		s.Close()
	}
	c.deps = Deps{}
	c.sessions = make(map[string]*Session)
	c.current = nil
	c.badgeMu.Lock()
	c.badges = make(map[string][]cart.Badge)
	c.badgeMu.Unlock()
	c.outcome = Outcome{}
	c.toasts = nil
	c.err = nil
}

func (c *storefrontTestContext) dispatch(a Action) {
	c.dispatchOn(c.current, a)
}

func (c *storefrontTestContext) dispatchOn(s *Session, a Action) {
	c.outcome, c.err = s.Dispatch(context.Background(), a)
	c.toasts = append(c.toasts, c.outcome.Toasts...)
}

func (c *storefrontTestContext) theStaticCatalog() error {
	index, err := catalog.LoadIndex(context.Background(), catalog.StaticFeed{})
	if err != nil {
		return err
	}
	cfg := testConfig()
	c.deps = Deps{
		Catalog: catalog.NewService(index, cfg),
		Store:   storage.NewMemory(),
		Config:  cfg,
		Log:     logger.Discard(),
	}
	return nil
}

func (c *storefrontTestContext) aPageSessionForNamespaceAndTab(namespace, tab string) error {
	s := NewSession(context.Background(), c.deps, namespace, tab)
	s.OnCartChange(func(b cart.Badge) {
		c.badgeMu.Lock()
		defer c.badgeMu.Unlock()
		c.badges[tab] = append(c.badges[tab], b)
	})
	c.sessions[tab] = s
	if c.current == nil {
		c.current = s
	}
	return nil
}

func (c *storefrontTestContext) iAddToTheCart(slug string) error {
	c.dispatch(Action{Type: ActionAddToCart, Slug: slug})
	return c.err
}

func (c *storefrontTestContext) theCartHolds(qty int, slug string) error {
	c.dispatch(Action{Type: ActionAddToCart, Slug: slug, Qty: qty})
	return c.err
}

func (c *storefrontTestContext) theCartHasItemsAndASubtotalOf(count int, subtotal string) error {
	sum := c.current.Cart(context.Background())
	if sum.Totals.ItemCount != count {
		return fmt.Errorf("expected %d items, got %d", count, sum.Totals.ItemCount)
	}
	return equalAmount("subtotal", subtotal, sum.Totals.Subtotal)
}

func (c *storefrontTestContext) theCartHasLineWithQuantity(lines, qty int) error {
	sum := c.current.Cart(context.Background())
	if len(sum.Items) != lines {
		return fmt.Errorf("expected %d lines, got %d", lines, len(sum.Items))
	}
	if sum.Items[0].Qty != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, sum.Items[0].Qty)
	}
	return nil
}

func (c *storefrontTestContext) theToastWasShown(message string) error {
	for _, t := range c.toasts {
		if t == message {
			return nil
		}
	}
	return fmt.Errorf("toast %q not shown, got %q", message, c.toasts)
}

func (c *storefrontTestContext) iApplyTheCoupon(code string) error {
	// a rejected code is checked by a later step
	c.dispatch(Action{Type: ActionApplyCoupon, Code: code})
	return nil
}

func (c *storefrontTestContext) iRemoveTheCoupon() error {
	c.dispatch(Action{Type: ActionRemoveCoupon})
	return c.err
}

func (c *storefrontTestContext) theDiscountIsAndTheTotalIs(discount, total string) error {
	sum := c.current.Cart(context.Background())
	if err := equalAmount("discount", discount, sum.Totals.Discount); err != nil {
		return err
	}
	return equalAmount("total", total, sum.Totals.Total)
}

func (c *storefrontTestContext) theActionFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the action to fail")
	}
	if c.err.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, c.err.Error())
	}
	return nil
}

func (c *storefrontTestContext) aPageSizeOf(n int) error {
	c.dispatch(Action{Type: ActionSetPageSize, PageSize: n})
	return c.err
}

func (c *storefrontTestContext) iGoToPage(page int) error {
	c.dispatch(Action{Type: ActionGoToPage, Page: page})
	return c.err
}

func (c *storefrontTestContext) iToggleTheFilter(id string) error {
	c.dispatch(Action{Type: ActionToggleFilter, Filter: id})
	return c.err
}

func (c *storefrontTestContext) pageShowsItemsToOf(page, start, end, total int) error {
	r := c.current.Result()
	if r.Page.Page != page {
		return fmt.Errorf("expected page %d, got %d", page, r.Page.Page)
	}
	want := fmt.Sprintf("Showing %d - %d of %d products", start, end, total)
	if r.Label != want {
		return fmt.Errorf("expected label %q, got %q", want, r.Label)
	}
	return nil
}

func (c *storefrontTestContext) thereArePages(n int) error {
	if got := c.current.Result().TotalPages; got != n {
		return fmt.Errorf("expected %d pages, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) thePageHasProducts(n int) error {
	if got := len(c.current.Result().Items); got != n {
		return fmt.Errorf("expected %d products on the page, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) productsMatch(n int) error {
	if got := c.current.Result().TotalFiltered; got != n {
		return fmt.Errorf("expected %d matches, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) theCurrentPageIs(n int) error {
	if got := c.current.Result().Page.Page; got != n {
		return fmt.Errorf("expected page %d, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) tabAddsToTheCart(tab, slug string) error {
	s, ok := c.sessions[tab]
	if !ok {
		return fmt.Errorf("no session for tab %q", tab)
	}
	c.dispatchOn(s, Action{Type: ActionAddToCart, Slug: slug})
	return c.err
}

func (c *storefrontTestContext) tabWasToldTheCartHoldsItems(tab string, count int) error {
	// updates are delivered asynchronously
	deadline := time.Now().Add(time.Second)
	for {
		c.badgeMu.Lock()
		badges := c.badges[tab]
		got := -1
		if len(badges) > 0 {
			got = badges[len(badges)-1].Count
		}
		c.badgeMu.Unlock()

		switch {
		case got == count:
			return nil
		case time.Now().After(deadline) && got < 0:
			return fmt.Errorf("tab %q got no cart updates", tab)
		case time.Now().After(deadline):
			return fmt.Errorf("expected badge %d, got %d", count, got)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (c *storefrontTestContext) tabHasNoCouponApplied(tab string) error {
	if sum := c.sessions[tab].Cart(context.Background()); sum.Coupon != nil {
		return fmt.Errorf("tab %q has coupon %s", tab, sum.Coupon.Code)
	}
	return nil
}

func equalAmount(name, want string, got decimal.Decimal) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !w.Equal(got) {
		return fmt.Errorf("expected %s %s, got %s", name, w.StringFixed(2), got.StringFixed(2))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the static catalog$`, tc.theStaticCatalog)
	ctx.Step(`^a page session for namespace "([^"]*)" and tab "([^"]*)"$`, tc.aPageSessionForNamespaceAndTab)
	ctx.Step(`^the cart holds (\d+) of "([^"]*)"$`, tc.theCartHolds)
	ctx.Step(`^a page size of (\d+)$`, tc.aPageSizeOf)

	// When steps
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I apply the coupon "([^"]*)"$`, tc.iApplyTheCoupon)
	ctx.Step(`^I remove the coupon$`, tc.iRemoveTheCoupon)
	ctx.Step(`^I go to page (\d+)$`, tc.iGoToPage)
	ctx.Step(`^I toggle the "([^"]*)" filter$`, tc.iToggleTheFilter)
	ctx.Step(`^tab "([^"]*)" adds "([^"]*)" to the cart$`, tc.tabAddsToTheCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) items and a subtotal of ([\d.]+)$`, tc.theCartHasItemsAndASubtotalOf)
	ctx.Step(`^the cart has (\d+) line with quantity (\d+)$`, tc.theCartHasLineWithQuantity)
	ctx.Step(`^the toast "(.*)" was shown$`, tc.theToastWasShown)
	ctx.Step(`^the discount is ([\d.]+) and the total is ([\d.]+)$`, tc.theDiscountIsAndTheTotalIs)
	ctx.Step(`^the action fails with "([^"]*)"$`, tc.theActionFailsWith)
	ctx.Step(`^page (\d+) shows items (\d+) to (\d+) of (\d+)$`, tc.pageShowsItemsToOf)
	ctx.Step(`^there are (\d+) pages$`, tc.thereArePages)
	ctx.Step(`^the page has (\d+) products$`, tc.thePageHasProducts)
	ctx.Step(`^(\d+) products match$`, tc.productsMatch)
	ctx.Step(`^the current page is (\d+)$`, tc.theCurrentPageIs)
	ctx.Step(`^tab "([^"]*)" was told the cart holds (\d+) items$`, tc.tabWasToldTheCartHoldsItems)
	ctx.Step(`^tab "([^"]*)" has no coupon applied$`, tc.tabHasNoCouponApplied)
}

func TestFeatures(t *testing.T) {
	if _, err := os.Stat("features/storefront.feature"); err != nil {
		t.Skipf("feature files not found: %v", err)
	}

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
