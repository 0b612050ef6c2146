// internal/domain/storefront/handlers.go
package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/coupon"
	"github.com/pawtopia/storefront/internal/domain/rating"
	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/pawtopia/storefront/internal/pkg/slug"
)

// handler runs one action with the session lock held
type handler func(s *Session, ctx context.Context, a Action, out *Outcome) error

var dispatch = map[ActionType]handler{
	ActionSearch:       (*Session).search,
	ActionToggleFilter: (*Session).toggleFilter,
	ActionSetPrice:     (*Session).setPrice,
	ActionSetSort:      (*Session).setSort,
	ActionSetPageSize:  (*Session).setPageSize,
	ActionGoToPage:     (*Session).goToPage,
	ActionClearFilters: (*Session).clearFilters,
	ActionAddToCart:    (*Session).addToCart,
	ActionChangeQty:    (*Session).changeQty,
	ActionRemoveItem:   (*Session).removeItem,
	ActionClearCart:    (*Session).clearCart,
	ActionApplyCoupon:  (*Session).applyCoupon,
	ActionRemoveCoupon: (*Session).removeCoupon,
	ActionCheckout:     (*Session).checkout,
	ActionOpenProduct:  (*Session).openProduct,
}

// Actions lists the action types the dispatch table handles
func Actions() []ActionType {
	out := make([]ActionType, 0, len(dispatch))
	for t := range dispatch {
		out = append(out, t)
	}
	return out
}

func (s *Session) listing(out *Outcome) {
	r := s.view.Result()
	out.Result = &r
}

func (s *Session) search(_ context.Context, a Action, out *Outcome) error {
	s.view.SetQuery(a.Query)
	s.listing(out)
	return nil
}

func (s *Session) toggleFilter(_ context.Context, a Action, out *Outcome) error {
	if strings.TrimSpace(a.Filter) == "" {
		return fmt.Errorf("%w: filter is required", ErrInvalidAction)
	}
	if a.Checked == nil {
		s.view.ToggleCategory(a.Filter)
	} else {
		s.view.SetCategory(a.Filter, *a.Checked)
	}
	s.listing(out)
	return nil
}

func (s *Session) setPrice(_ context.Context, a Action, out *Outcome) error {
	s.view.SetPriceBounds(a.Min, a.Max)
	s.listing(out)
	return nil
}

func (s *Session) setSort(ctx context.Context, a Action, out *Outcome) error {
	c, ok := catalog.ParseCriterion(a.Sort)
	if !ok {
		c = catalog.ParseSortLabel(a.Sort)
	}
	s.view.SetSort(c)
	s.prefs.SetSort(ctx, c)
	s.listing(out)
	return nil
}

func (s *Session) setPageSize(ctx context.Context, a Action, out *Outcome) error {
	if err := s.view.SetPageSize(a.PageSize); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	s.prefs.SetPageSize(ctx, a.PageSize)
	s.listing(out)
	return nil
}

func (s *Session) goToPage(_ context.Context, a Action, out *Outcome) error {
	s.view.GoToPage(a.Page)
	s.listing(out)
	return nil
}

func (s *Session) clearFilters(_ context.Context, _ Action, out *Outcome) error {
	s.view.ClearAll()
	s.listing(out)
	return nil
}

func (s *Session) addToCart(ctx context.Context, a Action, out *Outcome) error {
	var item cart.LineItem
	switch {
	case a.Item != nil:
		item = *a.Item
		item.Title = strings.TrimSpace(item.Title)
		if item.Slug == "" {
			item.Slug = slug.Make(item.Title)
		}
		if item.Slug == "" {
			return fmt.Errorf("%w: item needs a slug or title", ErrInvalidAction)
		}
		if item.Price.IsZero() {
			item.Price = money.ParseOrZero(item.PriceText)
		}
		if strings.TrimSpace(item.PriceText) == "" {
			item.PriceText = money.Format(item.Price)
		}
		if a.Qty == 0 {
			a.Qty = item.Qty
		}
	case a.Slug != "":
		p, err := s.catalog.Find(a.Slug)
		if err != nil {
			return fmt.Errorf("failed to add %q: %w", a.Slug, err)
		}
		item = cart.FromProduct(p)
	default:
		return fmt.Errorf("%w: slug or item is required", ErrInvalidAction)
	}

	items := s.cart.AddItem(ctx, item, a.Qty)
	sum := s.summarize(items)
	out.Cart = &sum
	s.toast(out, AddedToast(item.Title))
	return nil
}

func (s *Session) changeQty(ctx context.Context, a Action, out *Outcome) error {
	if a.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidAction)
	}
	sum := s.summarize(s.cart.ChangeQty(ctx, a.Slug, a.Delta))
	out.Cart = &sum
	return nil
}

func (s *Session) removeItem(ctx context.Context, a Action, out *Outcome) error {
	if a.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidAction)
	}
	sum := s.summarize(s.cart.RemoveItem(ctx, a.Slug))
	out.Cart = &sum
	return nil
}

func (s *Session) clearCart(ctx context.Context, _ Action, out *Outcome) error {
	sum := s.summarize(s.cart.Clear(ctx))
	out.Cart = &sum
	return nil
}

// applyCoupon reports a rejected code both as a toast and as the returned
// error; the outcome still carries the re-rendered cart.
func (s *Session) applyCoupon(ctx context.Context, a Action, out *Outcome) error {
	res, err := s.coupons.Apply(a.Code)
	sum := s.summary(ctx)
	out.Cart = &sum

	switch {
	case errors.Is(err, coupon.ErrEmptyCode):
		s.toast(out, ToastEnterCoupon)
		return err
	case errors.Is(err, coupon.ErrInvalidCode):
		s.toast(out, ToastInvalidCoupon)
		return err
	case err != nil:
		return err
	}

	s.toast(out, CouponAppliedToast(coupon.Percent(res.Rate)))
	return nil
}

func (s *Session) removeCoupon(ctx context.Context, _ Action, out *Outcome) error {
	if s.coupons.Remove() {
		s.toast(out, ToastCouponRemoved)
	} else {
		s.toast(out, ToastNoCoupon)
	}
	sum := s.summary(ctx)
	out.Cart = &sum
	return nil
}

// checkout is cosmetic: it confirms and leaves the cart as it is
func (s *Session) checkout(ctx context.Context, _ Action, out *Outcome) error {
	sum := s.summary(ctx)
	out.Cart = &sum
	if len(sum.Items) == 0 {
		return ErrEmptyCart
	}
	s.toast(out, ToastCheckedOut)
	return nil
}

func (s *Session) openProduct(ctx context.Context, a Action, out *Outcome) error {
	p, err := s.view.OpenProduct(a.Slug)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", a.Slug, err)
	}
	r := s.ratings.GetOrCreate(ctx, rating.Key(p.Title, p.Image))
	out.Product = &p
	out.Rating = &r
	s.listing(out)
	return nil
}
