// internal/domain/storefront/action.go
package storefront

import (
	"errors"
	"fmt"

	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/rating"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownAction is returned for an action type with no handler
	ErrUnknownAction = errors.New("unknown action")
	// ErrEmptyCart is returned when checking out with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")
)

// ActionType names a UI intent
type ActionType string

const (
	ActionSearch       ActionType = "search"
	ActionToggleFilter ActionType = "toggle-filter"
	ActionSetPrice     ActionType = "set-price"
	ActionSetSort      ActionType = "set-sort"
	ActionSetPageSize  ActionType = "set-page-size"
	ActionGoToPage     ActionType = "go-to-page"
	ActionClearFilters ActionType = "clear-filters"
	ActionAddToCart    ActionType = "add-to-cart"
	ActionChangeQty    ActionType = "change-qty"
	ActionRemoveItem   ActionType = "remove-item"
	ActionClearCart    ActionType = "clear-cart"
	ActionApplyCoupon  ActionType = "apply-coupon"
	ActionRemoveCoupon ActionType = "remove-coupon"
	ActionCheckout     ActionType = "checkout"
	ActionOpenProduct  ActionType = "open-product"
)

// Action is one UI intent. Only the fields its type reads are set.
type Action struct {
	Type ActionType `json:"type" binding:"required"`

	Query   string `json:"query,omitempty"`
	Filter  string `json:"filter,omitempty"`
	Checked *bool  `json:"checked,omitempty"` // nil toggles
	Min     string `json:"min,omitempty"`
	Max     string `json:"max,omitempty"`
	Sort    string `json:"sort,omitempty"`

	PageSize int `json:"pageSize,omitempty"`
	Page     int `json:"page,omitempty"`

	Slug  string         `json:"slug,omitempty"`
	Qty   int            `json:"qty,omitempty"`
	Delta int            `json:"delta,omitempty"`
	Item  *cart.LineItem `json:"item,omitempty"` // add-to-cart without a catalog lookup
	Code  string         `json:"code,omitempty"`
}

// AppliedCoupon describes the active coupon of a session
type AppliedCoupon struct {
	Code    string          `json:"code"`
	Rate    decimal.Decimal `json:"rate"`
	Percent int64           `json:"percent"`
}

// TotalsText holds the totals as display strings such as "₱ 1,500.00"
type TotalsText struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

// CartSummary is what the cart page and the header badge render
type CartSummary struct {
	Items   []cart.LineItem `json:"items"`
	Totals  cart.Totals     `json:"totals"`
	Display TotalsText      `json:"display"`
	Badge   cart.Badge      `json:"badge"`
	Coupon  *AppliedCoupon  `json:"coupon,omitempty"`
}

// Outcome is the result of dispatching one action
type Outcome struct {
	Result  *catalog.Result  `json:"result,omitempty"`
	Cart    *CartSummary     `json:"cart,omitempty"`
	Product *catalog.Product `json:"product,omitempty"`
	Rating  *rating.Rating   `json:"rating,omitempty"`
	Toasts  []string         `json:"toasts,omitempty"`
}

// Toast messages
const (
	ToastEnterCoupon   = "Enter a coupon code."
	ToastInvalidCoupon = "Invalid coupon code"
	ToastNoCoupon      = "No coupon to remove"
	ToastCouponRemoved = "Coupon removed"
	ToastCheckedOut    = "Item has been checked out."
)

// AddedToast is shown after adding title to the cart
func AddedToast(title string) string {
	return fmt.Sprintf(`Added "%s" to cart`, title)
}

// CouponAppliedToast is shown after a code is accepted
func CouponAppliedToast(percent int64) string {
	return fmt.Sprintf("Coupon applied: %d%% off", percent)
}
