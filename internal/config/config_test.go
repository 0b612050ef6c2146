package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, 12, cfg.Catalog.DefaultPageSize)
	require.Len(t, cfg.Coupons.Codes, 2)
	assert.True(t, cfg.Coupons.Codes["B3B0T4CT37"].Equal(decimal.RequireFromString("0.99")))
	assert.True(t, cfg.Coupons.Codes["1L0V3UC"].Equal(decimal.RequireFromString("0.01")))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COUPON_CODES", "save10:0.10, half:0.5")
	t.Setenv("CATALOG_PAGE_SIZE_OPTIONS", "6,12")
	t.Setenv("STORAGE_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, []int{6, 12}, cfg.Catalog.PageSizeOptions)
	assert.Contains(t, cfg.Coupons.Codes, "SAVE10")
	assert.Contains(t, cfg.Coupons.Codes, "HALF")
}

func TestLoad_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"malformed coupon", "COUPON_CODES", "NOPE"},
		{"rate above one", "COUPON_CODES", "BIG:1.5"},
		{"unknown backend", "STORAGE_BACKEND", "etcd"},
		{"unknown catalog", "CATALOG_SOURCE", "csv"},
		{"yaml without path", "CATALOG_SOURCE", "yaml"},
		{"short secret", "SESSION_SECRET", "short"},
		{"zero page size", "CATALOG_PAGE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
