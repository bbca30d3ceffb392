package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openretail/multicoupon/internal/config"
	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/service"
)

type itemReport struct {
	SkuID           int64            `json:"sku_id"`
	OriginalPrice   decimal.Decimal  `json:"original_price"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
}

type report struct {
	Coupon       string       `json:"coupon"`
	Eligible     bool         `json:"eligible"`
	Reason       string       `json:"reason,omitempty"`
	Items        []itemReport `json:"items"`
	FreeShipping []string     `json:"free_shipping,omitempty"`
}

func main() {
	// Setup structured logging; the report itself goes to stdout.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger.With("run_id", uuid.New().String()))

	coupon, err := readCoupon(cfg.CouponFile)
	if err != nil {
		slog.Error("failed to read coupon", "error", err)
		os.Exit(1)
	}
	items, err := readItems(cfg.CartFile)
	if err != nil {
		slog.Error("failed to read cart", "error", err)
		os.Exit(1)
	}
	categories, err := readCategories(cfg.CategoryFile)
	if err != nil {
		slog.Error("failed to read categories", "error", err)
		os.Exit(1)
	}

	ev, err := service.NewEvaluator(coupon, categories)
	if err != nil {
		slog.Error("failed to build evaluator", "error", err)
		os.Exit(1)
	}
	cart := domain.NewCart(items...)

	rep := report{
		Coupon:       coupon.Code,
		Eligible:     true,
		FreeShipping: ev.FreeShipping(cart),
	}
	if err := ev.Validate(cart); err != nil {
		rep.Eligible = false
		rep.Reason = err.Error()
	}
	for _, it := range cart.Items() {
		ir := itemReport{SkuID: it.SkuID, OriginalPrice: it.OriginalPrice}
		if price, ok := ev.Price(it, cart); ok {
			ir.DiscountedPrice = &price
		}
		rep.Items = append(rep.Items, ir)
	}

	slog.Info("evaluation complete",
		"coupon", coupon.Code,
		"items", len(rep.Items),
		"eligible", rep.Eligible,
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

func readCoupon(path string) (domain.Coupon, error) {
	var c domain.Coupon
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse coupon %s: %w", path, err)
	}
	return c, nil
}

func readItems(path string) ([]domain.CartItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse cart %s: %w", path, err)
	}
	return items, nil
}

func readCategories(path string) (domain.CategoryIndex, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var idx domain.CategoryIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse categories %s: %w", path, err)
	}
	return idx, nil
}
