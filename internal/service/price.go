package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cryptodash/internal/database"
	"cryptodash/internal/market"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// refreshBatch is the largest id list sent to the market in one request.
const refreshBatch = 250

type PriceProvider interface {
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error)
	GetPrices(ctx context.Context, assetIDs []string) (map[string]Quote, error)
	Start(ctx context.Context, interval time.Duration)
}

// Quote is a price and the time it was observed.
type Quote struct {
	Price decimal.Decimal `json:"price"`
	At    time.Time       `json:"at"`
}

// PriceService serves asset prices from the price history table, going to the
// market only for prices older than MaxAge.
type PriceService struct {
	store  PriceStore
	market MarketSource
	log    *logrus.Logger
	maxAge time.Duration
	now    func() time.Time

	refreshing sync.Mutex
}

func NewPriceService(store PriceStore, m MarketSource, maxAge time.Duration, log *logrus.Logger) *PriceService {
	return &PriceService{
		store:  store,
		market: m,
		log:    log,
		maxAge: maxAge,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *PriceService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error) {
	quotes, err := p.GetPrices(ctx, []string{assetID})
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	q := quotes[assetID]
	return q.Price, q.At, nil
}

// GetPrices returns a quote for every id or an error wrapping
// market.ErrDataUnavailable. When the market cannot be reached, a stale stored
// price is returned with its original timestamp rather than failing.
func (p *PriceService) GetPrices(ctx context.Context, assetIDs []string) (map[string]Quote, error) {
	out := map[string]Quote{}
	stale := map[string]Quote{}
	var missing []string
	for _, id := range uniq(assetIDs) {
		price, ts, err := p.store.GetLatestPrice(ctx, id)
		switch {
		case err == nil:
			q := Quote{Price: price, At: ts}
			if p.now().Sub(ts) < p.maxAge {
				out[id] = q
				continue
			}
			stale[id] = q
		case !errors.Is(err, database.ErrNotFound):
			p.log.Warnf("read stored price for %s: %v", id, err)
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	coins, err := p.market.CoinsByIDs(ctx, missing)
	if err != nil {
		p.log.Warnf("fetch prices for %s: %v", strings.Join(missing, ","), err)
	}
	now := p.now()
	for _, c := range coins {
		if _, ok := out[c.ID]; ok {
			continue
		}
		if !c.CurrentPrice.Valid {
			p.log.Warnf("market returned no price for %s", c.ID)
			continue
		}
		if err := p.store.UpsertPrice(ctx, c.ID, c.CurrentPrice.Decimal, now); err != nil {
			p.log.Warnf("store price for %s: %v", c.ID, err)
		}
		out[c.ID] = Quote{Price: c.CurrentPrice.Decimal, At: now}
	}

	var unavailable []string
	for _, id := range missing {
		if _, ok := out[id]; ok {
			continue
		}
		if q, ok := stale[id]; ok {
			p.log.Warnf("serving stale price for %s from %s", id, q.At.Format(time.RFC3339))
			out[id] = q
			continue
		}
		unavailable = append(unavailable, id)
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: no price for %s", market.ErrDataUnavailable, strings.Join(unavailable, ", "))
	}
	return out, nil
}

// Refresh fetches current prices for every tracked asset. A call made while
// another refresh is running returns immediately.
func (p *PriceService) Refresh(ctx context.Context) error {
	if !p.refreshing.TryLock() {
		p.log.Debug("price refresh already running, skipping")
		return nil
	}
	defer p.refreshing.Unlock()

	ids, err := p.store.GetTrackedAssets(ctx)
	if err != nil {
		return fmt.Errorf("list tracked assets: %w", err)
	}
	stored := 0
	for start := 0; start < len(ids); start += refreshBatch {
		end := start + refreshBatch
		if end > len(ids) {
			end = len(ids)
		}
		coins, err := p.market.CoinsByIDs(ctx, ids[start:end])
		if err != nil {
			return err
		}
		now := p.now()
		for _, c := range coins {
			if !c.CurrentPrice.Valid {
				p.log.Warnf("market returned no price for %s", c.ID)
				continue
			}
			if err := p.store.UpsertPrice(ctx, c.ID, c.CurrentPrice.Decimal, now); err != nil {
				p.log.Warnf("store price for %s: %v", c.ID, err)
				continue
			}
			stored++
		}
	}
	p.log.Debugf("refreshed %d of %d tracked prices", stored, len(ids))
	return nil
}

// Start refreshes prices now and then every interval until ctx is done.
func (p *PriceService) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if err := p.Refresh(ctx); err != nil {
				p.log.Warnf("price refresh failed: %v", err)
			}
			select {
			case <-ctx.Done():
				p.log.Info("price updater stopping")
				return
			case <-ticker.C:
			}
		}
	}()
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
