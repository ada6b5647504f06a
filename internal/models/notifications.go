package models

import (
	"errors"
	"fmt"
)

var ErrUnknownNotification = errors.New("unknown notification setting")

const (
	NotifyPriceAlerts      = "price_alerts"
	NotifyPortfolioUpdates = "portfolio_updates"
	NotifyNewsletters      = "newsletters"
	NotifyMarketNews       = "market_news"
)

// NotificationSettings is a value type. Every change returns a new value so
// callers never share a mutable settings record.
type NotificationSettings struct {
	PriceAlerts      bool `db:"price_alerts" json:"price_alerts"`
	PortfolioUpdates bool `db:"portfolio_updates" json:"portfolio_updates"`
	Newsletters      bool `db:"newsletters" json:"newsletters"`
	MarketNews       bool `db:"market_news" json:"market_news"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		PriceAlerts:      true,
		PortfolioUpdates: true,
		Newsletters:      false,
		MarketNews:       true,
	}
}

// Get reports the current value of the named setting.
func (n NotificationSettings) Get(key string) (bool, error) {
	switch key {
	case NotifyPriceAlerts:
		return n.PriceAlerts, nil
	case NotifyPortfolioUpdates:
		return n.PortfolioUpdates, nil
	case NotifyNewsletters:
		return n.Newsletters, nil
	case NotifyMarketNews:
		return n.MarketNews, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownNotification, key)
}

// With returns a copy of n with the named setting set to v.
func (n NotificationSettings) With(key string, v bool) (NotificationSettings, error) {
	switch key {
	case NotifyPriceAlerts:
		n.PriceAlerts = v
	case NotifyPortfolioUpdates:
		n.PortfolioUpdates = v
	case NotifyNewsletters:
		n.Newsletters = v
	case NotifyMarketNews:
		n.MarketNews = v
	default:
		return n, fmt.Errorf("%w: %q", ErrUnknownNotification, key)
	}
	return n, nil
}

// Toggle returns a copy of n with the named setting flipped.
func (n NotificationSettings) Toggle(key string) (NotificationSettings, error) {
	cur, err := n.Get(key)
	if err != nil {
		return n, err
	}
	return n.With(key, !cur)
}
