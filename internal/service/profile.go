package service

import (
	"context"
	"errors"
	"strings"

	"cryptodash/internal/market"
	"cryptodash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProfileStats struct {
	// PortfolioValue is null when prices could not be obtained.
	PortfolioValue decimal.NullDecimal `json:"portfolio_value"`
	AssetsTracked  int                 `json:"assets_tracked"`
}

type ProfileView struct {
	Profile       models.UserProfile          `json:"profile"`
	Notifications models.NotificationSettings `json:"notifications"`
	Stats         ProfileStats                `json:"stats"`
}

type ProfileService struct {
	profiles   ProfileStore
	holdings   HoldingStore
	portfolios *PortfolioService
	log        *logrus.Logger
}

func NewProfileService(p ProfileStore, h HoldingStore, portfolios *PortfolioService, log *logrus.Logger) *ProfileService {
	return &ProfileService{profiles: p, holdings: h, portfolios: portfolios, log: log}
}

func (s *ProfileService) Profile(ctx context.Context, userID string) (ProfileView, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	settings, err := s.profiles.GetNotificationSettings(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	view := ProfileView{Profile: profile, Notifications: settings}

	p, err := s.portfolios.Portfolio(ctx, userID)
	switch {
	case err == nil:
		view.Stats.PortfolioValue = decimal.NewNullDecimal(p.Summary.TotalCurrentValue)
		holdings := make([]models.Holding, 0, len(p.Summary.Holdings))
		for _, v := range p.Summary.Holdings {
			holdings = append(holdings, v.Holding)
		}
		view.Stats.AssetsTracked = countAssets(holdings)
	case errors.Is(err, market.ErrDataUnavailable):
		s.log.Warnf("profile %s: portfolio value unavailable: %v", userID, err)
		holdings, err := s.holdings.GetHoldings(ctx, userID)
		if err != nil {
			return ProfileView{}, err
		}
		view.Stats.AssetsTracked = countAssets(holdings)
	default:
		return ProfileView{}, err
	}
	return view, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	return s.profiles.UpdateProfile(ctx, p)
}

func (s *ProfileService) Notifications(ctx context.Context, userID string) (models.NotificationSettings, error) {
	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return models.NotificationSettings{}, err
	}
	return s.profiles.GetNotificationSettings(ctx, userID)
}

func (s *ProfileService) UpdateNotifications(ctx context.Context, userID string, n models.NotificationSettings) error {
	return s.profiles.SaveNotificationSettings(ctx, userID, n)
}

// ToggleNotification flips one setting and returns the stored result.
func (s *ProfileService) ToggleNotification(ctx context.Context, userID, key string) (models.NotificationSettings, error) {
	cur, err := s.Notifications(ctx, userID)
	if err != nil {
		return models.NotificationSettings{}, err
	}
	next, err := cur.Toggle(key)
	if err != nil {
		return models.NotificationSettings{}, err
	}
	if err := s.profiles.SaveNotificationSettings(ctx, userID, next); err != nil {
		return models.NotificationSettings{}, err
	}
	return next, nil
}

// countAssets counts distinct assets, not holdings.
func countAssets(holdings []models.Holding) int {
	seen := map[string]struct{}{}
	for _, h := range holdings {
		seen[h.AssetID] = struct{}{}
	}
	return len(seen)
}
