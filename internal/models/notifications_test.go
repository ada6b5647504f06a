package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationSettings_Toggle(t *testing.T) {
	t.Run("flips only the named setting", func(t *testing.T) {
		before := DefaultNotificationSettings()
		after, err := before.Toggle(NotifyNewsletters)
		require.NoError(t, err)

		require.True(t, after.Newsletters)
		require.False(t, before.Newsletters, "original value must not change")
		require.Equal(t, before.PriceAlerts, after.PriceAlerts)
		require.Equal(t, before.PortfolioUpdates, after.PortfolioUpdates)
		require.Equal(t, before.MarketNews, after.MarketNews)
	})
	t.Run("twice is identity", func(t *testing.T) {
		s := DefaultNotificationSettings()
		once, err := s.Toggle(NotifyMarketNews)
		require.NoError(t, err)
		twice, err := once.Toggle(NotifyMarketNews)
		require.NoError(t, err)
		require.Equal(t, s, twice)
	})
	t.Run("unknown key", func(t *testing.T) {
		s := DefaultNotificationSettings()
		out, err := s.Toggle("sms")
		require.True(t, errors.Is(err, ErrUnknownNotification))
		require.Equal(t, s, out)
	})
}

func TestNotificationSettings_With(t *testing.T) {
	s, err := DefaultNotificationSettings().With(NotifyPriceAlerts, false)
	require.NoError(t, err)
	v, err := s.Get(NotifyPriceAlerts)
	require.NoError(t, err)
	require.False(t, v)
}
