package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cryptodash/internal/content"
	"cryptodash/internal/database"
	"cryptodash/internal/market"
	"cryptodash/internal/models"
	"cryptodash/internal/present"
	"cryptodash/internal/service"
	"cryptodash/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MarketData interface {
	TopCoins(ctx context.Context, limit int) ([]models.Coin, error)
	Search(ctx context.Context, query string) ([]models.Coin, error)
	CoinByID(ctx context.Context, id string) (models.Coin, error)
}

type Portfolios interface {
	Portfolio(ctx context.Context, userID string) (service.Portfolio, error)
	AddHolding(ctx context.Context, in database.NewHolding) (string, error)
	RemoveHolding(ctx context.Context, userID, holdingID string) error
}

type Profiles interface {
	Profile(ctx context.Context, userID string) (service.ProfileView, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) error
	Notifications(ctx context.Context, userID string) (models.NotificationSettings, error)
	UpdateNotifications(ctx context.Context, userID string, n models.NotificationSettings) error
	ToggleNotification(ctx context.Context, userID, key string) (models.NotificationSettings, error)
}

type Handler struct {
	market     MarketData
	portfolios Portfolios
	profiles   Profiles
	topLimit   int
	log        *logrus.Logger
}

func NewHandler(m MarketData, p Portfolios, pr Profiles, topLimit int, log *logrus.Logger) *Handler {
	return &Handler{market: m, portfolios: p, profiles: pr, topLimit: topLimit, log: log}
}

func (h *Handler) Routes(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/market", h.GetMarket)
	r.GET("/search", h.Search)
	r.GET("/coins/:id", h.GetCoin)

	r.GET("/portfolio/:userId", h.GetPortfolio)
	r.GET("/portfolio/:userId/export.csv", h.ExportPortfolio)
	r.POST("/portfolio/:userId/holdings", h.PostHolding)
	r.DELETE("/portfolio/:userId/holdings/:id", h.DeleteHolding)

	r.GET("/blog", h.GetPosts)
	r.GET("/blog/:id", h.GetPost)

	r.GET("/profile/:userId", h.GetProfile)
	r.PUT("/profile/:userId", h.PutProfile)
	r.GET("/profile/:userId/notifications", h.GetNotifications)
	r.PUT("/profile/:userId/notifications", h.PutNotifications)
	r.POST("/profile/:userId/notifications/:key/toggle", h.ToggleNotification)
}

// fail maps err onto a status code and writes the error body. Server side
// failures are logged as errors, caller mistakes as warnings.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	status, msg := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, valuation.ErrInvalidHolding), errors.Is(err, models.ErrUnknownNotification):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrUnknownUser),
		errors.Is(err, content.ErrNotFound), errors.Is(err, market.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, market.ErrDataUnavailable):
		status, msg = http.StatusServiceUnavailable, "market data unavailable"
	}
	if status >= http.StatusInternalServerError {
		h.log.Errorf("%s failed: %v", op, err)
	} else {
		h.log.Warnf("%s: %v", op, err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func (h *Handler) badRequest(c *gin.Context, op string, err error) {
	h.log.Warnf("invalid %s request: %v", op, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) GetMarket(c *gin.Context) {
	limit := h.topLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.badRequest(c, "market", fmt.Errorf("limit must be a positive integer"))
			return
		}
		limit = n
	}
	coins, err := h.market.TopCoins(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "top coins", err)
		return
	}
	c.JSON(http.StatusOK, coins)
}

func (h *Handler) Search(c *gin.Context) {
	coins, err := h.market.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	c.JSON(http.StatusOK, coins)
}

func (h *Handler) GetCoin(c *gin.Context) {
	coin, err := h.market.CoinByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get coin", err)
		return
	}
	c.JSON(http.StatusOK, coin)
}

func (h *Handler) GetPortfolio(c *gin.Context) {
	p, err := h.portfolios.Portfolio(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, "get portfolio", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":     p.UserID,
		"priced_at":   p.PricedAt,
		"summary":     p.Summary,
		"allocations": p.Allocations,
		"display":     present.Portfolio(p.Summary, p.Allocations),
	})
}

func (h *Handler) ExportPortfolio(c *gin.Context) {
	userID := c.Param("userId")
	p, err := h.portfolios.Portfolio(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "export portfolio", err)
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="portfolio-%s.csv"`, userID))
	c.Status(http.StatusOK)
	if err := present.WriteCSV(c.Writer, present.ExportRows(p.Summary, p.Allocations)); err != nil {
		h.log.Errorf("write portfolio csv for %s: %v", userID, err)
	}
}

func (h *Handler) PostHolding(c *gin.Context) {
	var req database.NewHolding
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "holding", err)
		return
	}
	req.UserID = c.Param("userId")
	id, err := h.portfolios.AddHolding(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "add holding", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) DeleteHolding(c *gin.Context) {
	if err := h.portfolios.RemoveHolding(c.Request.Context(), c.Param("userId"), c.Param("id")); err != nil {
		h.fail(c, "remove holding", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, content.Posts())
}

func (h *Handler) GetPost(c *gin.Context) {
	p, err := content.Post(c.Param("id"))
	if err != nil {
		h.fail(c, "get post", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) GetProfile(c *gin.Context) {
	view, err := h.profiles.Profile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, "get profile", err)
		return
	}
	resp := gin.H{
		"profile":       view.Profile,
		"notifications": view.Notifications,
		"stats":         view.Stats,
	}
	if view.Stats.PortfolioValue.Valid {
		resp["portfolio_value_display"] = present.USD(view.Stats.PortfolioValue.Decimal)
	}
	c.JSON(http.StatusOK, resp)
}

type ProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar"`
}

func (h *Handler) PutProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "profile", err)
		return
	}
	p := models.UserProfile{ID: c.Param("userId"), Name: req.Name, Email: req.Email, Avatar: req.Avatar}
	if err := h.profiles.UpdateProfile(c.Request.Context(), p); err != nil {
		h.fail(c, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) GetNotifications(c *gin.Context) {
	n, err := h.profiles.Notifications(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, "get notifications", err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) PutNotifications(c *gin.Context) {
	var req models.NotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "notifications", err)
		return
	}
	if err := h.profiles.UpdateNotifications(c.Request.Context(), c.Param("userId"), req); err != nil {
		h.fail(c, "update notifications", err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) ToggleNotification(c *gin.Context) {
	n, err := h.profiles.ToggleNotification(c.Request.Context(), c.Param("userId"), c.Param("key"))
	if err != nil {
		h.fail(c, "toggle notification", err)
		return
	}
	c.JSON(http.StatusOK, n)
}
