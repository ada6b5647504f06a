package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cryptodash/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const pqForeignKeyViolation = "23503"

type Repo struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func New(db *sqlx.DB, log *logrus.Logger) *Repo {
	return &Repo{db: db, log: log}
}

func (r *Repo) EnsureUserExists(ctx context.Context, userID, name, email string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, userID, name, email)
	return err
}

func (r *Repo) EnsureAssetExists(ctx context.Context, assetID, symbol, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO assets (id, symbol, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, assetID, symbol, name)
	return err
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var p models.UserProfile
	err := r.db.GetContext(ctx, &p, `SELECT id, name, email, avatar, join_date FROM users WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return p, err
}

func (r *Repo) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET name = $2, email = $3, avatar = $4 WHERE id = $1`, p.ID, p.Name, p.Email, p.Avatar)
	if err != nil {
		return err
	}
	return expectRow(res, "user "+p.ID)
}

// GetNotificationSettings returns the stored settings, or the defaults when the
// user never saved any.
func (r *Repo) GetNotificationSettings(ctx context.Context, userID string) (models.NotificationSettings, error) {
	var s models.NotificationSettings
	err := r.db.GetContext(ctx, &s, `SELECT price_alerts, portfolio_updates, newsletters, market_news FROM notification_settings WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultNotificationSettings(), nil
	}
	return s, err
}

func (r *Repo) SaveNotificationSettings(ctx context.Context, userID string, s models.NotificationSettings) error {
	q := `INSERT INTO notification_settings (user_id, price_alerts, portfolio_updates, newsletters, market_news, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET price_alerts = $2, portfolio_updates = $3, newsletters = $4, market_news = $5, updated_at = now()`
	_, err := r.db.ExecContext(ctx, q, userID, s.PriceAlerts, s.PortfolioUpdates, s.Newsletters, s.MarketNews)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	return err
}

func (r *Repo) GetHoldings(ctx context.Context, userID string) ([]models.Holding, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT h.id, h.user_id, h.asset_id, a.symbol, a.name, h.quantity, h.purchase_price, h.purchase_date
		FROM holdings h JOIN assets a ON a.id = h.asset_id
		WHERE h.user_id = $1
		ORDER BY h.purchase_date ASC, h.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []models.Holding{}
	for rows.Next() {
		var h models.Holding
		if err := rows.StructScan(&h); err != nil {
			// a half-read portfolio would be valued as if it were complete
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		res = append(res, h)
	}
	return res, rows.Err()
}

// CreateHolding stores a new position and returns its id. The asset row is
// created on first use.
func (r *Repo) CreateHolding(ctx context.Context, in NewHolding) (string, error) {
	if in.Quantity.IsNegative() || in.PurchasePrice.IsNegative() {
		return "", fmt.Errorf("quantity and purchase price must be non-negative")
	}
	if in.PurchaseDate.IsZero() {
		in.PurchaseDate = time.Now().UTC()
	}
	if in.Name == "" {
		in.Name = in.Symbol
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO assets (id, symbol, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, in.AssetID, in.Symbol, in.Name); err != nil {
		return "", err
	}

	id := uuid.New().String()
	q := `INSERT INTO holdings (id, user_id, asset_id, quantity, purchase_price, purchase_date) VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6)`
	if _, err := tx.ExecContext(ctx, q, id, in.UserID, in.AssetID, in.Quantity.String(), in.PurchasePrice.String(), in.PurchaseDate); err != nil {
		if isForeignKeyViolation(err) {
			return "", fmt.Errorf("%w: %s", ErrUnknownUser, in.UserID)
		}
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	r.log.Debugf("created holding %s for user %s (%s %s)", id, in.UserID, in.Quantity, in.AssetID)
	return id, nil
}

func (r *Repo) DeleteHolding(ctx context.Context, userID, holdingID string) error {
	if _, err := uuid.Parse(holdingID); err != nil {
		return fmt.Errorf("holding %s: %w", holdingID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = $1 AND user_id = $2`, holdingID, userID)
	if err != nil {
		return err
	}
	return expectRow(res, "holding "+holdingID)
}

func (r *Repo) GetLatestPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error) {
	var p PricePoint
	err := r.db.GetContext(ctx, &p, `SELECT asset_id, price_usd, timestamp FROM price_history WHERE asset_id = $1 ORDER BY timestamp DESC LIMIT 1`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, time.Time{}, fmt.Errorf("price for %s: %w", assetID, ErrNotFound)
	}
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	return p.Price, p.Timestamp, nil
}

func (r *Repo) UpsertPrice(ctx context.Context, assetID string, price decimal.Decimal, ts time.Time) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO price_history (asset_id, price_usd, timestamp) VALUES ($1, $2::numeric, $3)`, assetID, price.String(), ts)
	return err
}

// GetTrackedAssets lists asset ids held by at least one user.
func (r *Repo) GetTrackedAssets(ctx context.Context) ([]string, error) {
	res := []string{}
	if err := r.db.SelectContext(ctx, &res, `SELECT DISTINCT asset_id FROM holdings ORDER BY asset_id`); err != nil {
		return nil, err
	}
	return res, nil
}

func expectRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
