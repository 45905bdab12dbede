package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pitwall/pitwallapi/models"
)

type userRepo struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.NewSelect().Model(user).
		Where("u.email = ?", email).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).
		Where("u.email = ?", email).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("user exists by email: %w", err)
	}
	return exists, nil
}

func (r *userRepo) CreateWithPreferences(ctx context.Context, user *models.User, prefs *models.UserPreference) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			return err
		}
		prefs.UserID = user.ID
		if _, err := tx.NewInsert().Model(prefs).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create user with preferences: %w", err)
	}
	return nil
}

type preferenceRepo struct {
	db *bun.DB
}

func NewPreferenceRepository(db *bun.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) FindByUserID(ctx context.Context, userID int64) (*models.UserPreference, error) {
	prefs := &models.UserPreference{}
	err := r.db.NewSelect().Model(prefs).
		Where("up.user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select preferences by user: %w", err)
	}
	return prefs, nil
}

func (r *preferenceRepo) Upsert(ctx context.Context, prefs *models.UserPreference) error {
	_, err := r.db.NewInsert().Model(prefs).
		On("CONFLICT (user_id) DO UPDATE SET followed_series = EXCLUDED.followed_series, followed_teams = EXCLUDED.followed_teams, followed_drivers = EXCLUDED.followed_drivers").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
