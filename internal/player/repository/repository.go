// Package repository provides data access layer for the player module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rsheln/combine-draft/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create creates a new player.
	Create(ctx context.Context, player *model.Player) error

	// GetByID finds a player by ID.
	GetByID(ctx context.Context, id string) (*model.Player, error)

	// ListEligible returns players of an event, optionally filtered by
	// age group, ordered by name.
	ListEligible(ctx context.Context, eventID string, ageGroup *string) ([]model.Player, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *repository) ListEligible(ctx context.Context, eventID string, ageGroup *string) ([]model.Player, error) {
	query := r.db.WithContext(ctx).Where("event_id = ?", eventID)
	if ageGroup != nil && *ageGroup != "" {
		query = query.Where("age_group = ?", *ageGroup)
	}

	var players []model.Player
	if err := query.Order("name ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
