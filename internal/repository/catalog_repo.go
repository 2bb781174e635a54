package repository

import (
	"database/sql"
	"fmt"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// CatalogRepository reads the static sport and definition catalog.
// The catalog is reference data: this repository never writes.
type CatalogRepository struct {
	db *database.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetSportByID retrieves a sport by id; nil when not found
func (r *CatalogRepository) GetSportByID(id int64) (*models.Sport, error) {
	query := "SELECT id, name, created_at FROM sports WHERE id = ?"
	sport := &models.Sport{}
	err := r.db.QueryRow(query, id).Scan(&sport.ID, &sport.Name, &sport.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sport, nil
}

// GetCatalog loads the full catalog in dependency order
func (r *CatalogRepository) GetCatalog() (*models.Catalog, error) {
	sports, err := r.getSports()
	if err != nil {
		return nil, fmt.Errorf("failed to load sports: %w", err)
	}

	achievements, err := r.getAchievements()
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	medals, err := r.getMedals()
	if err != nil {
		return nil, fmt.Errorf("failed to load medals: %w", err)
	}

	cosmetics, err := r.getCosmetics()
	if err != nil {
		return nil, fmt.Errorf("failed to load cosmetics: %w", err)
	}

	return &models.Catalog{
		Sports:       sports,
		Achievements: achievements,
		Medals:       medals,
		Cosmetics:    cosmetics,
	}, nil
}

func (r *CatalogRepository) getSports() ([]models.Sport, error) {
	rows, err := r.db.Query("SELECT id, name, created_at FROM sports ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sports []models.Sport
	for rows.Next() {
		var s models.Sport
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}
	return sports, rows.Err()
}

func (r *CatalogRepository) getAchievements() ([]models.AchievementDef, error) {
	query := `
		SELECT id, code, label, rarity, metric, threshold, xp_reward
		FROM achievement_defs
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []models.AchievementDef
	for rows.Next() {
		var d models.AchievementDef
		var rarity, metric string
		err := rows.Scan(&d.ID, &d.Code, &d.Label, &rarity, &metric, &d.Predicate.Threshold, &d.XPReward)
		if err != nil {
			return nil, err
		}
		d.Rarity = models.Rarity(rarity)
		d.Predicate.Metric = models.Metric(metric)
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func (r *CatalogRepository) getMedals() ([]models.MedalDef, error) {
	query := `
		SELECT id, code, label, rarity, metric, threshold, xp_reward
		FROM medal_defs
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []models.MedalDef
	for rows.Next() {
		var d models.MedalDef
		var rarity, metric string
		err := rows.Scan(&d.ID, &d.Code, &d.Label, &rarity, &metric, &d.Predicate.Threshold, &d.XPReward)
		if err != nil {
			return nil, err
		}
		d.Rarity = models.Rarity(rarity)
		d.Predicate.Metric = models.Metric(metric)
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func (r *CatalogRepository) getCosmetics() ([]models.CosmeticDef, error) {
	query := `
		SELECT id, code, label, category, rarity, unlock_kind, unlock_threshold, unlock_ref
		FROM cosmetic_defs
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []models.CosmeticDef
	for rows.Next() {
		var d models.CosmeticDef
		var category, rarity, kind string
		err := rows.Scan(&d.ID, &d.Code, &d.Label, &category, &rarity, &kind, &d.Predicate.Threshold, &d.Predicate.RefCode)
		if err != nil {
			return nil, err
		}
		d.Category = models.CosmeticCategory(category)
		d.Rarity = models.Rarity(rarity)
		d.Predicate.Kind = models.UnlockKind(kind)
		defs = append(defs, d)
	}
	return defs, rows.Err()
}
