package database

import (
	"fmt"
	"log"
)

type achievementSeed struct {
	code      string
	label     string
	rarity    string
	metric    string
	threshold int
	xp        int
}

type cosmeticSeed struct {
	code       string
	label      string
	category   string
	rarity     string
	unlockKind string
	threshold  int
	refCode    string
}

var defaultSports = []string{
	"Football", "Basketball", "Volleyball", "Handball",
	"Athletics", "Swimming", "Gymnastics", "Tennis",
	"Badminton", "Table Tennis",
}

var defaultAchievements = []achievementSeed{
	{"first_class", "First Class", "common", "classes_attended", 1, 10},
	{"ten_classes", "Regular", "common", "classes_attended", 10, 25},
	{"twenty_five_classes", "Committed", "rare", "classes_attended", 25, 50},
	{"fifty_classes", "Dedicated", "epic", "classes_attended", 50, 100},
	{"hundred_classes", "Centurion", "legendary", "classes_attended", 100, 250},
	{"streak_five", "On a Roll", "rare", "streak", 5, 40},
	{"streak_fifteen", "Unstoppable", "epic", "streak", 15, 90},
	{"star_bronze", "Bronze Star", "common", "max_score", 60, 15},
	{"star_silver", "Silver Star", "rare", "max_score", 80, 35},
	{"star_gold", "Gold Star", "epic", "max_score", 95, 75},
	{"star_perfect", "Perfect Score", "legendary", "max_score", 100, 150},
	{"all_rounder", "All-Rounder", "rare", "distinct_sports", 4, 50},
	{"omni_athlete", "Omni-Athlete", "legendary", "distinct_sports", 8, 200},
}

var defaultMedals = []achievementSeed{
	{"bronze_attendance", "Bronze Attendance", "common", "attendance_rate", 75, 20},
	{"silver_attendance", "Silver Attendance", "rare", "attendance_rate", 85, 45},
	{"gold_attendance", "Gold Attendance", "epic", "attendance_rate", 95, 100},
	{"point_collector", "Point Collector", "rare", "total_score", 500, 60},
	{"point_hoarder", "Point Hoarder", "legendary", "total_score", 2000, 220},
	{"mythic_champion", "Mythic Champion", "mythic", "total_score", 5000, 500},
}

var defaultCosmetics = []cosmeticSeed{
	{"bg_classic", "Classic", "background", "common", "xp", 10, ""},
	{"bg_turf", "Turf", "background", "common", "xp", 100, ""},
	{"bg_court", "Court", "background", "rare", "xp", 300, ""},
	{"bg_stadium_night", "Stadium Night", "background", "epic", "xp", 800, ""},
	{"anim_confetti", "Confetti", "animation", "rare", "achievement", 0, "fifty_classes"},
	{"anim_fireworks", "Fireworks", "animation", "epic", "medal", 0, "gold_attendance"},
	{"anim_golden_glow", "Golden Glow", "animation", "legendary", "achievement", 0, "hundred_classes"},
	{"bg_hall_of_fame", "Hall of Fame", "background", "mythic", "medal", 0, "mythic_champion"},
}

// SeedCatalog populates the sport and definition tables when they are
// empty. The catalog is read-only reference data; existing rows are
// never modified.
func (db *DB) SeedCatalog() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sports").Scan(&count); err != nil {
		return fmt.Errorf("failed to check sports count: %w", err)
	}

	if count > 0 {
		log.Printf("Catalog already populated with %d sports", count)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range defaultSports {
		if _, err := tx.Exec("INSERT INTO sports (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("failed to seed sport %s: %w", name, err)
		}
	}

	achievementQuery := `
		INSERT INTO achievement_defs (code, label, rarity, metric, threshold, xp_reward)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, a := range defaultAchievements {
		if _, err := tx.Exec(achievementQuery, a.code, a.label, a.rarity, a.metric, a.threshold, a.xp); err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", a.code, err)
		}
	}

	medalQuery := `
		INSERT INTO medal_defs (code, label, rarity, metric, threshold, xp_reward)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, m := range defaultMedals {
		if _, err := tx.Exec(medalQuery, m.code, m.label, m.rarity, m.metric, m.threshold, m.xp); err != nil {
			return fmt.Errorf("failed to seed medal %s: %w", m.code, err)
		}
	}

	cosmeticQuery := `
		INSERT INTO cosmetic_defs (code, label, category, rarity, unlock_kind, unlock_threshold, unlock_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, c := range defaultCosmetics {
		if _, err := tx.Exec(cosmeticQuery, c.code, c.label, c.category, c.rarity, c.unlockKind, c.threshold, c.refCode); err != nil {
			return fmt.Errorf("failed to seed cosmetic %s: %w", c.code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog seed: %w", err)
	}

	log.Printf("Catalog seeded: %d sports, %d achievements, %d medals, %d cosmetics",
		len(defaultSports), len(defaultAchievements), len(defaultMedals), len(defaultCosmetics))
	return nil
}
