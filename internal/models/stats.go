package models

// AggregateStatistics is the per-student rollup computed from the full
// attendance and score history. It is recomputed on demand and never
// persisted, so it cannot drift from the source facts. TotalExperience
// and Level are derived from the unlock set, not counted independently.
type AggregateStatistics struct {
	StudentID            int64
	TotalClassesAttended int
	AttendanceRate       int // integer percent, 0 with no records
	CurrentStreak        int
	PerSportTotals       map[int64]int
	PerSportAverages     map[int64]int
	MaxSingleScore       int
	DistinctSports       int
	TotalScore           int
	TotalExperience      int
	Level                int
}

// Metric returns the statistics field a threshold predicate reads
func (s *AggregateStatistics) Metric(m Metric) int {
	switch m {
	case MetricClassesAttended:
		return s.TotalClassesAttended
	case MetricAttendanceRate:
		return s.AttendanceRate
	case MetricStreak:
		return s.CurrentStreak
	case MetricMaxScore:
		return s.MaxSingleScore
	case MetricDistinctSports:
		return s.DistinctSports
	case MetricTotalScore:
		return s.TotalScore
	default:
		return 0
	}
}

// Unlocks is the derived set of catalog entries a student has earned.
// Entries are identified by catalog code.
type Unlocks struct {
	Achievements []string
	Medals       []string
	Cosmetics    []string
}

// HasAchievement reports whether the achievement code is unlocked
func (u *Unlocks) HasAchievement(code string) bool {
	for _, c := range u.Achievements {
		if c == code {
			return true
		}
	}
	return false
}

// HasMedal reports whether the medal code is unlocked
func (u *Unlocks) HasMedal(code string) bool {
	for _, c := range u.Medals {
		if c == code {
			return true
		}
	}
	return false
}
