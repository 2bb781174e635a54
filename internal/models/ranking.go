package models

// RankingEntry is one student's row in a class ranking. Position is
// 1-based and unique within the ranking even on exact score ties.
type RankingEntry struct {
	StudentID            int64
	StudentName          string
	TotalScore           int
	TotalClassesAttended int
	Position             int
}

// ClassRanking is the full ordered ranking for a class plus the
// requesting student's own entry, which is present even when outside
// any top-N slice a consumer renders.
type ClassRanking struct {
	ClassID   int64
	Entries   []RankingEntry
	Requester *RankingEntry
}
