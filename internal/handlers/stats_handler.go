package handlers

import (
	"net/http"
	"strconv"

	"sportclash/internal/service"
)

// StatsHandler serves the derived read-only views: statistics, unlocks and
// class rankings
type StatsHandler struct {
	statsService   *service.StatsService
	rankingService *service.RankingService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService, rankingService *service.RankingService) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		rankingService: rankingService,
	}
}

// GetStatistics returns a student's aggregate statistics, recomputed from
// the full history
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	stats, err := h.statsService.GetStatistics(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newStatisticsView(stats))
}

// GetUnlocks returns a student's unlocked achievement, medal and cosmetic
// codes
func (h *StatsHandler) GetUnlocks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	unlocks, err := h.statsService.GetUnlocks(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newUnlocksView(unlocks))
}

// GetStudentRanking returns the ranking of the class the student is
// actively enrolled in, with the student's own entry reported alongside
func (h *StatsHandler) GetStudentRanking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	ranking, err := h.rankingService.RankForStudent(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newRankingView(ranking))
}

// GetRanking returns the ordered ranking of a class. The optional
// ?student=N parameter selects the requester entry reported alongside the
// full list.
func (h *StatsHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var requesterID int64
	if raw := r.URL.Query().Get("student"); raw != "" {
		requesterID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || requesterID <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid student parameter", "", nil)
			return
		}
	}

	ranking, err := h.rankingService.RankClass(id, requesterID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newRankingView(ranking))
}
