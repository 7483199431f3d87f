package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/habitquest/habitquest/internal/domain"
)

// handleHealth reports liveness, including store reachability.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unreachable: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// handleStatus reports the installation profile and last save time.
// GET /api/status
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	profileID, err := s.db.ProfileID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	lastSaved, err := s.db.LastSavedAt()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"profile_id":    profileID,
		"last_saved_at": lastSaved,
	})
}

// handleToday returns the full view of the current day.
// GET /api/today
func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Today())
}

type updateGoalRequest struct {
	Value int `json:"value"`
}

// handleUpdateGoal sets a goal's value for today and returns the
// rewards the update produced.
// POST /api/goals/{id}
func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "id")

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.tracker.UpdateGoal(goalID, req.Value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Applied {
		writeError(w, http.StatusNotFound, domain.ErrUnknownGoal.Error()+": "+goalID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleToggleMission flips today's mission completion.
// POST /api/missions/{id}/toggle
func (s *Server) handleToggleMission(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	result, err := s.tracker.ToggleMission(missionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Found {
		writeError(w, http.StatusNotFound, domain.ErrUnknownMission.Error()+": "+missionID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type setMoodRequest struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// handleSetMood records today's mood.
// POST /api/mood
func (s *Server) handleSetMood(w http.ResponseWriter, r *http.Request) {
	var req setMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.tracker.SetMood(req.Emoji, req.Text); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.tracker.Mood())
}

// handleWeek returns per-day summaries, oldest first.
// GET /api/week?days=7
func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = n
	}

	writeJSON(w, http.StatusOK, s.tracker.WeekView(days))
}

// handleAchievements returns all achievements with progress.
// GET /api/achievements
func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.AchievementsView())
}

// handleLevel returns the level and XP progression summary.
// GET /api/level
func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.ProgressionView())
}

// handleStats returns lifetime statistics.
// GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Statistics())
}

// handleBadges returns the full badge gallery with lock state.
// GET /api/badges
func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.AllBadges())
}

// handleTodaysBadges returns badges earned today.
// GET /api/badges/today
func (s *Server) handleTodaysBadges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.TodaysBadges())
}

// handleExport streams the full state as a JSON snapshot.
// GET /api/export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.tracker.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="habitquest-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleImport replaces the full state with an uploaded snapshot.
// The snapshot is validated first; a bad snapshot changes nothing.
// POST /api/import
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	if err := s.tracker.Import(data); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "imported",
	})
}
