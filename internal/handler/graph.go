package handler

import (
	"net/http"

	"github.com/leaguemind/LeagueMind_Go/internal/graph"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
)

// Graph endpoints expose the assembled decision graphs directly. The
// profile pipeline consumes these same graphs internally; the endpoints
// exist for inspection and downstream consumers that want raw timelines.

// HandleGetPlayerGraph handles GET requests for a player-scoped decision graph
// @Summary Get player decision graph
// @Description Get the full decision timeline of one user about one player
// @Tags graph
// @Produce json
// @Param user_id query string true "User ID"
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.DecisionGraph
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /graph/player [get]
func HandleGetPlayerGraph(svc graph.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		g, err := svc.BuildPlayerGraph(r.Context(), userID, playerID)
		if err != nil {
			log.Error("Failed to build player graph", "error", err, "user_id", userID, "player_id", playerID)
			respondServiceError(w, err)
			return
		}

		log.Debug("Player graph built", "user_id", userID, "player_id", playerID)

		respondJSON(w, http.StatusOK, g)
	}
}

// HandleGetSeasonGraph handles GET requests for a season-scoped decision graph
// @Summary Get season decision graph
// @Description Get all of a user's decision activity for a sport and calendar year
// @Tags graph
// @Produce json
// @Param user_id query string true "User ID"
// @Param sport query string true "Sport (nfl, nba, mlb, nhl)"
// @Param year query int false "Calendar year (defaults to current)"
// @Success 200 {object} domain.DecisionGraph
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /graph/season [get]
func HandleGetSeasonGraph(svc graph.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		sport, ok := GetSportParam(r, w)
		if !ok {
			return
		}
		year, ok := GetYearParam(r, w)
		if !ok {
			return
		}

		g, err := svc.BuildSeasonGraph(r.Context(), userID, sport, year)
		if err != nil {
			log.Error("Failed to build season graph", "error", err, "user_id", userID, "sport", sport, "year", year)
			respondServiceError(w, err)
			return
		}

		log.Debug("Season graph built", "user_id", userID, "sport", sport, "year", year)

		respondJSON(w, http.StatusOK, g)
	}
}

// HandleGetDraftGraph handles GET requests for a draft-scoped decision graph
// @Summary Get draft decision graph
// @Description Get one user's picks in one draft joined against their pre-draft board
// @Tags graph
// @Produce json
// @Param user_id query string true "User ID"
// @Param draft_id query string true "Draft ID"
// @Success 200 {object} domain.DecisionGraph
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /graph/draft [get]
func HandleGetDraftGraph(svc graph.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		draftID, ok := GetQueryParam(r, w, "draft_id")
		if !ok {
			return
		}

		g, err := svc.BuildDraftGraph(r.Context(), userID, draftID)
		if err != nil {
			log.Error("Failed to build draft graph", "error", err, "user_id", userID, "draft_id", draftID)
			respondServiceError(w, err)
			return
		}

		log.Debug("Draft graph built", "user_id", userID, "draft_id", draftID)

		respondJSON(w, http.StatusOK, g)
	}
}

// HandleGetMultiSeasonGraph handles GET requests for a multi-season decision graph
// @Summary Get multi-season decision graph
// @Description Get a user's cross-year decision activity for a sport
// @Tags graph
// @Produce json
// @Param user_id query string true "User ID"
// @Param sport query string true "Sport (nfl, nba, mlb, nhl)"
// @Success 200 {object} domain.DecisionGraph
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /graph/multi-season [get]
func HandleGetMultiSeasonGraph(svc graph.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		sport, ok := GetSportParam(r, w)
		if !ok {
			return
		}

		g, err := svc.BuildMultiSeasonGraph(r.Context(), userID, sport)
		if err != nil {
			log.Error("Failed to build multi-season graph", "error", err, "user_id", userID, "sport", sport)
			respondServiceError(w, err)
			return
		}

		log.Debug("Multi-season graph built", "user_id", userID, "sport", sport)

		respondJSON(w, http.StatusOK, g)
	}
}
