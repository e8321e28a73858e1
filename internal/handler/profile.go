package handler

import (
	"net/http"

	"github.com/leaguemind/LeagueMind_Go/internal/logger"
	"github.com/leaguemind/LeagueMind_Go/internal/profile"
)

// ProfileResponse wraps a profile with serving metadata
type ProfileResponse struct {
	Profile interface{} `json:"profile"`
	Stale   bool        `json:"stale,omitempty"`
}

// RegenerateProfileRequest represents a request to force a profile rebuild
type RegenerateProfileRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Sport  string `json:"sport" validate:"required,sport"`
}

// InvalidateProfileRequest represents a request to drop a cached profile
type InvalidateProfileRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Sport  string `json:"sport" validate:"required,sport"`
}

// HandleGetProfile handles GET requests for a user's intelligence profile
// @Summary Get intelligence profile
// @Description Get the behavioral intelligence profile for a user and sport, rebuilding it when stale
// @Tags profile
// @Produce json
// @Param user_id query string true "User ID"
// @Param sport query string true "Sport (nfl, nba, mlb, nhl)"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /profile [get]
func HandleGetProfile(svc profile.Service) http.HandlerFunc {
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

		log.Debug("Get profile request", "user_id", userID, "sport", sport)

		p, err := svc.GetProfile(r.Context(), userID, sport)
		if err != nil {
			// A profile alongside an error means the rebuild failed and a
			// stale copy is the best available answer
			if p != nil {
				log.Warn("Serving stale profile", "error", err, "user_id", userID, "sport", sport)
				respondJSON(w, http.StatusOK, ProfileResponse{Profile: p, Stale: true})
				return
			}
			log.Error("Failed to get profile", "error", err, "user_id", userID, "sport", sport)
			respondServiceError(w, err)
			return
		}

		log.Info("Profile served", "user_id", userID, "sport", sport, "data_confidence", p.DataConfidence)

		respondJSON(w, http.StatusOK, ProfileResponse{Profile: p})
	}
}

// HandleRegenerateProfile handles POST requests to force a profile rebuild
// @Summary Regenerate profile
// @Description Force a full profile rebuild, bypassing the cached entry
// @Tags profile
// @Accept json
// @Produce json
// @Param request body RegenerateProfileRequest true "Profile key"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /profile/regenerate [post]
func HandleRegenerateProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegenerateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Regenerate profile"); err != nil {
			return
		}

		p, err := svc.RegenerateProfile(r.Context(), req.UserID, sportFromRequest(req.Sport))
		if err != nil {
			if p != nil {
				log.Warn("Regeneration failed, stale profile retained", "error", err, "user_id", req.UserID, "sport", req.Sport)
				respondJSON(w, http.StatusOK, ProfileResponse{Profile: p, Stale: true})
				return
			}
			log.Error("Failed to regenerate profile", "error", err, "user_id", req.UserID, "sport", req.Sport)
			respondServiceError(w, err)
			return
		}

		log.Info("Profile regenerated", "user_id", req.UserID, "sport", req.Sport)

		respondJSON(w, http.StatusOK, ProfileResponse{Profile: p})
	}
}

// HandleInvalidateProfile handles POST requests to drop a cached profile
// @Summary Invalidate profile
// @Description Drop the cached profile so the next read rebuilds it
// @Tags profile
// @Accept json
// @Produce json
// @Param request body InvalidateProfileRequest true "Profile key"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /profile/invalidate [post]
func HandleInvalidateProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req InvalidateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Invalidate profile"); err != nil {
			return
		}

		svc.Invalidate(r.Context(), req.UserID, sportFromRequest(req.Sport))

		log.Info("Profile invalidated", "user_id", req.UserID, "sport", req.Sport)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileInvalidatedSuccess})
	}
}
