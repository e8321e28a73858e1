//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

// seedUser is the user the dev seed data is keyed to
const seedUser = "dev-user-1"

type profileEnvelope struct {
	Profile struct {
		UserID         string `json:"user_id"`
		Sport          string `json:"sport"`
		DataConfidence string `json:"data_confidence"`
	} `json:"profile"`
	Stale bool `json:"stale"`
}

func TestProfileSmoke(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/profile?user_id="+seedUser+"&sport=nfl", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var envelope profileEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if envelope.Profile.UserID != seedUser {
		t.Errorf("Expected profile for %s, got %s", seedUser, envelope.Profile.UserID)
	}
	if envelope.Profile.DataConfidence == "" {
		t.Error("Expected data_confidence to be set")
	}
	if envelope.Stale {
		t.Error("Did not expect a stale profile on a live store")
	}
}

func TestProfileRegenerate(t *testing.T) {
	request := map[string]interface{}{
		"user_id": seedUser,
		"sport":   "nfl",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/profile/regenerate", request)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestProfileInvalidate(t *testing.T) {
	request := map[string]interface{}{
		"user_id": seedUser,
		"sport":   "nfl",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/profile/invalidate", request)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestProfileValidation(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/profile?user_id="+seedUser+"&sport=cricket", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown sport, got %d", resp.StatusCode)
	}
}

func TestSeasonGraphSmoke(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/graph/season?user_id="+seedUser+"&sport=nfl&year=2025", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var g map[string]interface{}
	if err := json.Unmarshal(body, &g); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if kind, _ := g["kind"].(string); kind != "season" {
		t.Errorf("Expected kind 'season', got %q", kind)
	}
}

func TestPlayerGraphSmoke(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/graph/player?user_id="+seedUser+"&player_id=p-jchase", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var g map[string]interface{}
	if err := json.Unmarshal(body, &g); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if kind, _ := g["kind"].(string); kind != "player" {
		t.Errorf("Expected kind 'player', got %q", kind)
	}
}

func TestUnknownDraftGraph(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/graph/draft?user_id="+seedUser+"&draft_id=no-such-draft", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown draft, got %d", resp.StatusCode)
	}
}
