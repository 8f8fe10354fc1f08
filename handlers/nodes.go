package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrewpaige1/galaxymap-api/topics"
)

// GET /api/nodes
// The catalog doubles as the tag vocabulary for the board and the dataset
// for the graph view, so links ride along.
func (h *Handler) GetNodes(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"all": topics.All(),
		"byTier": map[string]any{
			"tier1": topics.ByTier(1),
			"tier2": topics.ByTier(2),
			"tier3": topics.ByTier(3),
		},
		"links": topics.Links,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
