package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/andrewpaige1/galaxymap-api/models"
	"github.com/andrewpaige1/galaxymap-api/utils"
)

// GET /api/resources
func (h *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	merged, err := h.Resources.All(r.Context())
	if err != nil {
		h.Log.Error("GetResources: failed to load resources", "error", err)
		http.Error(w, "Failed to load resources", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(merged)
}

// POST /api/resources
func (h *Handler) MutateResources(w http.ResponseWriter, r *http.Request) {
	who, ok := utils.GetIdentity(r)
	if !ok {
		h.Log.Info("MutateResources: unauthorized request")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		NodeID   string           `json:"nodeId"`
		Resource *models.Resource `json:"resource"`
		Action   string           `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Info("MutateResources: invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NodeID == "" || req.Resource == nil {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	var err error
	switch req.Action {
	case "add":
		if _, perr := url.ParseRequestURI(req.Resource.URL); perr != nil {
			h.Log.Info("MutateResources: malformed resource url", "url", req.Resource.URL)
			http.Error(w, "Invalid resource URL", http.StatusBadRequest)
			return
		}
		if req.Resource.Type != "" && !models.IsValidResourceType(req.Resource.Type) {
			http.Error(w, "Invalid resource type", http.StatusBadRequest)
			return
		}
		err = h.Resources.Add(r.Context(), req.NodeID, *req.Resource)
	case "update":
		err = h.Resources.Update(r.Context(), req.NodeID, req.Resource.URL, int(req.Resource.Rating), who)
	case "remove":
		err = h.Resources.Remove(r.Context(), req.NodeID, req.Resource.URL)
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.Log.Error("MutateResources: mutation failed", "action", req.Action, "nodeId", req.NodeID, "error", err)
		http.Error(w, "Failed to update resources", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
