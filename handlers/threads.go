package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/galaxymap-api/board"
	"github.com/andrewpaige1/galaxymap-api/utils"
)

// GET /api/threads
// Optional query params: tag (exact tag filter), action=bookmarks
// (caller's bookmarked threads, requires auth).
func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	who, authed := utils.GetIdentity(r)
	action := r.URL.Query().Get("action")
	tag := r.URL.Query().Get("tag")

	if action == "bookmarks" {
		if !authed {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		summaries, err := h.Board.Bookmarked(r.Context(), who)
		if err != nil {
			h.Log.Error("ListThreads: failed to load bookmarked threads", "error", err)
			http.Error(w, "Failed to load threads", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
		return
	}

	userID := ""
	if authed {
		userID = who.ID
	}
	summaries, err := h.Board.List(r.Context(), tag, userID)
	if err != nil {
		h.Log.Error("ListThreads: failed to load threads", "error", err)
		http.Error(w, "Failed to load threads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// GET /api/threads/{threadID}
func (h *Handler) GetThreadByID(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("threadID")
	userID := ""
	if who, ok := utils.GetIdentity(r); ok {
		userID = who.ID
	}

	detail, err := h.Board.Get(r.Context(), threadID, userID)
	if errors.Is(err, board.ErrThreadNotFound) {
		http.Error(w, "Thread not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("GetThreadByID: failed to load thread", "threadId", threadID, "error", err)
		http.Error(w, "Failed to load thread", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

// POST /api/threads
// Dispatched on the body, matching the original client contract:
// {threadId, action: like|unlike|bookmark|unbookmark} toggles,
// {threadId, content} appends a post, {title, content, tags} creates.
func (h *Handler) MutateThreads(w http.ResponseWriter, r *http.Request) {
	who, ok := utils.GetIdentity(r)
	if !ok {
		h.Log.Info("MutateThreads: unauthorized request")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		ThreadID string   `json:"threadId"`
		Action   string   `json:"action"`
		Tags     []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Info("MutateThreads: invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case req.Action == "like" || req.Action == "unlike":
		if req.ThreadID == "" {
			http.Error(w, "Thread ID is required", http.StatusBadRequest)
			return
		}
		likes, isLiked, err := h.Board.Like(r.Context(), req.ThreadID, req.Action == "like", who)
		if h.threadMutationFailed(w, "like toggle", req.ThreadID, err) {
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"likes":   likes,
			"isLiked": isLiked,
		})

	case req.Action == "bookmark" || req.Action == "unbookmark":
		if req.ThreadID == "" {
			http.Error(w, "Thread ID is required", http.StatusBadRequest)
			return
		}
		isBookmarked, err := h.Board.Bookmark(r.Context(), req.ThreadID, req.Action == "bookmark", who)
		if h.threadMutationFailed(w, "bookmark toggle", req.ThreadID, err) {
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"isBookmarked": isBookmarked,
		})

	case req.ThreadID != "" && req.Content != "":
		post, err := h.Board.AppendPost(r.Context(), req.ThreadID, req.Content, who)
		if h.threadMutationFailed(w, "append post", req.ThreadID, err) {
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"post":    post,
		})

	case req.Title != "" && req.Content != "":
		thread, err := h.Board.Create(r.Context(), req.Title, req.Content, req.Tags, who)
		if h.threadMutationFailed(w, "create thread", "", err) {
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"thread":  thread,
		})

	default:
		http.Error(w, "Invalid request", http.StatusBadRequest)
	}
}

// threadMutationFailed writes the error response for a board mutation and
// reports whether the caller should bail out.
func (h *Handler) threadMutationFailed(w http.ResponseWriter, op, threadID string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, board.ErrThreadNotFound) {
		http.Error(w, "Thread not found", http.StatusNotFound)
		return true
	}
	h.Log.Error("MutateThreads: "+op+" failed", "threadId", threadID, "error", err)
	http.Error(w, "Failed to update thread", http.StatusInternalServerError)
	return true
}
