// Package resources reconciles the two resource collections kept per
// topic: the auto collection filled by ingestion and the user collection
// holding submissions and rating amendments. The externally visible list
// for a topic is always the merge of both.
package resources

import (
	"context"
	"time"

	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/models"
	"github.com/andrewpaige1/galaxymap-api/store"
	"github.com/andrewpaige1/galaxymap-api/topics"
)

// Storage is the document persistence the engine needs.
type Storage interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, v any) error
}

type Engine struct {
	store Storage
	log   *logger.Logger
	now   func() time.Time
}

func New(st Storage, log *logger.Logger) *Engine {
	return &Engine{
		store: st,
		log:   log.With("component", "resources"),
		now:   time.Now,
	}
}

// All returns the effective resource list for every topic: the auto
// collection overlaid with the user collection, merged by URL.
func (e *Engine) All(ctx context.Context) (map[string][]models.Resource, error) {
	auto := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyAutoResources, &auto); err != nil {
		return nil, err
	}
	user := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyUserResources, &user); err != nil {
		return nil, err
	}
	return Merge(auto, user), nil
}

// Merge overlays the user collection onto the auto collection for every
// topic appearing in either. It is pure: inputs are not modified.
func Merge(auto, user map[string][]models.Resource) map[string][]models.Resource {
	out := make(map[string][]models.Resource, len(auto)+len(user))
	for nodeID := range auto {
		out[nodeID] = mergeNode(auto[nodeID], user[nodeID])
	}
	for nodeID := range user {
		if _, done := out[nodeID]; !done {
			out[nodeID] = mergeNode(nil, user[nodeID])
		}
	}
	return out
}

// mergeNode merges one topic's lists keyed by URL. Auto entries keep their
// original order, user-only entries follow in theirs. When both collections
// carry the same URL, ratings are concatenated and deduplicated per user
// with the user entry winning, and an explicit userAdded flag on the user
// entry overrides the auto one.
func mergeNode(auto, user []models.Resource) []models.Resource {
	order := make([]string, 0, len(auto)+len(user))
	byURL := make(map[string]models.Resource, len(auto)+len(user))

	for _, r := range auto {
		if _, seen := byURL[r.URL]; !seen {
			order = append(order, r.URL)
		}
		byURL[r.URL] = r
	}

	for _, r := range user {
		existing, seen := byURL[r.URL]
		if !seen {
			order = append(order, r.URL)
			byURL[r.URL] = r
			continue
		}
		merged := existing
		merged.Ratings = dedupeRatings(append(append([]models.Rating{}, existing.Ratings...), r.Ratings...))
		if r.UserAdded != nil {
			merged.UserAdded = r.UserAdded
		}
		byURL[r.URL] = merged
	}

	result := make([]models.Resource, 0, len(order))
	for _, u := range order {
		result = append(result, byURL[u])
	}
	return result
}

// dedupeRatings keeps one rating per user. Position comes from a user's
// first appearance, the value from their last, so later amendments win
// without reshuffling the list.
func dedupeRatings(ratings []models.Rating) []models.Rating {
	if len(ratings) == 0 {
		return nil
	}
	order := make([]string, 0, len(ratings))
	byUser := make(map[string]models.Rating, len(ratings))
	for _, r := range ratings {
		if _, seen := byUser[r.UserID]; !seen {
			order = append(order, r.UserID)
		}
		byUser[r.UserID] = r
	}
	result := make([]models.Rating, 0, len(order))
	for _, id := range order {
		result = append(result, byUser[id])
	}
	return result
}

// Add appends res to the topic's user collection. A resource with the
// same URL already there makes this a silent no-op, not an error.
func (e *Engine) Add(ctx context.Context, nodeID string, res models.Resource) error {
	user := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyUserResources, &user); err != nil {
		return err
	}
	for _, existing := range user[nodeID] {
		if existing.URL == res.URL {
			e.log.Debug("Add: duplicate URL ignored", "nodeId", nodeID, "url", res.URL)
			return nil
		}
	}
	user[nodeID] = append(user[nodeID], res)
	return e.store.Save(ctx, store.KeyUserResources, user)
}

// Update attaches, changes or removes the caller's rating on the resource
// at url. A rating of 0 removes the caller's rating. Rating an
// auto-collected resource copies it into the user collection (marked not
// user-added) so the rating survives re-ingestion.
func (e *Engine) Update(ctx context.Context, nodeID, url string, rating int, who models.Identity) error {
	user := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyUserResources, &user); err != nil {
		return err
	}

	newRating := models.Rating{
		UserID:   who.ID,
		UserName: who.Name,
		Rating:   rating,
		RatedAt:  e.now(),
	}

	list := user[nodeID]
	idx := -1
	for i, r := range list {
		if r.URL == url {
			idx = i
			break
		}
	}

	if idx >= 0 {
		ratings := list[idx].Ratings
		userIdx := -1
		for i, r := range ratings {
			if r.UserID == who.ID {
				userIdx = i
				break
			}
		}
		switch {
		case userIdx >= 0 && rating == 0:
			ratings = append(ratings[:userIdx], ratings[userIdx+1:]...)
		case userIdx >= 0:
			ratings[userIdx] = newRating
		case rating > 0:
			ratings = append(ratings, newRating)
		}
		list[idx].Ratings = ratings
		user[nodeID] = list
	} else {
		auto := map[string][]models.Resource{}
		if err := e.store.Load(ctx, store.KeyAutoResources, &auto); err != nil {
			return err
		}

		var ratings []models.Rating
		if rating > 0 {
			ratings = []models.Rating{newRating}
		}

		notUserAdded := false
		entry := models.Resource{URL: url, Ratings: ratings, UserAdded: &notUserAdded}
		for _, r := range auto[nodeID] {
			if r.URL == url {
				// Keep the auto entry's fields so the ingestion data is
				// not duplicated elsewhere.
				entry = r
				entry.Ratings = ratings
				entry.UserAdded = &notUserAdded
				break
			}
		}
		user[nodeID] = append(list, entry)
	}

	return e.store.Save(ctx, store.KeyUserResources, user)
}

// Remove deletes the entry at url from the topic's user collection.
// Auto-collection entries are owned by ingestion and stay untouched.
// Unknown URLs are a no-op.
func (e *Engine) Remove(ctx context.Context, nodeID, url string) error {
	user := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyUserResources, &user); err != nil {
		return err
	}
	list, ok := user[nodeID]
	if !ok {
		return nil
	}
	kept := list[:0]
	for _, r := range list {
		if r.URL != url {
			kept = append(kept, r)
		}
	}
	user[nodeID] = kept
	return e.store.Save(ctx, store.KeyUserResources, user)
}

// SeedAuto fills the auto collection from the catalog's curated resources
// when the backing document is missing or empty. Ingestion updates are
// handled out of band and overwrite this.
func (e *Engine) SeedAuto(ctx context.Context, nodes []topics.Node) error {
	auto := map[string][]models.Resource{}
	if err := e.store.Load(ctx, store.KeyAutoResources, &auto); err != nil {
		return err
	}
	if len(auto) > 0 {
		return nil
	}
	for _, n := range nodes {
		if len(n.Resources) == 0 {
			continue
		}
		list := make([]models.Resource, 0, len(n.Resources))
		for _, r := range n.Resources {
			list = append(list, models.Resource{Title: r.Title, URL: r.URL, Type: r.Type})
		}
		auto[n.ID] = list
	}
	e.log.Info("SeedAuto: seeded auto collection from catalog", "topics", len(auto))
	return e.store.Save(ctx, store.KeyAutoResources, auto)
}
