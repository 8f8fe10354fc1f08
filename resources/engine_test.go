package resources

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/models"
	"github.com/andrewpaige1/galaxymap-api/store"
	"github.com/andrewpaige1/galaxymap-api/topics"
)

type fakeStore struct {
	docs map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]byte{}}
}

func (f *fakeStore) Load(ctx context.Context, key string, out any) error {
	data, ok := f.docs[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (f *fakeStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.docs[key] = data
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	e := New(fs, logger.NewNop())
	return e, fs
}

func (f *fakeStore) seedAuto(t *testing.T, data map[string][]models.Resource) {
	t.Helper()
	if err := f.Save(context.Background(), store.KeyAutoResources, data); err != nil {
		t.Fatalf("seed auto: %v", err)
	}
}

func (f *fakeStore) seedUser(t *testing.T, data map[string][]models.Resource) {
	t.Helper()
	if err := f.Save(context.Background(), store.KeyUserResources, data); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestMergeAutoOnlyIsVerbatim(t *testing.T) {
	e, fs := newTestEngine(t)
	auto := map[string][]models.Resource{
		"pca": {
			{Title: "A", URL: "https://a", Type: "article"},
			{Title: "B", URL: "https://b", Type: "video"},
			{Title: "C", URL: "https://c", Type: "paper"},
		},
	}
	fs.seedAuto(t, auto)

	merged, err := e.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	got := merged["pca"]
	if len(got) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(got))
	}
	for i, want := range []string{"https://a", "https://b", "https://c"} {
		if got[i].URL != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].URL, want)
		}
	}
}

func TestMergeUserEntryOverridesAuto(t *testing.T) {
	e, fs := newTestEngine(t)
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := old.Add(48 * time.Hour)
	fs.seedAuto(t, map[string][]models.Resource{
		"pca": {{Title: "PCA Guide", URL: "https://x", Type: "article",
			Ratings: []models.Rating{{UserID: "alice", Rating: 2, RatedAt: old}}}},
	})
	fs.seedUser(t, map[string][]models.Resource{
		"pca": {{URL: "https://x", UserAdded: boolPtr(false),
			Ratings: []models.Rating{{UserID: "alice", Rating: 5, RatedAt: fresh}}}},
	})

	merged, err := e.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	got := merged["pca"]
	if len(got) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(got))
	}
	if got[0].Title != "PCA Guide" {
		t.Errorf("auto baseline fields lost: title = %q", got[0].Title)
	}
	if len(got[0].Ratings) != 1 {
		t.Fatalf("expected 1 rating, got %d", len(got[0].Ratings))
	}
	if got[0].Ratings[0].Rating != 5 {
		t.Errorf("user-collection rating should win, got %d", got[0].Ratings[0].Rating)
	}
	if got[0].UserAdded == nil || *got[0].UserAdded != false {
		t.Errorf("explicit userAdded from user entry should be kept")
	}
}

func TestMergeUserAddedPreservedWhenNotStated(t *testing.T) {
	e, fs := newTestEngine(t)
	fs.seedAuto(t, map[string][]models.Resource{
		"ml": {{URL: "https://x", UserAdded: boolPtr(false)}},
	})
	fs.seedUser(t, map[string][]models.Resource{
		"ml": {{URL: "https://x", Ratings: []models.Rating{{UserID: "u1", Rating: 3}}}},
	})

	merged, err := e.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	got := merged["ml"][0]
	if got.UserAdded == nil || *got.UserAdded != false {
		t.Errorf("existing userAdded should survive a user entry without the flag")
	}
}

func TestMergeNewUserResourcesFollowAutoEntries(t *testing.T) {
	e, fs := newTestEngine(t)
	fs.seedAuto(t, map[string][]models.Resource{
		"ml": {{URL: "https://auto1"}, {URL: "https://auto2"}},
	})
	fs.seedUser(t, map[string][]models.Resource{
		"ml":  {{URL: "https://user1", UserAdded: boolPtr(true)}},
		"nlp": {{URL: "https://user2", UserAdded: boolPtr(true)}},
	})

	merged, err := e.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	ml := merged["ml"]
	if len(ml) != 3 {
		t.Fatalf("expected 3 resources for ml, got %d", len(ml))
	}
	if ml[2].URL != "https://user1" {
		t.Errorf("user-only entry should come after auto entries, got %q last", ml[2].URL)
	}
	if len(merged["nlp"]) != 1 {
		t.Errorf("topic present only in user collection should appear in merge")
	}
}

func TestAddIsSilentNoOpOnDuplicateURL(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	res := models.Resource{URL: "http://x", Title: "X", Type: "article", UserAdded: boolPtr(true)}

	if err := e.Add(ctx, "pca", res); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := e.Add(ctx, "pca", res); err != nil {
		t.Fatalf("duplicate add should not error: %v", err)
	}

	merged, err := e.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(merged["pca"]) != 1 {
		t.Fatalf("expected exactly 1 entry for pca, got %d", len(merged["pca"]))
	}
	if merged["pca"][0].URL != "http://x" {
		t.Errorf("unexpected url %q", merged["pca"][0].URL)
	}
}

func TestUpdateReplayKeepsOneRatingPerUser(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	who := models.Identity{ID: "u1", Name: "User One"}

	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	e.now = func() time.Time { return first }
	if err := e.Update(ctx, "pca", "http://x", 4, who); err != nil {
		t.Fatalf("first update: %v", err)
	}
	e.now = func() time.Time { return second }
	if err := e.Update(ctx, "pca", "http://x", 4, who); err != nil {
		t.Fatalf("second update: %v", err)
	}

	merged, err := e.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	ratings := merged["pca"][0].Ratings
	if len(ratings) != 1 {
		t.Fatalf("expected exactly 1 rating, got %d", len(ratings))
	}
	if !ratings[0].RatedAt.Equal(second) {
		t.Errorf("second call's timestamp should win: got %v, want %v", ratings[0].RatedAt, second)
	}
}

func TestUpdateZeroRemovesRating(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	who := models.Identity{ID: "u1", Name: "User One"}

	if err := e.Update(ctx, "pca", "http://x", 4, who); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := e.Update(ctx, "pca", "http://x", 0, who); err != nil {
		t.Fatalf("remove rating: %v", err)
	}

	merged, err := e.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if n := len(merged["pca"][0].Ratings); n != 0 {
		t.Fatalf("rating should be gone, got %d", n)
	}

	// Replaying the tombstone is a no-op, not an error.
	if err := e.Update(ctx, "pca", "http://x", 0, who); err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
	merged, _ = e.All(ctx)
	if n := len(merged["pca"][0].Ratings); n != 0 {
		t.Fatalf("tombstone replay must not create ratings, got %d", n)
	}
}

func TestUpdateZeroForUnknownUserAddsNothing(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	if err := e.Update(ctx, "pca", "http://x", 0, models.Identity{ID: "ghost"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	merged, err := e.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	got := merged["pca"]
	if len(got) != 1 {
		t.Fatalf("minimal entry should still be created, got %d entries", len(got))
	}
	if len(got[0].Ratings) != 0 {
		t.Errorf("zero rating must never be stored")
	}
}

func TestUpdateCopiesAutoResourceIntoUserCollection(t *testing.T) {
	e, fs := newTestEngine(t)
	ctx := context.Background()
	fs.seedAuto(t, map[string][]models.Resource{
		"pca": {{Title: "PCA Intro", URL: "http://x", Type: "article", Summary: "short"}},
	})

	if err := e.Update(ctx, "pca", "http://x", 5, models.Identity{ID: "u1", Name: "U"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	user := map[string][]models.Resource{}
	if err := fs.Load(ctx, store.KeyUserResources, &user); err != nil {
		t.Fatalf("load user collection: %v", err)
	}
	got := user["pca"]
	if len(got) != 1 {
		t.Fatalf("expected promoted copy in user collection, got %d entries", len(got))
	}
	if got[0].Title != "PCA Intro" || got[0].Summary != "short" {
		t.Errorf("auto fields should be copied, got %+v", got[0])
	}
	if got[0].UserAdded == nil || *got[0].UserAdded != false {
		t.Errorf("promoted copy must be marked userAdded=false")
	}
	if len(got[0].Ratings) != 1 || got[0].Ratings[0].Rating != 5 {
		t.Errorf("rating should be attached to the copy")
	}
}

func TestUpdateUnknownURLCreatesMinimalEntry(t *testing.T) {
	e, fs := newTestEngine(t)
	ctx := context.Background()

	if err := e.Update(ctx, "pca", "http://nowhere", 3, models.Identity{ID: "u1"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	user := map[string][]models.Resource{}
	if err := fs.Load(ctx, store.KeyUserResources, &user); err != nil {
		t.Fatalf("load user collection: %v", err)
	}
	got := user["pca"][0]
	if got.URL != "http://nowhere" || got.Title != "" || got.Type != "" {
		t.Errorf("entry should carry only url and ratings, got %+v", got)
	}
	if got.UserAdded == nil || *got.UserAdded != false {
		t.Errorf("minimal entry must be marked userAdded=false")
	}
}

func TestTwoUsersRateSameResource(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	if err := e.Add(ctx, "pca", models.Resource{URL: "http://x", Title: "X", Type: "article"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := e.Update(ctx, "pca", "http://x", 4, models.Identity{ID: "u1", Name: "U1"}); err != nil {
		t.Fatalf("u1 rating: %v", err)
	}
	if err := e.Update(ctx, "pca", "http://x", 5, models.Identity{ID: "u2", Name: "U2"}); err != nil {
		t.Fatalf("u2 rating: %v", err)
	}

	merged, err := e.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	ratings := merged["pca"][0].Ratings
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	if avg := float64(sum) / float64(len(ratings)); avg != 4.5 {
		t.Errorf("average = %v, want 4.5", avg)
	}
}

func TestRemoveTouchesOnlyUserCollection(t *testing.T) {
	e, fs := newTestEngine(t)
	ctx := context.Background()
	fs.seedAuto(t, map[string][]models.Resource{
		"ml": {{URL: "https://auto", Title: "Auto"}},
	})
	fs.seedUser(t, map[string][]models.Resource{
		"ml": {{URL: "https://mine", UserAdded: boolPtr(true)}},
	})

	// Removing an auto URL leaves the auto entry visible.
	if err := e.Remove(ctx, "ml", "https://auto"); err != nil {
		t.Fatalf("remove auto url: %v", err)
	}
	merged, _ := e.All(ctx)
	found := false
	for _, r := range merged["ml"] {
		if r.URL == "https://auto" {
			found = true
		}
	}
	if !found {
		t.Errorf("auto entry must never be removable through this path")
	}

	if err := e.Remove(ctx, "ml", "https://mine"); err != nil {
		t.Fatalf("remove user url: %v", err)
	}
	merged, _ = e.All(ctx)
	for _, r := range merged["ml"] {
		if r.URL == "https://mine" {
			t.Errorf("user entry should be gone")
		}
	}

	// Unknown topic is a no-op.
	if err := e.Remove(ctx, "no-such-topic", "https://mine"); err != nil {
		t.Fatalf("remove on unknown topic: %v", err)
	}
}

func TestSeedAuto(t *testing.T) {
	e, fs := newTestEngine(t)
	ctx := context.Background()

	if err := e.SeedAuto(ctx, topics.Nodes); err != nil {
		t.Fatalf("seed: %v", err)
	}
	auto := map[string][]models.Resource{}
	if err := fs.Load(ctx, store.KeyAutoResources, &auto); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(auto["ml"]) != 2 {
		t.Fatalf("ml should get its 2 curated resources, got %d", len(auto["ml"]))
	}

	// A populated collection is left alone.
	fs.seedAuto(t, map[string][]models.Resource{"ml": {{URL: "https://ingested"}}})
	if err := e.SeedAuto(ctx, topics.Nodes); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	auto = map[string][]models.Resource{}
	if err := fs.Load(ctx, store.KeyAutoResources, &auto); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(auto["ml"]) != 1 || auto["ml"][0].URL != "https://ingested" {
		t.Errorf("seed must not overwrite ingested data")
	}
}
