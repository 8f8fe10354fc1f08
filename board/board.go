// Package board keeps the discussion threads: ordered posts, like and
// bookmark toggles, and tag associations to catalog topics.
package board

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/models"
	"github.com/andrewpaige1/galaxymap-api/store"
	"github.com/andrewpaige1/galaxymap-api/topics"
)

var ErrThreadNotFound = errors.New("thread not found")

// Storage is the document persistence the engine needs.
type Storage interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, v any) error
}

type Engine struct {
	store Storage
	log   *logger.Logger
	now   func() time.Time
	newID func(prefix string) string
}

func New(st Storage, log *logger.Logger) *Engine {
	return &Engine{
		store: st,
		log:   log.With("component", "board"),
		now:   time.Now,
		newID: newID,
	}
}

// newID builds a globally unique id from the current time and a random
// nanoid suffix, e.g. "thread-1756700000000-V1StGXR8Z".
func newID(prefix string) string {
	suffix, err := gonanoid.New(9)
	if err != nil {
		// crypto/rand failure; nanoid cannot proceed without entropy
		panic(err)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

func (e *Engine) loadThreads(ctx context.Context) ([]models.Thread, error) {
	var threads []models.Thread
	if err := e.store.Load(ctx, store.KeyThreads, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

func (e *Engine) loadBookmarks(ctx context.Context) (map[string][]string, error) {
	bookmarks := map[string][]string{}
	if err := e.store.Load(ctx, store.KeyBookmarks, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func summarize(t models.Thread, userID string, userBookmarks []string) models.ThreadSummary {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return models.ThreadSummary{
		ID:           t.ID,
		Title:        t.Title,
		Author:       t.Author,
		AuthorID:     t.AuthorID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		PostCount:    t.PostCount,
		Likes:        t.Likes,
		IsLiked:      userID != "" && contains(t.LikedBy, userID),
		IsBookmarked: contains(userBookmarks, t.ID),
		Tags:         t.Tags,
		TagTitles:    tagTitles(t.Tags),
	}
}

// tagTitles resolves tag ids to catalog titles; ids not in the catalog
// are shown verbatim.
func tagTitles(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	titles := make([]string, len(tags))
	for i, id := range tags {
		titles[i] = topics.TitleOr(id)
	}
	return titles
}

// sortByActivity orders summaries most-recently-active first. Ties keep
// their input order.
func sortByActivity(list []models.ThreadSummary) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
}

// List returns thread summaries, newest activity first. A non-empty tag
// keeps only threads whose tags contain exactly that id; there is no
// hierarchy expansion. userID may be empty for anonymous readers.
func (e *Engine) List(ctx context.Context, tag, userID string) ([]models.ThreadSummary, error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return nil, err
	}
	bookmarks, err := e.loadBookmarks(ctx)
	if err != nil {
		return nil, err
	}
	var userBookmarks []string
	if userID != "" {
		userBookmarks = bookmarks[userID]
	}

	summaries := make([]models.ThreadSummary, 0, len(threads))
	for _, t := range threads {
		if tag != "" && !contains(t.Tags, tag) {
			continue
		}
		summaries = append(summaries, summarize(t, userID, userBookmarks))
	}
	sortByActivity(summaries)
	return summaries, nil
}

// Bookmarked returns the caller's bookmarked threads, newest activity first.
func (e *Engine) Bookmarked(ctx context.Context, who models.Identity) ([]models.ThreadSummary, error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return nil, err
	}
	bookmarks, err := e.loadBookmarks(ctx)
	if err != nil {
		return nil, err
	}
	userBookmarks := bookmarks[who.ID]

	summaries := make([]models.ThreadSummary, 0, len(userBookmarks))
	for _, t := range threads {
		if !contains(userBookmarks, t.ID) {
			continue
		}
		summaries = append(summaries, summarize(t, who.ID, userBookmarks))
	}
	sortByActivity(summaries)
	return summaries, nil
}

// Get returns the full thread annotated for the caller. userID may be
// empty, in which case isLiked/isBookmarked are false.
func (e *Engine) Get(ctx context.Context, threadID, userID string) (*models.ThreadDetail, error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range threads {
		if t.ID != threadID {
			continue
		}
		var userBookmarks []string
		if userID != "" {
			bookmarks, err := e.loadBookmarks(ctx)
			if err != nil {
				return nil, err
			}
			userBookmarks = bookmarks[userID]
		}
		if t.Tags == nil {
			t.Tags = []string{}
		}
		return &models.ThreadDetail{
			Thread:       t,
			IsLiked:      userID != "" && contains(t.LikedBy, userID),
			IsBookmarked: contains(userBookmarks, threadID),
			TagTitles:    tagTitles(t.Tags),
		}, nil
	}
	return nil, ErrThreadNotFound
}

// Create starts a new thread whose first post carries content. Tags are
// stored as given; they are not validated against the catalog.
func (e *Engine) Create(ctx context.Context, title, content string, tags []string, who models.Identity) (*models.Thread, error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return nil, err
	}

	now := e.now()
	threadID := e.newID("thread")
	firstPost := models.Post{
		ID:        e.newID("post"),
		Author:    who.Name,
		AuthorID:  who.ID,
		Content:   content,
		CreatedAt: now,
		ThreadID:  threadID,
	}
	if tags == nil {
		tags = []string{}
	}
	thread := models.Thread{
		ID:        threadID,
		Title:     title,
		Author:    who.Name,
		AuthorID:  who.ID,
		CreatedAt: now,
		UpdatedAt: now,
		PostCount: 1,
		Posts:     []models.Post{firstPost},
		Likes:     0,
		LikedBy:   []string{},
		Tags:      tags,
	}

	threads = append(threads, thread)
	if err := e.store.Save(ctx, store.KeyThreads, threads); err != nil {
		return nil, err
	}
	e.log.Info("Create: new thread", "threadId", threadID, "authorId", who.ID)
	return &thread, nil
}

// AppendPost adds a reply to an existing thread. PostCount is recomputed
// from the posts list so the two can never drift.
func (e *Engine) AppendPost(ctx context.Context, threadID, content string, who models.Identity) (*models.Post, error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		if threads[i].ID != threadID {
			continue
		}
		now := e.now()
		post := models.Post{
			ID:        e.newID("post"),
			Author:    who.Name,
			AuthorID:  who.ID,
			Content:   content,
			CreatedAt: now,
			ThreadID:  threadID,
		}
		threads[i].Posts = append(threads[i].Posts, post)
		threads[i].PostCount = len(threads[i].Posts)
		threads[i].UpdatedAt = now
		if err := e.store.Save(ctx, store.KeyThreads, threads); err != nil {
			return nil, err
		}
		return &post, nil
	}
	return nil, ErrThreadNotFound
}

// Like adds or removes the caller from the thread's likedBy set. Asking
// for the state the thread is already in is a no-op that still reports
// the current state. likes always equals len(likedBy) afterwards.
func (e *Engine) Like(ctx context.Context, threadID string, like bool, who models.Identity) (likes int, isLiked bool, err error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return 0, false, err
	}
	for i := range threads {
		t := &threads[i]
		if t.ID != threadID {
			continue
		}
		liked := contains(t.LikedBy, who.ID)
		if like && !liked {
			t.LikedBy = append(t.LikedBy, who.ID)
		} else if !like && liked {
			kept := make([]string, 0, len(t.LikedBy))
			for _, id := range t.LikedBy {
				if id != who.ID {
					kept = append(kept, id)
				}
			}
			t.LikedBy = kept
		}
		t.Likes = len(t.LikedBy)
		if t.Likes < 0 {
			t.Likes = 0
		}
		if err := e.store.Save(ctx, store.KeyThreads, threads); err != nil {
			return 0, false, err
		}
		return t.Likes, contains(t.LikedBy, who.ID), nil
	}
	return 0, false, ErrThreadNotFound
}

// Bookmark adds or removes the thread from the caller's bookmark set,
// with the same no-op discipline as Like. The set lives in its own
// document, independent of thread state.
func (e *Engine) Bookmark(ctx context.Context, threadID string, mark bool, who models.Identity) (isBookmarked bool, err error) {
	threads, err := e.loadThreads(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for _, t := range threads {
		if t.ID == threadID {
			found = true
			break
		}
	}
	if !found {
		return false, ErrThreadNotFound
	}

	bookmarks, err := e.loadBookmarks(ctx)
	if err != nil {
		return false, err
	}
	userBookmarks := bookmarks[who.ID]
	bookmarked := contains(userBookmarks, threadID)
	if mark && !bookmarked {
		userBookmarks = append(userBookmarks, threadID)
	} else if !mark && bookmarked {
		kept := make([]string, 0, len(userBookmarks))
		for _, id := range userBookmarks {
			if id != threadID {
				kept = append(kept, id)
			}
		}
		userBookmarks = kept
	}
	bookmarks[who.ID] = userBookmarks
	if err := e.store.Save(ctx, store.KeyBookmarks, bookmarks); err != nil {
		return false, err
	}
	return contains(userBookmarks, threadID), nil
}
