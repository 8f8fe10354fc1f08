package models

import "time"

// Post is one reply in a thread. Posts are append-only; there is no edit
// or delete.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	ThreadID  string    `json:"threadId"`
}

// Thread is a board topic with its ordered posts. LikedBy is the source of
// truth for likes; Likes and PostCount are denormalized and must always
// equal len(LikedBy) and len(Posts).
type Thread struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	PostCount int       `json:"postCount"`
	Posts     []Post    `json:"posts"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	Tags      []string  `json:"tags"`
}

// ThreadSummary is the list-view shape, annotated per caller.
type ThreadSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	AuthorID     string    `json:"authorId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	PostCount    int       `json:"postCount"`
	Likes        int       `json:"likes"`
	IsLiked      bool      `json:"isLiked"`
	IsBookmarked bool      `json:"isBookmarked"`
	Tags         []string  `json:"tags"`
	TagTitles    []string  `json:"tagTitles,omitempty"`
}

// ThreadDetail is the full thread annotated per caller.
type ThreadDetail struct {
	Thread
	IsLiked      bool     `json:"isLiked"`
	IsBookmarked bool     `json:"isBookmarked"`
	TagTitles    []string `json:"tagTitles,omitempty"`
}
