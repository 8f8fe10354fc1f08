package models

// Identity is the caller resolved once at the request boundary. ID is the
// stable user id written into ratings, likedBy and bookmarks; Name is the
// display name written onto posts.
type Identity struct {
	ID   string
	Name string
}
