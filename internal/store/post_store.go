package store

import (
	"path/filepath"
	"sync"

	"socialcosmos/internal/domain"
)

const postsFile = "posts.json"

// PostFileStore persists the append-only feed to disk.
type PostFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPostFileStore returns a PostFileStore rooted at dir.
func NewPostFileStore(dir string) *PostFileStore {
	return &PostFileStore{dir: dir}
}

// AppendPost adds p to the end of the feed. Insertion order is the total
// order; posts are never edited or deleted.
func (s *PostFileStore) AppendPost(p domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, postsFile)
	var posts []domain.Post
	if err := readJSON(path, &posts); err != nil {
		return err
	}
	posts = append(posts, p)
	return writeJSON(path, posts, 0o600)
}

// ListPosts returns all posts in insertion order. Each call re-reads the
// persisted document, so the result is a consistent snapshot as of the last
// completed write.
func (s *PostFileStore) ListPosts() ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, postsFile)
	var posts []domain.Post
	if err := readJSON(path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Compile-time assertion that PostFileStore implements domain.PostStore.
var _ domain.PostStore = (*PostFileStore)(nil)
