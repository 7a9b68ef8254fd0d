package post

import (
	"math/rand/v2"
	"strings"

	"socialcosmos/internal/domain"
)

// Service manages feed posts using a backing post store.
type Service struct {
	posts domain.PostStore
}

// New returns a post service backed by the given store.
func New(posts domain.PostStore) *Service { return &Service{posts: posts} }

// Create appends a post to the feed.
//
// Content that trims to empty is rejected with ErrEmptyContent and leaves the
// store untouched. An empty author is stamped as the anonymous identity. The
// image bytes, when present, are copied so later caller mutations cannot
// reach the stored post.
func (s *Service) Create(author domain.Username, content string, image []byte) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyContent
	}
	if author == "" {
		author = domain.Anonymous
	}
	p := domain.Post{Author: author, Content: content}
	if len(image) > 0 {
		p.Image = append([]byte(nil), image...)
	}
	return s.posts.AppendPost(p)
}

// List returns every post in insertion order.
func (s *Service) List() ([]domain.Post, error) {
	return s.posts.ListPosts()
}

// Feed returns the posts for display. With shuffle set the order is
// randomised for the random-posts page; the underlying store order is
// untouched.
func (s *Service) Feed(shuffle bool) ([]domain.Post, error) {
	posts, err := s.posts.ListPosts()
	if err != nil {
		return nil, err
	}
	if shuffle {
		rand.Shuffle(len(posts), func(i, j int) {
			posts[i], posts[j] = posts[j], posts[i]
		})
	}
	return posts, nil
}

// Compile-time assertion that Service implements domain.PostService.
var _ domain.PostService = (*Service)(nil)
