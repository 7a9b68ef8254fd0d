package store_test

import (
	"bytes"
	"fmt"
	"testing"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/store"
)

func TestPosts_Append_PreservesInsertionOrder(t *testing.T) {
	dir := t.TempDir()
	posts := store.NewPostFileStore(dir)

	for i := 0; i < 5; i++ {
		p := domain.Post{Author: "bob", Content: fmt.Sprintf("post %d", i)}
		if err := posts.AppendPost(p); err != nil {
			t.Fatalf("append post %d: %v", i, err)
		}
	}

	// Reload from disk through a fresh store.
	got, err := store.NewPostFileStore(dir).ListPosts()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(got))
	}
	for i, p := range got {
		if want := fmt.Sprintf("post %d", i); p.Content != want {
			t.Fatalf("position %d: got %q want %q", i, p.Content, want)
		}
	}
}

func TestPosts_ImageBytes_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	posts := store.NewPostFileStore(dir)

	img := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	if err := posts.AppendPost(domain.Post{Author: "bob", Content: "pic", Image: img}); err != nil {
		t.Fatalf("append post: %v", err)
	}

	got, err := store.NewPostFileStore(dir).ListPosts()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(got) != 1 || !bytes.Equal(got[0].Image, img) {
		t.Fatalf("image bytes did not survive the round trip: %+v", got)
	}
}

func TestPosts_MissingFile_IsEmpty(t *testing.T) {
	got, err := store.NewPostFileStore(t.TempDir()).ListPosts()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty feed, got %d posts", len(got))
	}
}
