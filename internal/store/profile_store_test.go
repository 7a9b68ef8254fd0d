package store_test

import (
	"errors"
	"testing"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/store"
)

func TestProfiles_CreateLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	var profiles domain.ProfileStore = store.NewProfileFileStore(dir)

	p := domain.Profile{Username: "alice", PasswordHash: "$2a$10$hash", Bio: "hi"}
	if err := profiles.CreateProfile(p); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	// A fresh store over the same directory must see the same record.
	profiles = store.NewProfileFileStore(dir)
	got, ok, err := profiles.LoadProfile("alice")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if !ok {
		t.Fatal("profile not found after create")
	}
	if got != p {
		t.Fatalf("mismatch after reload: got %+v want %+v", got, p)
	}
}

func TestProfiles_Create_Duplicate_KeepsFirst(t *testing.T) {
	dir := t.TempDir()
	profiles := store.NewProfileFileStore(dir)

	first := domain.Profile{Username: "alice", PasswordHash: "hash-one"}
	if err := profiles.CreateProfile(first); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	err := profiles.CreateProfile(domain.Profile{Username: "alice", PasswordHash: "hash-two"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	got, _, err := profiles.LoadProfile("alice")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got.PasswordHash != "hash-one" {
		t.Fatalf("first registration overwritten: %+v", got)
	}
}

func TestProfiles_MissingFile_IsEmpty(t *testing.T) {
	profiles := store.NewProfileFileStore(t.TempDir())

	if _, ok, err := profiles.LoadProfile("nobody"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	list, err := profiles.ListProfiles()
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no profiles, got %d", len(list))
	}
}

func TestProfiles_List_SortedByUsername(t *testing.T) {
	profiles := store.NewProfileFileStore(t.TempDir())

	for _, name := range []domain.Username{"carol", "alice", "bob"} {
		if err := profiles.CreateProfile(domain.Profile{Username: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	list, err := profiles.ListProfiles()
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	want := []domain.Username{"alice", "bob", "carol"}
	if len(list) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].Username != name {
			t.Fatalf("position %d: got %s want %s", i, list[i].Username, name)
		}
	}
}
