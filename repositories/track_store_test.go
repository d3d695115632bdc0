package repositories

import (
	"errors"
	"testing"

	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
)

func TestTrackStore(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		user := createTestUser(t, db, "alice")

		track := models.Track{Name: "Morning Run", UserID: user.ID}
		if err := store.Create(&track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if track.ID == 0 {
			t.Error("track ID should be set after creation")
		}
		if track.Slug != "morning-run" {
			t.Errorf("expected slug morning-run, got %q", track.Slug)
		}
	})

	t.Run("ListByUser", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		for _, name := range []string{"5k", "10k"} {
			if err := store.Create(&models.Track{Name: name, UserID: alice.ID}); err != nil {
				t.Fatalf("failed to create track: %v", err)
			}
		}
		if err := store.Create(&models.Track{Name: "intervals", UserID: bob.ID}); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		tracks, err := store.ListByUser(alice.ID)
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(tracks) != 2 {
			t.Fatalf("expected 2 tracks for alice, got %d", len(tracks))
		}
		// Insertion order.
		if tracks[0].Name != "5k" || tracks[1].Name != "10k" {
			t.Errorf("unexpected order: %q, %q", tracks[0].Name, tracks[1].Name)
		}
		for _, track := range tracks {
			if track.UserID != alice.ID {
				t.Errorf("track %d belongs to user %d, expected %d", track.ID, track.UserID, alice.ID)
			}
		}
	})

	t.Run("UpdateName", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		user := createTestUser(t, db, "alice")

		track := models.Track{Name: "X", UserID: user.ID}
		if err := store.Create(&track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if err := store.UpdateName(track.ID, user.ID, "Y"); err != nil {
			t.Fatalf("failed to update track: %v", err)
		}

		tracks, err := store.ListByUser(user.ID)
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(tracks) != 1 || tracks[0].Name != "Y" {
			t.Fatalf("expected renamed track Y, got %+v", tracks)
		}
		if tracks[0].Slug != "y" {
			t.Errorf("expected slug refreshed to y, got %q", tracks[0].Slug)
		}
	})

	t.Run("UpdateNameNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		user := createTestUser(t, db, "alice")

		if err := store.UpdateName(999, user.ID, "Y"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	// A track owned by another user is indistinguishable from a missing one.
	t.Run("UpdateNameForeignOwner", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		track := models.Track{Name: "X", UserID: alice.ID}
		if err := store.Create(&track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if err := store.UpdateName(track.ID, bob.ID, "stolen"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
		}

		tracks, _ := store.ListByUser(alice.ID)
		if len(tracks) != 1 || tracks[0].Name != "X" {
			t.Fatalf("track should be untouched, got %+v", tracks)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		user := createTestUser(t, db, "alice")

		track := models.Track{Name: "X", UserID: user.ID}
		if err := store.Create(&track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if err := store.Delete(track.ID, user.ID); err != nil {
			t.Fatalf("failed to delete track: %v", err)
		}

		tracks, err := store.ListByUser(user.ID)
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(tracks) != 0 {
			t.Fatalf("expected no tracks after delete, got %d", len(tracks))
		}

		// A second update on the deleted id reads as not found.
		if err := store.UpdateName(track.ID, user.ID, "Z"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		user := createTestUser(t, db, "alice")

		if err := store.Delete(999, user.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteForeignOwner", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		track := models.Track{Name: "X", UserID: alice.ID}
		if err := store.Create(&track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if err := store.Delete(track.ID, bob.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
		}
	})

	t.Run("Search", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewGormTrackStore(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		for _, name := range []string{"Morning Run", "Evening Ride", "Night Run"} {
			if err := store.Create(&models.Track{Name: name, UserID: alice.ID}); err != nil {
				t.Fatalf("failed to create track: %v", err)
			}
		}
		if err := store.Create(&models.Track{Name: "Morning Swim", UserID: bob.ID}); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		t.Run("CaseInsensitive", func(t *testing.T) {
			tracks, err := store.Search(alice.ID, "morning")
			if err != nil {
				t.Fatalf("failed to search tracks: %v", err)
			}
			if len(tracks) != 1 || tracks[0].Name != "Morning Run" {
				t.Fatalf("expected Morning Run, got %+v", tracks)
			}
		})

		t.Run("Substring", func(t *testing.T) {
			tracks, err := store.Search(alice.ID, "RUN")
			if err != nil {
				t.Fatalf("failed to search tracks: %v", err)
			}
			if len(tracks) != 2 {
				t.Fatalf("expected 2 matches, got %d", len(tracks))
			}
		})

		t.Run("EmptyQueryReturnsAll", func(t *testing.T) {
			tracks, err := store.Search(alice.ID, "")
			if err != nil {
				t.Fatalf("failed to search tracks: %v", err)
			}
			if len(tracks) != 3 {
				t.Fatalf("expected all 3 tracks, got %d", len(tracks))
			}
		})

		t.Run("ScopedToCaller", func(t *testing.T) {
			tracks, err := store.Search(bob.ID, "morning")
			if err != nil {
				t.Fatalf("failed to search tracks: %v", err)
			}
			if len(tracks) != 1 || tracks[0].Name != "Morning Swim" {
				t.Fatalf("expected only bob's track, got %+v", tracks)
			}
		})

		t.Run("NoMatches", func(t *testing.T) {
			tracks, err := store.Search(alice.ID, "cycling")
			if err != nil {
				t.Fatalf("failed to search tracks: %v", err)
			}
			if len(tracks) != 0 {
				t.Fatalf("expected no matches, got %d", len(tracks))
			}
		})
	})
}
