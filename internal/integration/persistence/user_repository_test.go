// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

func TestUserRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := entity.NewUser("google-123", "dev@example.com", "Dev One", "pic1", "at1", "rt1")

	created, err := repo.Upsert(ctx, first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected created user to have an id")
	}

	t.Run("second login refreshes profile and keeps the primary key", func(t *testing.T) {
		again := entity.NewUser("google-123", "dev@example.com", "Dev Renamed", "pic2", "at2", "rt2")

		updated, err := repo.Upsert(ctx, again)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != created.ID {
			t.Errorf("expected primary key %s to be preserved, got %s", created.ID, updated.ID)
		}
		if updated.Name != "Dev Renamed" || updated.AccessToken != "at2" {
			t.Errorf("expected refreshed profile fields, got %+v", updated)
		}
		if d := updated.CreatedAt.Sub(created.CreatedAt); d < -time.Second || d > time.Second {
			t.Errorf("expected creation time to be preserved, drifted by %s", d)
		}

		var count int64
		db.Table("users").Count(&count)
		if count != 1 {
			t.Errorf("expected a single user row, got %d", count)
		}
	})

	t.Run("lookups by id and google id", func(t *testing.T) {
		byID, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if byID.GoogleID != "google-123" {
			t.Errorf("expected google-123, got %s", byID.GoogleID)
		}

		byGoogle, err := repo.FindByGoogleID(ctx, "google-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if byGoogle.ID != created.ID {
			t.Errorf("expected id %s, got %s", created.ID, byGoogle.ID)
		}
	})

	t.Run("unknown lookups yield not found", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindByGoogleID(ctx, "google-999"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
