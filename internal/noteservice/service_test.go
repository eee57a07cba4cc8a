package noteservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fenwick/jot/internal/apperr"
	"github.com/fenwick/jot/internal/models"
	"github.com/fenwick/jot/internal/noteservice"
	"github.com/fenwick/jot/internal/testutil"
)

func testService(t *testing.T) *noteservice.Service {
	t.Helper()
	return noteservice.NewService(testutil.TestStore(t))
}

func strptr(s string) *string { return &s }

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, "First", "hello", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(n.ID, "note-") {
		t.Errorf("id = %q, want note- prefix", n.ID)
	}
	if !n.CreatedAt.Equal(n.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", n.CreatedAt, n.UpdatedAt)
	}
	if n.Tags == nil || len(n.Tags) != 0 {
		t.Errorf("tags = %#v, want empty non-nil slice", n.Tags)
	}

	got, err := svc.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "First" || got.Content != "hello" {
		t.Errorf("roundtrip = %+v", got)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("persisted created_at %v != updated_at %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		n, err := svc.Create(ctx, "t", "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[n.ID] {
			t.Fatalf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestUpdateAdvancesUpdatedAt(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, "v1", "body", nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Update(ctx, n.ID, models.NotePatch{Title: strptr("v2")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "v2" || got.Content != "body" {
		t.Errorf("updated note = %+v", got)
	}
	if got.UpdatedAt.Before(n.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", got.UpdatedAt, n.UpdatedAt)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, "bye", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
}

func TestListClampsBounds(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Seed(ctx, 3); err != nil {
		t.Fatal(err)
	}

	// Zero values fall back to defaults.
	_, total, page, pageSize, err := svc.List(ctx, 0, 0, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page != 1 || pageSize != noteservice.DefaultPageSize {
		t.Errorf("page = %d, page_size = %d", page, pageSize)
	}
	if total != 3 {
		t.Errorf("total = %d", total)
	}

	// Oversized page_size clamps to the max.
	_, _, _, pageSize, err = svc.List(ctx, 1, 1000, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if pageSize != noteservice.MaxPageSize {
		t.Errorf("page_size = %d, want %d", pageSize, noteservice.MaxPageSize)
	}

	// Negative page clamps to 1.
	items, _, page, _, err := svc.List(ctx, -3, 2, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if page != 1 || len(items) != 2 {
		t.Errorf("page = %d, len = %d", page, len(items))
	}
}

func TestSeedDefaultsAndClamp(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Seed(ctx, 0)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if created != noteservice.DefaultSeedCount {
		t.Errorf("created = %d, want %d", created, noteservice.DefaultSeedCount)
	}

	items, total, _, _, err := svc.List(ctx, 1, 10, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if total != noteservice.DefaultSeedCount {
		t.Errorf("total = %d", total)
	}
	if items[0].Title != "Sample Note 1" {
		t.Errorf("first seeded title = %q", items[0].Title)
	}
	if len(items[0].Tags) != 2 || items[0].Tags[0] != "sample" {
		t.Errorf("first seeded tags = %v", items[0].Tags)
	}
	if len(items[1].Tags) != 1 || items[1].Tags[0] != "notes" {
		t.Errorf("second seeded tags = %v", items[1].Tags)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	created, err = svc.Seed(ctx, 500)
	if err != nil {
		t.Fatal(err)
	}
	if created != noteservice.MaxSeedCount {
		t.Errorf("created = %d, want %d", created, noteservice.MaxSeedCount)
	}
}

func TestResetClearsEverything(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Seed(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	items, total, _, _, err := svc.List(ctx, 1, 10, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 || len(items) != 0 {
		t.Errorf("after reset: total = %d, len = %d", total, len(items))
	}
}
