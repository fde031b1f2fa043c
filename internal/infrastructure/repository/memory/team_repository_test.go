package memory

import (
	"testing"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

func TestTeamRepository_InsertAssignsIDsPerVariant(t *testing.T) {
	repo := NewTeamRepository(nil)

	soccer, err := repo.Insert(t.Context(), roster.Team{Variant: schema.VariantSoccerLeague, Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cricket, err := repo.Insert(t.Context(), roster.Team{Variant: schema.VariantPremierLeague, Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each variant partition owns an independent id sequence.
	if soccer.ID != 1 || cricket.ID != 1 {
		t.Fatalf("expected both partitions to start at 1, got %d and %d", soccer.ID, cricket.ID)
	}

	second, err := repo.Insert(t.Context(), roster.Team{Variant: schema.VariantSoccerLeague, Name: "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}
}

func TestTeamRepository_SeededIDsContinuePastMax(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	created, err := repo.Insert(t.Context(), roster.Team{Variant: schema.VariantSoccerLeague, Name: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("expected id 3 after seeding ids 1 and 2, got %d", created.ID)
	}
}

func TestTeamRepository_InsertNormalizesNextPlayerID(t *testing.T) {
	repo := NewTeamRepository(nil)

	created, err := repo.Insert(t.Context(), roster.Team{
		Variant: schema.VariantSoccerLeague,
		Name:    "Full Roster",
		Players: []roster.Player{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.NextPlayerID != 3 {
		t.Fatalf("expected NextPlayerID 3, got %d", created.NextPlayerID)
	}
}

func TestTeamRepository_ReturnsCopies(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	team, exists, err := repo.GetByID(t.Context(), schema.VariantSoccerLeague, 1)
	if err != nil || !exists {
		t.Fatalf("expected seeded team, exists=%v err=%v", exists, err)
	}

	team.Name = "mutated"
	team.Players[0].Name = "mutated"

	fresh, _, err := repo.GetByID(t.Context(), schema.VariantSoccerLeague, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.Name != "Engineering Tigers" || fresh.Players[0].Name != "John Davis" {
		t.Fatal("stored state must not alias returned values")
	}
}

func TestTeamRepository_UpdateMissing(t *testing.T) {
	repo := NewTeamRepository(nil)

	_, exists, err := repo.Update(t.Context(), roster.Team{ID: 7, Variant: schema.VariantSoccerLeague})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("updating an absent id must report exists=false")
	}
}

func TestTeamRepository_Delete(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	deleted, err := repo.Delete(t.Context(), schema.VariantSoccerLeague, 1)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.Delete(t.Context(), schema.VariantSoccerLeague, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("second delete must report false")
	}

	// The cricket partition is untouched.
	teams, err := repo.ListByVariant(t.Context(), schema.VariantPremierLeague)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 cricket teams, got %d", len(teams))
	}
}

func TestGalleryRepository_InsertAndDelete(t *testing.T) {
	repo := NewGalleryRepository(SeedGalleryImages())

	created, err := repo.Insert(t.Context(), SeedGalleryImages()[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5 after seeding asl ids 1..4, got %d", created.ID)
	}

	deleted, err := repo.Delete(t.Context(), schema.VariantSoccerLeague, created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.Delete(t.Context(), schema.VariantSoccerLeague, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("second delete must report false")
	}
}
