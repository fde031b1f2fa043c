package memory

import (
	"github.com/ahaliasports/tournament-ops/internal/domain/gallery"
	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

func jersey(n int) *int { return &n }

func soccerStats(goals, assists, yellow, red int) schema.Stats {
	return schema.Stats{
		Variant: schema.VariantSoccerLeague,
		Soccer:  schema.SoccerStats{Goals: goals, Assists: assists, YellowCards: yellow, RedCards: red},
	}
}

func cricketStats(runs, wickets, matches int, average float64) schema.Stats {
	return schema.Stats{
		Variant: schema.VariantPremierLeague,
		Cricket: schema.CricketStats{Runs: runs, Wickets: wickets, Matches: matches, Average: average},
	}
}

// SeedTeams returns the demo rosters both tournaments start with.
func SeedTeams() []roster.Team {
	return []roster.Team{
		{
			ID:           1,
			Variant:      schema.VariantSoccerLeague,
			Name:         "Engineering Tigers",
			Department:   "engineering",
			CaptainName:  "John Davis",
			CaptainEmail: "john@example.com",
			CaptainPhone: "9846100101",
			Status:       roster.StatusActive,
			Players: []roster.Player{
				{ID: 1, Name: "John Davis", Position: schema.PositionForward, JerseyNumber: jersey(10), Stats: soccerStats(5, 3, 1, 0)},
				{ID: 2, Name: "Mike Smith", Position: schema.PositionMidfielder, JerseyNumber: jersey(8), Stats: soccerStats(2, 4, 0, 0)},
				{ID: 3, Name: "Chris Johnson", Position: schema.PositionDefender, JerseyNumber: jersey(5), Stats: soccerStats(0, 1, 2, 0)},
			},
			NextPlayerID: 4,
		},
		{
			ID:           2,
			Variant:      schema.VariantSoccerLeague,
			Name:         "Medicine United",
			Department:   "medicine",
			CaptainName:  "Sarah Wilson",
			CaptainEmail: "sarah@example.com",
			CaptainPhone: "9846100102",
			Status:       roster.StatusActive,
			Players: []roster.Player{
				{ID: 1, Name: "Sarah Wilson", Position: schema.PositionMidfielder, JerseyNumber: jersey(7), Stats: soccerStats(3, 5, 0, 0)},
				{ID: 2, Name: "Alex Brown", Position: schema.PositionForward, JerseyNumber: jersey(9), Stats: soccerStats(6, 2, 1, 0)},
			},
			NextPlayerID: 3,
		},
		{
			ID:           1,
			Variant:      schema.VariantPremierLeague,
			Name:         "Science Strikers",
			Department:   "science",
			CaptainName:  "David Miller",
			CaptainEmail: "david@example.com",
			CaptainPhone: "9846100103",
			Status:       roster.StatusActive,
			Players: []roster.Player{
				{ID: 1, Name: "David Miller", Position: schema.PositionBatter, JerseyNumber: jersey(45), Stats: cricketStats(120, 0, 4, 30)},
				{ID: 2, Name: "Raj Patel", Position: schema.PositionBowler, JerseyNumber: jersey(99), Stats: cricketStats(15, 8, 4, 3.75)},
				{ID: 3, Name: "Tom Wilson", Position: schema.PositionAllRounder, JerseyNumber: jersey(7), Stats: cricketStats(85, 5, 4, 21.25)},
			},
			NextPlayerID: 4,
		},
		{
			ID:           2,
			Variant:      schema.VariantPremierLeague,
			Name:         "Arts Avengers",
			Department:   "arts",
			CaptainName:  "Jessica Lee",
			CaptainEmail: "jessica@example.com",
			CaptainPhone: "9846100104",
			Status:       roster.StatusActive,
			Players: []roster.Player{
				{ID: 1, Name: "Jessica Lee", Position: schema.PositionBatter, JerseyNumber: jersey(18), Stats: cricketStats(95, 0, 3, 31.67)},
				{ID: 2, Name: "Ben Smith", Position: schema.PositionAllRounder, JerseyNumber: jersey(23), Stats: cricketStats(75, 4, 3, 25)},
			},
			NextPlayerID: 3,
		},
	}
}

// SeedGalleryImages returns the demo gallery both tournaments start with.
func SeedGalleryImages() []gallery.Image {
	return []gallery.Image{
		{ID: 1, Variant: schema.VariantSoccerLeague, URL: "https://images.unsplash.com/photo-1574629810360-7efbbe195018?q=80&w=1936&auto=format&fit=crop", Caption: "ASL Opening Ceremony", Date: "2023-09-12"},
		{ID: 2, Variant: schema.VariantSoccerLeague, URL: "https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?q=80&w=1770&auto=format&fit=crop", Caption: "Engineering Tigers vs Medicine United", Date: "2023-09-15"},
		{ID: 3, Variant: schema.VariantSoccerLeague, URL: "https://images.unsplash.com/photo-1517466787929-bc90951d0974?q=80&w=2033&auto=format&fit=crop", Caption: "Science Strikers Victory", Date: "2023-09-20"},
		{ID: 4, Variant: schema.VariantSoccerLeague, URL: "https://images.unsplash.com/photo-1556056504-5c7696c4c28d?q=80&w=2076&auto=format&fit=crop", Caption: "Arts Avengers Team Photo", Date: "2023-09-25"},
		{ID: 5, Variant: schema.VariantPremierLeague, URL: "https://images.unsplash.com/photo-1531415074968-036ba1b575da?q=80&w=1767&auto=format&fit=crop", Caption: "APL Trophy Ceremony", Date: "2023-10-05"},
		{ID: 6, Variant: schema.VariantPremierLeague, URL: "https://images.unsplash.com/photo-1624526267942-ab0c6b5b8b2a?q=80&w=1770&auto=format&fit=crop", Caption: "Pharmacy Phoenix vs Engineering Eagles", Date: "2023-10-10"},
		{ID: 7, Variant: schema.VariantPremierLeague, URL: "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?q=80&w=1905&auto=format&fit=crop", Caption: "Medicine Mavericks Bowling", Date: "2023-10-15"},
		{ID: 8, Variant: schema.VariantPremierLeague, URL: "https://images.unsplash.com/photo-1593786481097-cf281dd12e9e?q=80&w=1770&auto=format&fit=crop", Caption: "Team Celebration", Date: "2023-10-20"},
	}
}
