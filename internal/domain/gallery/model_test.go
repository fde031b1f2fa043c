package gallery

import (
	"testing"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

func TestImage_Validate(t *testing.T) {
	valid := Image{
		Variant: schema.VariantSoccerLeague,
		URL:     "https://example.com/final.jpg",
		Caption: "Final Whistle",
		Date:    "2026-08-31",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Image)
	}{
		{"missing url", func(i *Image) { i.URL = "   " }},
		{"missing caption", func(i *Image) { i.Caption = "" }},
		{"unknown variant", func(i *Image) { i.Variant = "nba" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := valid
			tc.mutate(&img)
			if err := img.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
