package gallery

import (
	"fmt"
	"strings"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// Image is one gallery entry scoped to a tournament variant. Gallery content
// has no data dependency on rosters.
type Image struct {
	ID      int
	Variant schema.Variant
	URL     string
	Caption string
	Date    string
}

func (i Image) Validate() error {
	if strings.TrimSpace(i.URL) == "" {
		return fmt.Errorf("image url is required")
	}
	if strings.TrimSpace(i.Caption) == "" {
		return fmt.Errorf("image caption is required")
	}
	if !i.Variant.Valid() {
		return fmt.Errorf("image variant is required")
	}

	return nil
}
