package stage

import (
	"fmt"

	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/nav"
)

// BuildContext synthesizes the system-message string injected before a
// model call so the downstream model can infer narrative continuity.
// Returns false when injection is disabled. The title falls back to the
// positional default if the catalog entry is somehow missing.
func BuildContext(episodes []model.Episode, state *nav.State, enabled bool) (string, bool) {
	if !enabled {
		return "", false
	}
	i := state.Current()
	title := fmt.Sprintf("Episode %d", i+1)
	if i >= 0 && i < len(episodes) {
		title = episodes[i].Title
	}
	return fmt.Sprintf(
		"[Chubflix Episode Context: Currently on %s (%d/%d). Maintain narrative continuity with previous episodes.]",
		title, i+1, len(episodes),
	), true
}
