// Package cli implements the chubflix-stage CLI. It plays the hosting
// runtime for local development: it persists the three snapshot layers
// and drives the stage lifecycle hooks.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chubflix/episode-stage/internal/config"
	"github.com/chubflix/episode-stage/internal/stage"
	"github.com/chubflix/episode-stage/internal/store"
)

var (
	dbPath  string
	cfgFile string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "chubflix-stage",
	Short: "Episode tracking for character chats",
	Long:  "Tracks a chat's position in a character's episode catalog. SQLite-backed, single binary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init(cfgFile)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $CHUBFLIX_DB or ~/.chubflix/chats.db)")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./chubflix.yaml or ~/.chubflix/chubflix.yaml)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("CHUBFLIX_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".chubflix", "chats.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// loadStage reconstructs the stage for a stored chat and conforms it to
// the latest persisted turn snapshot, if any. The high-water mark and
// completed flag restart at zero on every reconstruction; only the
// per-turn layer is consulted.
func loadStage(ctx context.Context, s *store.SQLiteStore, chatID string) (*stage.Stage, *store.Chat, error) {
	chat, err := s.GetChat(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	st := stage.New(chat.Character, config.StageConfig())
	latest, err := s.LatestTurn(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	if latest != nil {
		st.Restore(latest.State)
	}
	return st, chat, nil
}

// persistNav writes the snapshots produced by a navigation action.
func persistNav(ctx context.Context, s *store.SQLiteStore, chatID string, r stage.NavResult) error {
	if _, err := s.SaveTurn(ctx, store.SaveTurnParams{
		ChatID: chatID,
		Phase:  store.PhaseNav,
		State:  r.Turn,
	}); err != nil {
		return err
	}
	return s.SaveChatState(ctx, chatID, r.Chat)
}
