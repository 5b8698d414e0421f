package store

import (
	"context"
	"os"

	"github.com/chubflix/episode-stage/internal/model"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string      `json:"db_path"`
	DBSizeBytes int64       `json:"db_size_bytes"`
	TotalChats  int         `json:"total_chats"`
	TotalTurns  int         `json:"total_turns"`
	Chats       []ChatStats `json:"chats"`
}

// ChatStats holds per-chat counts and progress.
type ChatStats struct {
	ID             string `json:"id"`
	CharacterName  string `json:"character_name"`
	TotalEpisodes  int    `json:"total_episodes"`
	Turns          int    `json:"turns"`
	HighestEpisode int    `json:"highest_episode"`
	Completed      bool   `json:"completed"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chats`).Scan(&st.TotalChats)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turns`).Scan(&st.TotalTurns)

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.character_name, c.total_episodes,
		       COUNT(t.id) AS turns,
		       COALESCE(cs.highest_episode, 0), COALESCE(cs.completed, 0)
		FROM chats c
		LEFT JOIN turns t ON t.chat_id = c.id
		LEFT JOIN chat_state cs ON cs.chat_id = c.id
		GROUP BY c.id ORDER BY c.created_at DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var cs ChatStats
		var completed int
		rows.Scan(&cs.ID, &cs.CharacterName, &cs.TotalEpisodes, &cs.Turns,
			&cs.HighestEpisode, &completed)
		cs.Completed = completed != 0
		st.Chats = append(st.Chats, cs)
	}

	return st, nil
}

// Export bundles everything persisted for one chat: the three snapshot
// layers plus the full turn history.
type Export struct {
	Chat  Chat            `json:"chat"`
	State model.ChatState `json:"state"`
	Turns []TurnRecord    `json:"turns"`
}

// ExportChat returns a chat's full persisted record.
func (s *SQLiteStore) ExportChat(ctx context.Context, chatID string) (*Export, error) {
	chat, err := s.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	state, err := s.GetChatState(ctx, chatID)
	if err != nil {
		return nil, err
	}
	turns, err := s.ListTurns(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return &Export{Chat: *chat, State: state, Turns: turns}, nil
}
