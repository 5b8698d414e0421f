package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/chubflix/episode-stage/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chats (
		id             TEXT PRIMARY KEY,
		character_name TEXT NOT NULL,
		total_episodes INTEGER NOT NULL,
		episode_titles TEXT NOT NULL,
		character      TEXT NOT NULL,
		created_at     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chats_created ON chats(created_at DESC);

	CREATE TABLE IF NOT EXISTS chat_state (
		chat_id         TEXT PRIMARY KEY REFERENCES chats(id),
		highest_episode INTEGER NOT NULL DEFAULT 0,
		completed       INTEGER NOT NULL DEFAULT 0,
		updated_at      TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS turns (
		id              TEXT PRIMARY KEY,
		chat_id         TEXT NOT NULL REFERENCES chats(id),
		seq             INTEGER NOT NULL,
		phase           TEXT NOT NULL,
		current_episode INTEGER NOT NULL,
		started_at      TEXT NOT NULL,
		message         TEXT,
		UNIQUE (chat_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_turns_chat ON turns(chat_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) CreateChat(ctx context.Context, c model.Character, init model.InitState) (*Chat, error) {
	now := time.Now().UTC()
	id := s.newID()

	titlesJSON, _ := json.Marshal(init.EpisodeTitles)
	charJSON, _ := json.Marshal(c)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (id, character_name, total_episodes, episode_titles, character, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, init.CharacterName, init.TotalEpisodes, string(titlesJSON), string(charJSON),
		now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert chat: %w", err)
	}

	return &Chat{ID: id, Character: c, Init: init, CreatedAt: now}, nil
}

func (s *SQLiteStore) GetChat(ctx context.Context, id string) (*Chat, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, character_name, total_episodes, episode_titles, character, created_at
		 FROM chats WHERE id = ?`, id)

	chat, err := scanChat(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chat not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *SQLiteStore) ListChats(ctx context.Context, limit int) ([]Chat, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, character_name, total_episodes, episode_titles, character, created_at
		 FROM chats ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, *c)
	}
	return chats, rows.Err()
}

func (s *SQLiteStore) SaveChatState(ctx context.Context, chatID string, state model.ChatState) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_state (chat_id, highest_episode, completed, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (chat_id) DO UPDATE SET
		   highest_episode = excluded.highest_episode,
		   completed = excluded.completed,
		   updated_at = excluded.updated_at`,
		chatID, state.HighestEpisodeReached, boolToInt(state.Completed), now)
	if err != nil {
		return fmt.Errorf("save chat state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetChatState(ctx context.Context, chatID string) (model.ChatState, error) {
	var state model.ChatState
	var completed int
	err := s.db.QueryRowContext(ctx,
		`SELECT highest_episode, completed FROM chat_state WHERE chat_id = ?`,
		chatID).Scan(&state.HighestEpisodeReached, &completed)
	if err == sql.ErrNoRows {
		return model.ChatState{}, nil
	}
	if err != nil {
		return model.ChatState{}, err
	}
	state.Completed = completed != 0
	return state, nil
}

func (s *SQLiteStore) SaveTurn(ctx context.Context, p SaveTurnParams) (*TurnRecord, error) {
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM turns WHERE chat_id = ?`, p.ChatID).Scan(&seq)
	if err != nil {
		return nil, err
	}

	var msg *string
	if p.Message != "" {
		msg = &p.Message
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO turns (id, chat_id, seq, phase, current_episode, started_at, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.ChatID, seq, p.Phase, p.State.CurrentEpisode, p.State.StartedAt, msg)
	if err != nil {
		return nil, fmt.Errorf("insert turn: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &TurnRecord{
		ID:      id,
		ChatID:  p.ChatID,
		Seq:     seq,
		Phase:   p.Phase,
		State:   p.State,
		Message: p.Message,
	}, nil
}

func (s *SQLiteStore) GetTurn(ctx context.Context, chatID string, seq int) (*TurnRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, chat_id, seq, phase, current_episode, started_at, message
		 FROM turns WHERE chat_id = ? AND seq = ?`, chatID, seq)

	t, err := scanTurn(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("turn not found: %s/%d", chatID, seq)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SQLiteStore) LatestTurn(ctx context.Context, chatID string) (*TurnRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, chat_id, seq, phase, current_episode, started_at, message
		 FROM turns WHERE chat_id = ? ORDER BY seq DESC LIMIT 1`, chatID)

	t, err := scanTurn(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SQLiteStore) ListTurns(ctx context.Context, chatID string) ([]TurnRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chat_id, seq, phase, current_episode, started_at, message
		 FROM turns WHERE chat_id = ? ORDER BY seq`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []TurnRecord
	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		turns = append(turns, *t)
	}
	return turns, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanChat(row scanner) (*Chat, error) {
	var c Chat
	var titlesJSON, charJSON, createdAt string

	err := row.Scan(&c.ID, &c.Init.CharacterName, &c.Init.TotalEpisodes,
		&titlesJSON, &charJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	json.Unmarshal([]byte(titlesJSON), &c.Init.EpisodeTitles)
	json.Unmarshal([]byte(charJSON), &c.Character)

	return &c, nil
}

func scanTurn(row scanner) (*TurnRecord, error) {
	var t TurnRecord
	var msg sql.NullString

	err := row.Scan(&t.ID, &t.ChatID, &t.Seq, &t.Phase,
		&t.State.CurrentEpisode, &t.State.StartedAt, &msg)
	if err != nil {
		return nil, err
	}

	if msg.Valid {
		t.Message = msg.String
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
