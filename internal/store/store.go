// Package store persists the three stage snapshot layers in SQLite. It
// plays the hosting runtime's storage role: the stage itself never
// touches it.
package store

import (
	"context"
	"time"

	"github.com/chubflix/episode-stage/internal/model"
)

// Chat is one stored chat: the character card plus the init snapshot
// derived from it when the catalog was built.
type Chat struct {
	ID        string          `json:"id"`
	Character model.Character `json:"character"`
	Init      model.InitState `json:"init"`
	CreatedAt time.Time       `json:"created_at"`
}

// TurnRecord is one persisted per-turn snapshot.
type TurnRecord struct {
	ID      string          `json:"id"`
	ChatID  string          `json:"chat_id"`
	Seq     int             `json:"seq"`
	Phase   string          `json:"phase"`
	State   model.TurnState `json:"state"`
	Message string          `json:"message,omitempty"`
}

// Turn phases.
const (
	PhaseBefore = "before"
	PhaseAfter  = "after"
	PhaseNav    = "nav"
)

// SaveTurnParams holds parameters for persisting a turn snapshot.
type SaveTurnParams struct {
	ChatID  string
	Phase   string
	State   model.TurnState
	Message string
}

// Store defines the snapshot storage interface.
type Store interface {
	// CreateChat stores a new chat with its init snapshot.
	CreateChat(ctx context.Context, c model.Character, init model.InitState) (*Chat, error)

	// GetChat retrieves a chat by ID.
	GetChat(ctx context.Context, id string) (*Chat, error)

	// ListChats lists chats, newest first.
	ListChats(ctx context.Context, limit int) ([]Chat, error)

	// SaveChatState upserts the per-chat snapshot.
	SaveChatState(ctx context.Context, chatID string, state model.ChatState) error

	// GetChatState retrieves the per-chat snapshot (zero value if unset).
	GetChatState(ctx context.Context, chatID string) (model.ChatState, error)

	// SaveTurn appends a per-turn snapshot with the next sequence number.
	SaveTurn(ctx context.Context, p SaveTurnParams) (*TurnRecord, error)

	// GetTurn retrieves a turn snapshot by sequence number.
	GetTurn(ctx context.Context, chatID string, seq int) (*TurnRecord, error)

	// LatestTurn retrieves the most recent turn snapshot, or nil if none.
	LatestTurn(ctx context.Context, chatID string) (*TurnRecord, error)

	// ListTurns lists a chat's turn snapshots in sequence order.
	ListTurns(ctx context.Context, chatID string) ([]TurnRecord, error)

	// Close closes the store.
	Close() error
}
