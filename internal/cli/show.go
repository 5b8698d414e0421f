package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <chat-id>",
		Short: "Show a chat's three snapshot layers",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	chat, err := s.GetChat(cmd.Context(), args[0])
	if err != nil {
		exitErr("get chat", err)
	}
	state, err := s.GetChatState(cmd.Context(), args[0])
	if err != nil {
		exitErr("get chat state", err)
	}
	latest, err := s.LatestTurn(cmd.Context(), args[0])
	if err != nil {
		exitErr("get latest turn", err)
	}

	out := struct {
		Init model.InitState   `json:"init"`
		Chat model.ChatState   `json:"chat"`
		Turn *store.TurnRecord `json:"turn,omitempty"`
	}{Init: chat.Init, Chat: state, Turn: latest}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
