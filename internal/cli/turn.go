package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "turn <chat-id> [message]",
		Short: "Run one before/after turn cycle",
		Long:  "Run the before-model and after-model hooks for one turn, persisting the chat and turn snapshot layers.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTurn,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Print the stage's diagnostic events")

	RootCmd.AddCommand(cmd)
}

func runTurn(cmd *cobra.Command, args []string) {
	chatID := args[0]
	msg := model.Message{Content: strings.Join(args[1:], " ")}
	verbose, _ := cmd.Flags().GetBool("verbose")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, _, err := loadStage(cmd.Context(), s, chatID)
	if err != nil {
		exitErr("load chat", err)
	}

	before := st.BeforeTurn(msg)
	if _, err := s.SaveTurn(cmd.Context(), store.SaveTurnParams{
		ChatID:  chatID,
		Phase:   store.PhaseBefore,
		State:   before.Turn,
		Message: msg.Content,
	}); err != nil {
		exitErr("save turn", err)
	}
	if err := s.SaveChatState(cmd.Context(), chatID, before.Chat); err != nil {
		exitErr("save chat state", err)
	}
	if before.HasSystemMessage {
		fmt.Println(before.SystemMessage)
	}

	after := st.AfterTurn(msg)
	if _, err := s.SaveTurn(cmd.Context(), store.SaveTurnParams{
		ChatID: chatID,
		Phase:  store.PhaseAfter,
		State:  after.Turn,
	}); err != nil {
		exitErr("save turn", err)
	}
	if err := s.SaveChatState(cmd.Context(), chatID, after.Chat); err != nil {
		exitErr("save chat state", err)
	}

	fmt.Println(after.DisplayText)

	if verbose {
		b, _ := json.MarshalIndent(st.Events(), "", "  ")
		fmt.Println(string(b))
	}
}
