package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chubflix/episode-stage/internal/config"
	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/stage"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new [character.json]",
		Short: "Create a chat for a character card",
		Long:  "Create a chat. The character card can be a file path or piped via stdin.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runNew,
	}

	RootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) {
	var raw []byte
	var err error
	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			exitErr("read character card", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
	}

	var character model.Character
	if err := json.Unmarshal(raw, &character); err != nil {
		exitErr("parse character card", err)
	}

	st := stage.New(character, config.StageConfig())
	load := st.Load()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	chat, err := s.CreateChat(cmd.Context(), character, load.Init)
	if err != nil {
		exitErr("create chat", err)
	}
	if err := s.SaveChatState(cmd.Context(), chat.ID, load.Chat); err != nil {
		exitErr("save chat state", err)
	}

	b, _ := json.MarshalIndent(chat, "", "  ")
	fmt.Println(string(b))
}
