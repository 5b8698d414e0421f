package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore <chat-id> <seq>",
		Short: "Rewind to a stored turn snapshot",
		Long:  "Conform the chat to the turn snapshot with the given sequence number, as on branch or regenerate.",
		Args:  cobra.ExactArgs(2),
		Run:   runRestore,
	}

	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	seq, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("parse seq", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	turn, err := s.GetTurn(cmd.Context(), args[0], seq)
	if err != nil {
		exitErr("get turn", err)
	}

	st, _, err := loadStage(cmd.Context(), s, args[0])
	if err != nil {
		exitErr("load chat", err)
	}

	st.Restore(turn.State)
	r := st.Snapshot()
	if err := persistNav(cmd.Context(), s, args[0], r); err != nil {
		exitErr("save state", err)
	}
	fmt.Println(r.DisplayText)
}
