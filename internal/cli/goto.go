package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "goto <chat-id> <index>",
		Short: "Jump directly to an episode index",
		Long:  "Jump to a 0-based episode index. The index is stored as given, without bounds checking.",
		Args:  cobra.ExactArgs(2),
		Run:   runGoto,
	}

	RootCmd.AddCommand(cmd)
}

func runGoto(cmd *cobra.Command, args []string) {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("parse index", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, _, err := loadStage(cmd.Context(), s, args[0])
	if err != nil {
		exitErr("load chat", err)
	}

	r := st.Jump(index)
	if err := persistNav(cmd.Context(), s, args[0], r); err != nil {
		exitErr("save state", err)
	}
	fmt.Println(r.DisplayText)
}
