package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "prev <chat-id>",
		Short: "Go back to the previous episode",
		Args:  cobra.ExactArgs(1),
		Run:   runPrev,
	}

	RootCmd.AddCommand(cmd)
}

func runPrev(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, _, err := loadStage(cmd.Context(), s, args[0])
	if err != nil {
		exitErr("load chat", err)
	}

	r := st.Retreat()
	if err := persistNav(cmd.Context(), s, args[0], r); err != nil {
		exitErr("save state", err)
	}
	fmt.Println(r.DisplayText)
}
