package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "next <chat-id>",
		Short: "Advance to the next episode",
		Args:  cobra.ExactArgs(1),
		Run:   runNext,
	}

	RootCmd.AddCommand(cmd)
}

func runNext(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, _, err := loadStage(cmd.Context(), s, args[0])
	if err != nil {
		exitErr("load chat", err)
	}

	r := st.Advance()
	if err := persistNav(cmd.Context(), s, args[0], r); err != nil {
		exitErr("save state", err)
	}
	fmt.Println(r.DisplayText)
}
