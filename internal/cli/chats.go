package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List chats",
		Run:   runChats,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max chats to list")

	RootCmd.AddCommand(cmd)
}

func runChats(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	chats, err := s.ListChats(cmd.Context(), limit)
	if err != nil {
		exitErr("list chats", err)
	}

	b, _ := json.MarshalIndent(chats, "", "  ")
	fmt.Println(string(b))
}
