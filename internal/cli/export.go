package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <chat-id>",
		Short: "Export a chat's layers and turn history as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	export, err := s.ExportChat(cmd.Context(), args[0])
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(export, "", "  ")
	fmt.Println(string(b))
}
