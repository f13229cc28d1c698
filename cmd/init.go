package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold the current directory as a project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		name := filepath.Base(dir)
		if len(args) == 1 {
			name = args[0]
		}
		if err := scaffold(dir, name); err != nil {
			return err
		}
		fmt.Println("Initialized project in", dir)
		return nil
	},
}
