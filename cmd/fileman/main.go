package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okozlov/fileman/internal/cli"
	"github.com/okozlov/fileman/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fileman",
	Short: "Console file manager",
	Long: `An interactive console file manager.

Create, delete, rename and search files and directories through a
numbered menu, or script the same operations with the subcommands
(ls, touch, mkdir, rm, rmdir, mv, find, stat).

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for managing files.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
