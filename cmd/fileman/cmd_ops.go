package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okozlov/fileman/internal/cli"
	"github.com/okozlov/fileman/internal/fsops"
)

var assumeYes bool

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List directory contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}

		status, contents := ctx.Files.List(path)
		if status != fsops.Success {
			return statusError(path, status)
		}
		for _, entry := range contents {
			fmt.Println(entry)
		}
		return nil
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <path>",
	Short: "Create an empty file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}
		if status := ctx.Files.CreateFile(args[0]); status != fsops.Success {
			return statusError(args[0], status)
		}
		ctx.UI.Success("Operation successful")
		return nil
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}
		if status := ctx.Files.CreateDirectory(args[0]); status != fsops.Success {
			return statusError(args[0], status)
		}
		ctx.UI.Success("Operation successful")
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContextWithOptions(assumeYes)
		if err != nil {
			return err
		}

		ok, err := ctx.UI.Confirm(fmt.Sprintf("Delete %s?", args[0]), assumeYes)
		if err != nil {
			return err
		}
		if !ok {
			ctx.UI.Info("Delete cancelled")
			return nil
		}

		if status := ctx.Files.DeleteFile(args[0]); status != fsops.Success {
			return statusError(args[0], status)
		}
		ctx.UI.Success("Operation successful")
		return nil
	},
}

var rmdirCmd = &cobra.Command{
	Use:   "rmdir <path>",
	Short: "Delete a directory and its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContextWithOptions(assumeYes)
		if err != nil {
			return err
		}

		ok, err := ctx.UI.Confirm(fmt.Sprintf("Delete %s and everything in it?", args[0]), assumeYes)
		if err != nil {
			return err
		}
		if !ok {
			ctx.UI.Info("Delete cancelled")
			return nil
		}

		if status := ctx.Files.DeleteDirectory(args[0]); status != fsops.Success {
			return statusError(args[0], status)
		}
		ctx.UI.Success("Operation successful")
		return nil
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <old> <new>",
	Short: "Rename or move a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}
		if status := ctx.Files.Rename(args[0], args[1]); status != fsops.Success {
			return statusError(args[0], status)
		}
		ctx.UI.Success("Operation successful")
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <root> <substring>",
	Short: "Recursively search filenames by substring",
	Long: `Walk root and every subdirectory, printing each entry whose
name contains the given substring (case-sensitive). Entries the
process cannot read are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}

		status, results := ctx.Files.Search(args[0], args[1])
		switch status {
		case fsops.Success:
			for _, match := range results {
				fmt.Println(match)
			}
			return nil
		case fsops.NoMatches:
			ctx.UI.Warning("no files found")
			return nil
		default:
			return statusError(args[0], status)
		}
	},
}

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show metadata for a file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewAppContext()
		if err != nil {
			return err
		}

		status, info := ctx.Files.Stat(args[0])
		if status != fsops.Success {
			return statusError(args[0], status)
		}

		kind := "file"
		if info.IsDir {
			kind = "directory"
		}
		fmt.Printf("Path:     %s\n", info.Path)
		fmt.Printf("Type:     %s\n", kind)
		fmt.Printf("Size:     %d\n", info.Size)
		fmt.Printf("Mode:     %s\n", info.Mode)
		fmt.Printf("Modified: %s\n", info.ModTime.Format("2006-01-02 15:04:05"))
		if info.MIME != "" {
			fmt.Printf("MIME:     %s\n", info.MIME)
		}
		return nil
	},
}

// statusError turns a non-success facade status into a command error,
// which makes the process exit 1
func statusError(path string, status fsops.Status) error {
	return fmt.Errorf("%s: %s (code %d)", path, status, status.Code())
}

func init() {
	rmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	rmdirCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(rmdirCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(statCmd)
}
