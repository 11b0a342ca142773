package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/okozlov/fileman/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage preferences",
	Long: `Manage fileman preferences stored in ~/.fileman.conf.

Known keys:
  START_DIR            default directory offered by list/search prompts
  COLOR_OUTPUT         colored console output (true/false)
  CONFIRM_DESTRUCTIVE  confirm before deletes, clear and exit (true/false)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a preference value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		fmt.Println(cfg.GetOrDefault(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !config.IsKnownKey(key) {
			return fmt.Errorf("unknown preference key: %s", key)
		}

		cfg := config.New("")
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a preference, reverting to its default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		if err := cfg.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to remove preference: %w", err)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every preference, including defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		stored := cfg.GetAll()

		keys := make([]string, 0, len(config.Defaults))
		for key := range config.Defaults {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			value, explicit := stored[key]
			if !explicit {
				value = config.Defaults[key]
			}
			marker := ""
			if !explicit {
				marker = " (default)"
			}
			fmt.Printf("%s=%s%s\n", key, value, marker)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.New("").FilePath())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
