package cli

import (
	"fmt"
	"strconv"

	"github.com/okozlov/fileman/internal/config"
	"github.com/okozlov/fileman/internal/fsops"
)

// Menu command selectors as shown on screen
const (
	cmdCreateFile = iota + 1
	cmdDeleteFile
	cmdCreateDirectory
	cmdDeleteDirectory
	cmdList
	cmdRename
	cmdSearch
	cmdClear
	cmdExit
)

// Menu provides the interactive menu interface
type Menu struct {
	ctx *AppContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *AppContext) *Menu {
	return &Menu{ctx: ctx}
}

// clearScreen clears the terminal using ANSI escape codes, which is
// more portable than shelling out to 'clear'
func clearScreen() {
	// \033[2J clears the screen, \033[H moves the cursor home
	fmt.Print("\033[2J\033[H")
}

// Show runs the menu loop until the user confirms the exit command.
// A failed operation never ends the session; only an input-stream
// error (closed terminal, interrupt) propagates out.
func (m *Menu) Show() error {
	for {
		m.displayMenu()

		choice, err := m.ctx.UI.Input("Enter command", "")
		if err != nil {
			return err
		}

		cmd, err := parseCommand(choice)
		if err != nil {
			m.ctx.UI.Error("Unknown command. Please try again.")
			continue
		}

		if cmd == cmdExit {
			ok, err := m.confirmDestructive("Are you sure you want to exit?")
			if err != nil {
				return err
			}
			if ok {
				m.ctx.UI.Print("Goodbye!")
				return nil
			}
			continue
		}

		if err := m.dispatch(cmd); err != nil {
			return err
		}
	}
}

// displayMenu renders the command menu
func (m *Menu) displayMenu() {
	m.ctx.UI.Header("File Manager")
	m.ctx.UI.MenuEntry(cmdCreateFile, "Create File")
	m.ctx.UI.MenuEntry(cmdDeleteFile, "Delete File")
	m.ctx.UI.MenuEntry(cmdCreateDirectory, "Create Directory")
	m.ctx.UI.MenuEntry(cmdDeleteDirectory, "Delete Directory")
	m.ctx.UI.MenuEntry(cmdList, "List Directory Contents")
	m.ctx.UI.MenuEntry(cmdRename, "Rename File/Directory")
	m.ctx.UI.MenuEntry(cmdSearch, "Search Files")
	m.ctx.UI.MenuEntry(cmdClear, "Clear Console")
	m.ctx.UI.MenuEntry(cmdExit, "Exit")
	m.ctx.UI.Print("")
}

// parseCommand parses user input as an integer command selector
func parseCommand(input string) (int, error) {
	return strconv.Atoi(input)
}

// dispatch runs a single non-exit command. The returned error is only
// ever an input-stream failure from a prompt.
func (m *Menu) dispatch(cmd int) error {
	switch cmd {
	case cmdCreateFile:
		return m.createFile()
	case cmdDeleteFile:
		return m.deleteFile()
	case cmdCreateDirectory:
		return m.createDirectory()
	case cmdDeleteDirectory:
		return m.deleteDirectory()
	case cmdList:
		return m.listDirectory()
	case cmdRename:
		return m.renameItem()
	case cmdSearch:
		return m.searchFiles()
	case cmdClear:
		return m.clearConsole()
	default:
		m.ctx.UI.Error("Unknown command. Please try again.")
		return nil
	}
}

// confirmDestructive asks for a y/n confirmation defaulting to no.
// The prompt is skipped entirely when the CONFIRM_DESTRUCTIVE
// preference is disabled.
func (m *Menu) confirmDestructive(prompt string) (bool, error) {
	if !m.ctx.Config.GetBool(config.KeyConfirmDestructive) {
		return true, nil
	}
	return m.ctx.UI.Confirm(prompt, false)
}

// statusMessage translates a facade status into the line shown to the user
func statusMessage(status fsops.Status) string {
	switch status {
	case fsops.Success:
		return "Operation successful"
	case fsops.NoMatches:
		return "no files found"
	case fsops.InvalidRequest:
		return "invalid path or resource already exists"
	case fsops.NotFound:
		return "not found"
	case fsops.InternalError:
		return "system error"
	default:
		return "unknown status"
	}
}

// reportStatus prints the outcome of a facade operation
func (m *Menu) reportStatus(status fsops.Status) {
	msg := statusMessage(status)
	switch status {
	case fsops.Success:
		m.ctx.UI.Success(msg)
	case fsops.NoMatches:
		m.ctx.UI.Warning(msg)
	default:
		m.ctx.UI.Error(msg)
	}
}

func (m *Menu) createFile() error {
	path, err := m.ctx.UI.Input("Enter file path", "")
	if err != nil {
		return err
	}
	m.reportStatus(m.ctx.Files.CreateFile(path))
	return nil
}

func (m *Menu) deleteFile() error {
	path, err := m.ctx.UI.Input("Enter file path", "")
	if err != nil {
		return err
	}

	ok, err := m.confirmDestructive("Are you sure you want to delete this file?")
	if err != nil {
		return err
	}
	if !ok {
		m.ctx.UI.Info("Delete cancelled")
		return nil
	}

	m.reportStatus(m.ctx.Files.DeleteFile(path))
	return nil
}

func (m *Menu) createDirectory() error {
	path, err := m.ctx.UI.Input("Enter directory path", "")
	if err != nil {
		return err
	}
	m.reportStatus(m.ctx.Files.CreateDirectory(path))
	return nil
}

func (m *Menu) deleteDirectory() error {
	path, err := m.ctx.UI.Input("Enter directory path", "")
	if err != nil {
		return err
	}

	ok, err := m.confirmDestructive("Delete this directory and everything in it?")
	if err != nil {
		return err
	}
	if !ok {
		m.ctx.UI.Info("Delete cancelled")
		return nil
	}

	m.reportStatus(m.ctx.Files.DeleteDirectory(path))
	return nil
}

func (m *Menu) listDirectory() error {
	path, err := m.ctx.UI.Input("Enter directory path", m.startDir())
	if err != nil {
		return err
	}

	status, contents := m.ctx.Files.List(path)
	if status == fsops.Success {
		m.ctx.UI.Print("")
		for _, entry := range contents {
			m.ctx.UI.Item(entry)
		}
		m.ctx.UI.Printf("\n%d entries", len(contents))
	}
	m.reportStatus(status)
	return nil
}

func (m *Menu) renameItem() error {
	oldPath, err := m.ctx.UI.Input("Enter current path", "")
	if err != nil {
		return err
	}
	newPath, err := m.ctx.UI.Input("Enter new path", "")
	if err != nil {
		return err
	}
	m.reportStatus(m.ctx.Files.Rename(oldPath, newPath))
	return nil
}

func (m *Menu) searchFiles() error {
	path, err := m.ctx.UI.Input("Enter directory path", m.startDir())
	if err != nil {
		return err
	}
	substring, err := m.ctx.UI.Input("Enter filename substring", "")
	if err != nil {
		return err
	}

	status, results := m.ctx.Files.Search(path, substring)
	if status == fsops.Success {
		m.ctx.UI.Print("")
		for _, match := range results {
			m.ctx.UI.Item(match)
		}
		m.ctx.UI.Printf("\n%d matches", len(results))
	}
	m.reportStatus(status)
	return nil
}

func (m *Menu) clearConsole() error {
	ok, err := m.confirmDestructive("Clear the console?")
	if err != nil {
		return err
	}
	if ok {
		clearScreen()
	}
	return nil
}

// startDir returns the configured default directory for path prompts
func (m *Menu) startDir() string {
	return m.ctx.Config.GetOrDefault(config.KeyStartDir, ".")
}
