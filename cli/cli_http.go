package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"todolist/models"

	"github.com/chzyer/readline"
)

// CLIHttp is the interactive terminal client
type CLIHttp struct {
	rl      *readline.Instance
	running bool
	client  *Client
	out     io.Writer
}

// NewCLIHttp creates a new HTTP client CLI instance
func NewCLIHttp(serverURL string) (*CLIHttp, error) {
	client := NewClient(serverURL)

	// Test connectivity
	if err := client.HealthCheck(); err != nil {
		return nil, fmt.Errorf("cannot connect to server: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "todo> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &CLIHttp{
		rl:      rl,
		running: true,
		client:  client,
		out:     os.Stdout,
	}, nil
}

// Start runs the CLI loop
func (c *CLIHttp) Start() {
	defer c.rl.Close()
	c.printWelcome()

	for c.running {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintln(c.out, "\nCtrl+C detected. Use 'exit' or 'quit' to leave.")
				continue
			}
			// EOF or other error; exit
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		c.handleCommand(input)
	}
}

func (c *CLIHttp) printWelcome() {
	PrintBanner(c.out, "To-Do list - CLI Mode")
	fmt.Fprintf(c.out, "\nConnected to: %s\n", c.client.baseURL)
	fmt.Fprintln(c.out, "Type 'help' for available commands")
}

// handleCommand routes user commands. Everything after "add " is the item text, spaces included.
func (c *CLIHttp) handleCommand(input string) {
	cmd, rest, _ := strings.Cut(input, " ")

	switch strings.ToLower(cmd) {
	case "help", "h", "?":
		c.showHelp()
	case "list", "ls":
		c.listItems()
	case "add":
		c.addItem(rest)
	case "status", "st":
		c.showStatus()
	case "clear":
		fmt.Fprint(c.out, "\033[H\033[2J")
	case "exit", "quit", "q":
		fmt.Fprintln(c.out, "Goodbye!")
		c.running = false
	default:
		fmt.Fprintf(c.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
}

func (c *CLIHttp) showHelp() {
	fmt.Fprintln(c.out)
	PrintBanner(c.out, "Available Commands")
	fmt.Fprintln(c.out)

	commands := [][]string{
		{"help, h, ?", "Show this help message"},
		{"list, ls", "Show the to-do list"},
		{"add <text>", "Add an item to the list"},
		{"status, st", "Show server health"},
		{"clear", "Clear screen"},
		{"exit, quit, q", "Exit the program"},
	}

	for _, cmd := range commands {
		fmt.Fprintf(c.out, "  %-20s %s\n", cmd[0], cmd[1])
	}
}

func (c *CLIHttp) listItems() {
	items, err := c.client.ListItems()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if len(items) == 0 {
		fmt.Fprintln(c.out, "Your to-do list is empty.")
		return
	}

	for _, row := range models.Rows(items) {
		fmt.Fprintln(c.out, row.String())
	}
}

func (c *CLIHttp) addItem(text string) {
	id, err := c.client.CreateItem(text)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Added item #%d\n", id)
}

func (c *CLIHttp) showStatus() {
	health, err := c.client.Health()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Status:   %v\n", health["status"])
	fmt.Fprintf(c.out, "Database: %v\n", health["db_healthy"])
	fmt.Fprintf(c.out, "Items:    %v\n", health["items"])
	fmt.Fprintf(c.out, "Version:  %v\n", health["version"])
}
