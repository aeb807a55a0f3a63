package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hmseo/gungwol/internal/config"
	"github.com/hmseo/gungwol/internal/logger"
	"github.com/hmseo/gungwol/pkg/game"
)

// Built-in walkthroughs. Any other argument is read as a script file
// with one command per line.
var walkthroughs = map[string][]string{
	"victory": {
		"north", "take binyeo", "east", "take scroll", "use scroll",
		"west", "use binyeo", "north", "east", "take incense",
		"north", "use incense",
	},
	"banishment": {
		"north", "take binyeo", "east", "west", "use binyeo",
		"north", "east", "north",
	},
}

// stdoutHost prints the transcript directly.
type stdoutHost struct {
	ended bool
}

func (h *stdoutHost) Write(line string) { fmt.Println(line) }

func (h *stdoutHost) EndGame() { h.ended = true }

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <victory|banishment|script-file>\n", os.Args[0])
		os.Exit(1)
	}

	script, err := loadScript(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load script: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(config.Load(), os.Stderr)

	host := &stdoutHost{}
	ctrl := game.NewController(host, log)
	ctrl.Begin()

	for i, command := range script {
		if host.ended {
			fmt.Fprintf(os.Stderr, "Script has %d unused commands after the ending\n", len(script)-i)
			break
		}
		fmt.Printf("\n> %s\n", command)
		ctrl.Handle(command)
	}

	fmt.Println()
	dump, err := json.MarshalIndent(ctrl.State(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to dump game state: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(dump))

	if !host.ended {
		fmt.Fprintln(os.Stderr, "Script finished without reaching an ending")
		os.Exit(1)
	}
}

func loadScript(name string) ([]string, error) {
	if script, ok := walkthroughs[name]; ok {
		return script, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var script []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		script = append(script, line)
	}
	return script, nil
}
