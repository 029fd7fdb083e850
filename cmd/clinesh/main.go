package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/cline-tools/cline/internal/config"
	"github.com/cline-tools/cline/internal/log"
	"github.com/cline-tools/cline/internal/shell"
	"github.com/cline-tools/cline/internal/shell/style"
	"github.com/cline-tools/cline/internal/tasks"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := extractFlags(args)

	if flags["--help"] || flags["-h"] {
		printUsage()
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("clinesh requires an interactive terminal")
	}

	home, err := stateDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Join(home, "config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := log.Init(filepath.Join(home, "shell.log"), log.ParseLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	style.Init(cfg.Color && !flags["--no-color"])

	store, err := tasks.New(filepath.Join(home, "tasks.db"))
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = store.Close() }()

	var out bytes.Buffer
	dispatcher, err := shell.BuildDispatcher(store, &out, cfg.StrictCommands)
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	log.Info("clinesh: starting interactive session")
	return shell.Run(dispatcher, &out, cfg.Prompt)
}

func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".clinesh")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create state directory: %w", err)
	}
	return dir, nil
}

func extractFlags(args []string) map[string]bool {
	flags := make(map[string]bool)
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags[a] = true
		}
	}
	return flags
}

func printUsage() {
	fmt.Println("usage: clinesh [flags]")
	fmt.Println()
	fmt.Println("An interactive shell demonstrating the cline library:")
	fmt.Println("Tab completes registered commands, Enter executes them.")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --no-color   disable styled output")
	fmt.Println("  --help, -h   show this help")
	fmt.Println()
	fmt.Println("Configuration is read from ~/.clinesh/config (key=value).")
}
