package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vandriyan/autosnake/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagServeConfig  string
	flagServePlanner string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the viewer over SSH",
	Long: `Start an SSH server that lets users connect and watch the agent play.

Each SSH connection gets an independent simulation session with its own
random seed. Runs are recorded per-server (all users share the same
history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.autosnake/host_key

Examples:
  autosnake serve                           # Listen on :23234 with auto-generated key
  autosnake serve --ssh :2222               # Listen on port 2222
  autosnake serve --host-key ./my_host_key  # Use specific host key
  autosnake serve --planner greedy          # Drive sessions with the greedy planner

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagServePlanner, "planner", "", "Path planner for served sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	rt, err := loadRuntime(flagServeConfig, flagServePlanner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runtime:     rt,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting autosnake SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
