package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paranoid/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so the game can be played remotely. Each
connection gets its own menu, game, and scoreboard; scores land in the
shared high-score table.

Examples:
  paranoid serve
  paranoid serve --ssh :2222
  paranoid serve --ssh :2222 --host-key ./host_key

Connect with:
  ssh -p 23234 localhost`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddress
		cfg.HostKeyPath = flagHostKey
		cfg.DBPath = flagDBPath
		cfg.ScoresPath = flagScoresPath
		cfg.IdleTimeout = flagIdleTimeout

		server, err := tui.NewSSHServer(cfg)
		if err != nil {
			return err
		}

		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}
