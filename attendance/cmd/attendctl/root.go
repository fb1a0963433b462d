package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"tapacademy.com/attendance/client"
)

// app carries the session loaded in PersistentPreRunE to every command.
type app struct {
	sessionPath string
	server      string
	session     *client.Session
}

// sessionCommand is a command body that receives the session explicitly.
type sessionCommand func(cmd *cobra.Command, args []string, s *client.Session) error

func (a *app) run(fn sessionCommand) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return fn(cmd, args, a.session)
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".attendctl.json"
	}
	return filepath.Join(home, ".attendctl.json")
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "attendctl",
		Short:         "Check in, check out and review your attendance",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := client.LoadSession(a.sessionPath)
			if err != nil {
				return err
			}
			if a.server != "" {
				s.Server = a.server
			}
			a.session = s
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.session == nil {
				return nil
			}
			if err := a.session.Save(a.sessionPath); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.sessionPath, "session", defaultSessionPath(), "session file")
	root.PersistentFlags().StringVar(&a.server, "server", "", "server URL, remembered in the session")

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		checkinCmd(a),
		checkoutCmd(a),
		todayCmd(a),
		historyCmd(a),
	)
	return root
}
