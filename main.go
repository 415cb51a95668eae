// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avltree/avl"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// cliOptions are the persistent flags shared by every command.
type cliOptions struct {
	keys       string
	configPath string
	logLevel   string

	config *Config
}

// setup loads the configuration and applies flag overrides on top of it.
func (o *cliOptions) setup(cmd *cobra.Command) error {
	// config loading logs too, so it gets the default logger first
	bootLog := defaultConfig.Log
	if o.logLevel != "" {
		bootLog.Level = o.logLevel
	}
	setupLogger(cmd.ErrOrStderr(), bootLog)

	config, err := LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.keys != "" {
		config.Keys.Type = o.keys
	}
	if o.logLevel != "" {
		config.Log.Level = o.logLevel
	}
	o.config = config

	setupLogger(cmd.ErrOrStderr(), config.Log)
	return nil
}

func (o *cliOptions) newSession() (Session, error) {
	return NewSession(o.config.Keys.Type, o.config.Membership)
}

// loadSession builds a session and applies the key scripts named in args.
func (o *cliOptions) loadSession(cmd *cobra.Command, args []string, showProgress bool) (Session, error) {
	s, err := o.newSession()
	if err != nil {
		return nil, err
	}
	if err := loadScripts(s, args, showProgress, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return s, nil
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║     ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║        ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║        ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗   ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing search tree with duplicate counts [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	opts := &cliOptions{}
	helpCache := NewHelpCache()

	var order string
	var progress bool

	traversalOrder := func(cmd *cobra.Command) (avl.Order, error) {
		if cmd.Flags().Changed("order") {
			return avl.ParseOrder(order)
		}
		return avl.ParseOrder(opts.config.Traversal.Order)
	}

	var cmdTraverse = &cobra.Command{
		Use:   "traverse FILE...",
		Short: "Apply key scripts and print the traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Traverse prints every key as key(count) in pre, in or post order`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := traversalOrder(cmd)
			if err != nil {
				return err
			}
			showProgress := progress || opts.config.Display.Progress
			s, err := opts.loadSession(cmd, args, showProgress)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range s.Traverse(o) {
				fmt.Fprintf(out, "%s ", entry)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmdTraverse.Flags().StringVar(&order, "order", "", "traversal order: pre, in or post")
	cmdTraverse.Flags().BoolVar(&progress, "progress", false, "draw a progress bar while applying keys")

	var cmdPrint = &cobra.Command{
		Use:   "print FILE...",
		Short: "Apply key scripts and draw the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Print draws the tree sideways, root on the left`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSession(cmd, args, opts.config.Display.Progress)
			if err != nil {
				return err
			}
			if s.Render(cmd.OutOrStdout()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty tree)")
			}
			return nil
		},
	}

	var searchKeys []string
	var cmdSearch = &cobra.Command{
		Use:   "search FILE... --key K",
		Short: "Apply key scripts and look keys up",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Search reports the count of each --key`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(searchKeys) == 0 {
				return fmt.Errorf("search: %w", ErrMissingArgs)
			}
			s, err := opts.loadSession(cmd, args, opts.config.Display.Progress)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, key := range searchKeys {
				count, found, err := s.Search(key)
				if err != nil {
					return err
				}
				if found {
					fmt.Fprintf(out, "%s: %sfound%s, count %d\n", key, Green, Reset, count)
				} else {
					fmt.Fprintf(out, "%s: %snot found%s\n", key, Warning, Reset)
				}
			}
			log.Debug().Int("skipped", s.Stats().Skipped).Msg("searches answered by membership filter")
			return nil
		},
	}
	cmdSearch.Flags().StringArrayVar(&searchKeys, "key", nil, "key to look up (repeatable)")

	var cmdCheck = &cobra.Command{
		Use:   "check FILE...",
		Short: "Apply key scripts and verify the AVL invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check verifies ordering, counts, heights and balance factors`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSession(cmd, args, opts.config.Display.Progress)
			if err != nil {
				return err
			}
			if err := s.Check(); err != nil {
				return fmt.Errorf("check failed: %w", err)
			}
			st := s.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d keys, %d held, height %d (bound %d)\n",
				st.Len, st.Size, st.Height, st.MaxHeight)
			return nil
		},
	}

	runShellCmd := func(cmd *cobra.Command, args []string) error {
		s, err := opts.loadSession(cmd, args, false)
		if err != nil {
			return err
		}
		o, err := avl.ParseOrder(opts.config.Traversal.Order)
		if err != nil {
			return err
		}

		// the alternate screen owns the terminal from here on
		logConfig := opts.config.Log
		setupLogger(io.Discard, logConfig)
		defer setupLogger(cmd.ErrOrStderr(), logConfig)

		return runShell(NewShell(s, o, clipboard.WriteAll), helpCache, opts.config.Display.WordWrap)
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [FILE...]",
		Short: "Open the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens a terminal UI to insert, delete and search keys while watching the tree`),
		Args:  cobra.MinimumNArgs(0),
		RunE:  runShellCmd,
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), opts.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage(helpCache, opts.config.Display.WordWrap))
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		// Default to the shell when no subcommand is provided
		Args:          cobra.MinimumNArgs(0),
		RunE:          runShellCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.keys, "keys", "", "key type: int, float or string")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.avltree.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(cmdTraverse, cmdPrint, cmdSearch, cmdCheck, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("avltree failed")
		os.Exit(1)
	}
}
