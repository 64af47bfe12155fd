// Root command, global flags and board connection for campctl.

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kodevidecamp/internal/board"
	"kodevidecamp/internal/config"
)

var errMemoryBackend = errors.New("the memory backend keeps nothing after campctl exits; set STORE_BACKEND or pass --backend")

// skipBoard marks commands that run without opening the store.
const skipBoard = "skip-board"

type cli struct {
	backend  string
	dsn      string
	seedFile string
	verbose  bool

	settings config.Settings
	board    *board.Board
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "campctl",
		Short: "Manage the KodeVideCamp FAQ and notice board",
		Long: `campctl works directly on the store the board server uses.

Connection settings come from the environment (.env is read if present);
--backend and --dsn override STORE_BACKEND and DB_DSN. The in-process
memory backend is refused since nothing would outlive the command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.board != nil {
				return c.board.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.backend, "backend", "", "store backend: redis, mysql, postgres, sqlite")
	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "database DSN for sql backends")
	root.PersistentFlags().StringVar(&c.seedFile, "seed-file", "", "YAML file with default FAQs and notices")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log store activity to stderr")

	root.AddCommand(
		newFAQCmd(c),
		newNoticeCmd(c),
		newExportCmd(c),
		newSeedCmd(c),
		newHashPasswordCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) error {
	if cmd.Annotations[skipBoard] == "true" {
		return nil
	}

	config.LoadEnv()
	c.settings = config.Load()
	if c.backend != "" {
		c.settings.StoreBackend = c.backend
	}
	if c.dsn != "" {
		c.settings.DBDSN = c.dsn
	}
	if c.seedFile != "" {
		c.settings.SeedFile = c.seedFile
	}
	if c.settings.StoreBackend == "" || c.settings.StoreBackend == "memory" {
		return errMemoryBackend
	}

	log := zap.NewNop()
	if c.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log = l
	}

	b, err := board.Open(cmd.Context(), c.settings, log, nil)
	if err != nil {
		return err
	}
	c.board = b
	return nil
}
