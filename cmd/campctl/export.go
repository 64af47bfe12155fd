// Export and seed commands.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"kodevidecamp/internal/models"
)

func newExportCmd(c *cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write both documents as one JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			faqs, err := c.board.FAQs.All(cmd.Context())
			if err != nil {
				return err
			}
			notices, err := c.board.Notices.All(cmd.Context())
			if err != nil {
				return err
			}

			backup := models.Backup{ExportedAt: time.Now(), FAQs: faqs, Notices: notices}
			if output == "" {
				return writeBackup(cmd.OutOrStdout(), backup)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := closeBackup(f, writeBackup(f, backup)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Exported %d FAQs and %d notices to %s", len(faqs), len(notices), output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "backup file (default stdout)")
	return cmd
}

func writeBackup(w io.Writer, backup models.Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// closeBackup closes the backup file and reports the first of the write and
// close errors.
func closeBackup(c io.Closer, writeErr error) error {
	closeErr := c.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("close backup: %w", closeErr)
	}
	return nil
}

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Overwrite both documents with the default FAQs and notices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.board.Seed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Seeded %s store", c.settings.StoreBackend))
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "hash-password <password>",
		Short:       "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipBoard: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
