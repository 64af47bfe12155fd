// FAQ commands: list, add, delete, feedback.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kodevidecamp/internal/models"
)

func newFAQCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Manage FAQs",
	}

	var search, category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List FAQs, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := c.board.FAQs.List(cmd.Context(), search, category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listing.Items) == 0 {
				fmt.Fprintln(out, "No FAQs found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tPRIORITY\tQUESTION\tHELPFUL\tDATE")
			for _, f := range listing.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t+%d/-%d\t%s\n",
					f.ID, f.Category, f.Priority, f.Question, f.Helpful.Yes, f.Helpful.No, f.Date)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, color.CyanString("%d of %d shown", listing.Visible, listing.Total))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "search question, answer and tags")
	listCmd.Flags().StringVarP(&category, "category", "c", models.CategoryAll, "category filter")

	var req models.CreateFAQRequest
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an FAQ at the top of the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			faq, err := c.board.FAQs.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Added FAQ %d: %s", faq.ID, faq.Question))
			return nil
		},
	}
	addCmd.Flags().StringVar(&req.Category, "category", "", "one of "+strings.Join(models.Categories, ", "))
	addCmd.Flags().StringVar(&req.Priority, "priority", models.PriorityNormal, "one of "+strings.Join(models.Priorities, ", "))
	addCmd.Flags().StringVar(&req.Question, "question", "", "question text")
	addCmd.Flags().StringVar(&req.Answer, "answer", "", "answer text")
	addCmd.Flags().StringVar(&req.Tags, "tags", "", "comma separated tags")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an FAQ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := c.board.FAQs.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No FAQ with id %d", id))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Deleted FAQ %d", id))
			return nil
		},
	}

	var notHelpful bool
	feedbackCmd := &cobra.Command{
		Use:   "feedback <id>",
		Short: "Record a helpful vote (--no for not helpful)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			faq, updated, err := c.board.FAQs.MarkFeedback(cmd.Context(), id, !notHelpful)
			if err != nil {
				return err
			}
			if !updated {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No FAQ with id %d", id))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("FAQ %d: +%d/-%d", faq.ID, faq.Helpful.Yes, faq.Helpful.No))
			return nil
		},
	}
	feedbackCmd.Flags().BoolVar(&notHelpful, "no", false, "vote not helpful")

	cmd.AddCommand(listCmd, addCmd, deleteCmd, feedbackCmd)
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
