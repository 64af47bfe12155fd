// Notice commands: list, add, delete.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/models"
)

func newNoticeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notice",
		Short: "Manage notices",
	}

	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notices, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := c.board.Notices.List(cmd.Context(), search)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listing.Items) == 0 {
				fmt.Fprintln(out, "No notices found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tIMAGES\tDATE")
			for _, n := range listing.Items {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", n.ID, n.Title, len(n.Images), n.Date)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, color.CyanString("%d of %d shown", listing.Visible, listing.Total))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "search title and description")

	var (
		title, description string
		images             []string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a notice with one or more image files",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateNoticeRequest{Title: title, Description: description}
			for _, path := range images {
				img, err := imageFile(path)
				if err != nil {
					return err
				}
				req.Images = append(req.Images, img)
			}

			notice, err := c.board.Notices.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Added notice %d: %s", notice.ID, notice.Title))
			return nil
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "notice title")
	addCmd.Flags().StringVar(&description, "description", "", "notice body")
	addCmd.Flags().StringArrayVar(&images, "image", nil, "image file, repeatable")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := c.board.Notices.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No notice with id %d", id))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Deleted notice %d", id))
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}

func imageFile(path string) (models.NoticeImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.NoticeImage{}, fmt.Errorf("read image: %w", err)
	}
	return catalog.ImageFromUpload(http.DetectContentType(data), filepath.Base(path), data)
}
