package cli

import (
	"fmt"

	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/alexanderramin/slotlog/internal/service"
	"github.com/spf13/cobra"
)

func newTagCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(
		newTagListCmd(app),
		newTagAddCmd(app),
		newTagEditCmd(app),
		newTagRemoveCmd(app),
	)

	return cmd
}

func newTagListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tags",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := app.Tags.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTagList(tags))
			return nil
		},
	}
}

func newTagAddCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := app.Tags.Add(cmd.Context(), args[0], color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added tag %s %s\n", formatter.TagLabel(tag.Name, tag.Color), formatter.Dim("("+tag.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Color as #RRGGBB (default: next palette color)")

	return cmd
}

func newTagEditCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Rename or recolor a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTagID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var patch service.TagPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if patch.Name == nil && patch.Color == nil {
				return fmt.Errorf("nothing to change: pass --name or --color")
			}

			tag, err := app.Tags.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated tag %s %s\n", formatter.TagLabel(tag.Name, tag.Color), formatter.Dim("("+tag.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New color as #RRGGBB")

	return cmd
}

func newTagRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a tag with its schedules and assigned slots",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTagID(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Tags.Delete(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed tag %s %s\n", id,
				formatter.Dim(fmt.Sprintf("(%d schedules, %d slots)", res.SchedulesRemoved, res.EntriesRemoved)))
			return nil
		},
	}
}
