package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tags, schedules, slots and settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := a.snapshotUseCase()
			if snapshot == nil {
				return errors.New("snapshot use case is not configured")
			}

			if out == "" || out == "-" {
				_, err := snapshot.Export(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			var buf bytes.Buffer
			counts, err := snapshot.Export(cmd.Context(), &buf)
			if err != nil {
				return err
			}
			if err := writeFileAtomic(out, buf.Bytes()); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s %s\n", out, formatter.Dim(countsSummary(counts)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all data with a YAML export (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := a.snapshotUseCase()
			if snapshot == nil {
				return errors.New("snapshot use case is not configured")
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			counts, err := snapshot.Import(cmd.Context(), r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", countsSummary(counts))
			return nil
		},
	}
}

func countsSummary(c *app.SnapshotCounts) string {
	return fmt.Sprintf("%d tags, %d schedules, %d slots", c.Tags, c.Schedules, c.Entries)
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".slotlog-export-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
