package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/files"
)

func FilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files PATH...",
		Short: "Show what would be sent as code context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploads, closeAll, err := openUploads(args)
			if err != nil {
				return err
			}
			defer closeAll()

			agg := files.AggregateUploads(uploads)
			printFailures(cmd.ErrOrStderr(), agg.Failures)

			s := files.Stats(agg.Records)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "files: %d  characters: %d  types: %d\n", s.Files, s.TotalChars, s.Types)
			for _, g := range s.ByType {
				fmt.Fprintf(out, "  .%s (%d)\n", g.Type, g.Count)
				for _, name := range g.Files {
					fmt.Fprintf(out, "    %s\n", name)
				}
			}
			return nil
		},
	}
}

// openUploads opens local paths the way the server receives uploads. Paths
// with an extension outside files.AllowedExtensions are rejected up front.
func openUploads(paths []string) ([]files.Upload, func(), error) {
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			f.Close() //nolint:errcheck,gosec // read-only
		}
	}

	uploads := make([]files.Upload, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		if !files.IsAllowed(name) {
			closeAll()
			return nil, func() {}, fmt.Errorf("file type not accepted: %s", p)
		}

		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", p, err)
		}
		opened = append(opened, f)
		uploads = append(uploads, files.Upload{Name: name, Stream: f})
	}

	return uploads, closeAll, nil
}

func printFailures(w io.Writer, failures []files.Failure) {
	for _, f := range failures {
		fmt.Fprintf(w, "warning: %v\n", f)
	}
}
