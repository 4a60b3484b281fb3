package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Kagami/go-face"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/door-sentry/internal/config"
	"github.com/kozaktomas/door-sentry/internal/facematch"
	"github.com/kozaktomas/door-sentry/internal/gallery"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Inspect the reference face gallery",
	Long: `Gallery encodes every photo in the reference directory and prints the
result: which files produced a usable face and how close each face is to
its nearest neighbour in the gallery. Distances well above the match
tolerance mean the photos describe clearly distinct people.`,
	RunE: runGallery,
}

func init() {
	rootCmd.AddCommand(galleryCmd)

	galleryCmd.Flags().Float64("tolerance", 0, "Match tolerance to compare distances against (overrides DOORSENTRY_MATCH_TOLERANCE)")
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if tol := mustGetFloat64(cmd, "tolerance"); tol > 0 {
		cfg.Faces.Tolerance = tol
	}

	matcher, err := facematch.New(cfg.Faces.ModelDir, cfg.Faces.Tolerance)
	if err != nil {
		return fmt.Errorf("failed to initialize face recognition: %w", err)
	}
	defer matcher.Close()

	gal, err := gallery.Load(matcher.Recognizer(), cfg.Faces.GalleryDir)
	if err != nil {
		return fmt.Errorf("failed to load reference faces: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tNEAREST\tDISTANCE")

	descs := gal.Descriptors()
	for i, entry := range gal.Entries {
		nearest := "-"
		distance := "-"
		others := make([]face.Descriptor, 0, len(descs)-1)
		others = append(others, descs[:i]...)
		others = append(others, descs[i+1:]...)
		if idx, dist := facematch.BestMatch(others, entry.Descriptor); idx >= 0 {
			if idx >= i {
				idx++ // account for the excluded entry
			}
			nearest = gal.Entries[idx].File
			distance = fmt.Sprintf("%.3f", dist)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.File, nearest, distance)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, file := range gal.Skipped {
		fmt.Printf("skipped %s: no face found\n", file)
	}
	fmt.Printf("%d reference faces loaded from %s (tolerance %.2f)\n", len(gal.Entries), cfg.Faces.GalleryDir, cfg.Faces.Tolerance)
	return nil
}
