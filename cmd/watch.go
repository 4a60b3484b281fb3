package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"github.com/kozaktomas/door-sentry/internal/audio"
	"github.com/kozaktomas/door-sentry/internal/classify"
	"github.com/kozaktomas/door-sentry/internal/config"
	"github.com/kozaktomas/door-sentry/internal/detect"
	"github.com/kozaktomas/door-sentry/internal/facematch"
	"github.com/kozaktomas/door-sentry/internal/gallery"
	"github.com/kozaktomas/door-sentry/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the camera and announce visitors",
	Long: `Watch opens the camera, runs object detection and face recognition on
every frame and plays a sound for each visitor category. The preview
window shows the current classification; press ESC to quit.

Examples:
  # Watch the default camera
  door-sentry watch

  # Use the second camera device
  door-sentry watch --camera 1`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Int("camera", -1, "Camera device index (overrides DOORSENTRY_CAMERA_INDEX)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if idx := mustGetInt(cmd, "camera"); idx >= 0 {
		cfg.Camera.Index = idx
	}

	fmt.Println("Loading face recognition models...")
	matcher, err := facematch.New(cfg.Faces.ModelDir, cfg.Faces.Tolerance)
	if err != nil {
		return fmt.Errorf("failed to initialize face recognition: %w", err)
	}
	defer matcher.Close()

	gal, err := gallery.Load(matcher.Recognizer(), cfg.Faces.GalleryDir)
	if err != nil {
		return fmt.Errorf("failed to load reference faces: %w", err)
	}
	for _, file := range gal.Skipped {
		log.Printf("no face found in %s, skipping", file)
	}
	if len(gal.Entries) == 0 {
		log.Printf("no reference faces loaded, every visitor will be a stranger")
	}
	matcher.SetGallery(gal.Descriptors())

	fmt.Println("Loading detection network...")
	detector, err := detect.NewYOLO(cfg.Detect.WeightsPath, cfg.Detect.ConfigPath, cfg.Detect.Confidence)
	if err != nil {
		return fmt.Errorf("failed to load detection network: %w", err)
	}
	defer detector.Close()

	player, err := audio.NewBeep(cfg.Audio.SoundsDir, trackSources(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}
	defer player.Close()

	controller := audio.NewController(player, categoryDelays(cfg), nil)

	camera, err := gocv.OpenVideoCapture(cfg.Camera.Index)
	if err != nil {
		return fmt.Errorf("failed to open camera %d: %w", cfg.Camera.Index, err)
	}
	defer camera.Close()

	window := gocv.NewWindow("door-sentry")
	defer window.Close()

	log.Printf("watching camera %d", cfg.Camera.Index)
	w := watcher.New(camera, window, detector, classify.NewClassifier(matcher), controller, nil)
	return w.Run()
}

func trackSources(cfg *config.Config) map[audio.Track]audio.TrackSource {
	t := cfg.Audio.Tracks
	return map[audio.Track]audio.TrackSource{
		audio.TrackBackground: {File: t.Background.File, Offset: t.Background.Offset},
		audio.TrackFriend:     {File: t.Friend.File, Offset: t.Friend.Offset},
		audio.TrackDelivery:   {File: t.Delivery.File, Offset: t.Delivery.Offset},
		audio.TrackThief:      {File: t.Thief.File, Offset: t.Thief.Offset},
	}
}

func categoryDelays(cfg *config.Config) [classify.NumCategories]time.Duration {
	var d [classify.NumCategories]time.Duration
	d[classify.Friend] = cfg.Audio.FriendDelay
	d[classify.Delivery] = cfg.Audio.DeliveryDelay
	d[classify.Thief] = cfg.Audio.ThiefDelay
	return d
}
