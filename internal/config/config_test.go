package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Camera.Index != 0 {
		t.Errorf("expected camera index 0, got %d", cfg.Camera.Index)
	}

	if cfg.Detect.WeightsPath != "yolov3-tiny.weights" {
		t.Errorf("unexpected weights path '%s'", cfg.Detect.WeightsPath)
	}

	if cfg.Detect.Confidence != 0.25 {
		t.Errorf("expected confidence 0.25, got %f", cfg.Detect.Confidence)
	}

	if cfg.Faces.Tolerance != 0.6 {
		t.Errorf("expected tolerance 0.6, got %f", cfg.Faces.Tolerance)
	}

	if cfg.Audio.FriendDelay != 0 {
		t.Errorf("expected zero friend delay, got %s", cfg.Audio.FriendDelay)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOORSENTRY_CAMERA_INDEX", "2")
	t.Setenv("DOORSENTRY_CONFIDENCE", "0.5")
	t.Setenv("DOORSENTRY_GALLERY_DIR", "/data/friends")
	t.Setenv("DOORSENTRY_THIEF_DELAY", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Camera.Index != 2 {
		t.Errorf("expected camera index 2, got %d", cfg.Camera.Index)
	}

	if cfg.Detect.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", cfg.Detect.Confidence)
	}

	if cfg.Faces.GalleryDir != "/data/friends" {
		t.Errorf("unexpected gallery dir '%s'", cfg.Faces.GalleryDir)
	}

	if cfg.Audio.ThiefDelay != 2*time.Second {
		t.Errorf("expected thief delay 2s, got %s", cfg.Audio.ThiefDelay)
	}
}

func TestLoad_InvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("DOORSENTRY_CAMERA_INDEX", "camera-one")
	t.Setenv("DOORSENTRY_CONFIDENCE", "-1")
	t.Setenv("DOORSENTRY_FRIEND_DELAY", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Camera.Index != 0 {
		t.Errorf("expected default camera index, got %d", cfg.Camera.Index)
	}

	if cfg.Detect.Confidence != 0.25 {
		t.Errorf("expected default confidence, got %f", cfg.Detect.Confidence)
	}

	if cfg.Audio.FriendDelay != 0 {
		t.Errorf("expected default friend delay, got %s", cfg.Audio.FriendDelay)
	}
}

func TestLoad_EmbeddedTracks(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Audio.Tracks.Background.File != "background.mp3" {
		t.Errorf("unexpected background file '%s'", cfg.Audio.Tracks.Background.File)
	}

	if cfg.Audio.Tracks.Background.Offset != 0 {
		t.Errorf("expected no background offset, got %s", cfg.Audio.Tracks.Background.Offset)
	}

	if cfg.Audio.Tracks.Friend.File != "friend.mp3" {
		t.Errorf("unexpected friend file '%s'", cfg.Audio.Tracks.Friend.File)
	}

	if cfg.Audio.Tracks.Friend.Offset != 27*time.Second {
		t.Errorf("expected friend offset 27s, got %s", cfg.Audio.Tracks.Friend.Offset)
	}
}

func TestLoad_TrackManifestOverride(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "tracks.yaml")
	content := `background:
  file: lobby.mp3
friend:
  file: hello.mp3
  offset: 1500ms
delivery:
  file: package.mp3
thief:
  file: alarm.mp3
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	t.Setenv("DOORSENTRY_TRACKS", manifest)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Audio.Tracks.Background.File != "lobby.mp3" {
		t.Errorf("unexpected background file '%s'", cfg.Audio.Tracks.Background.File)
	}

	if cfg.Audio.Tracks.Friend.Offset != 1500*time.Millisecond {
		t.Errorf("expected friend offset 1.5s, got %s", cfg.Audio.Tracks.Friend.Offset)
	}
}

func TestLoad_MissingTrackManifestFails(t *testing.T) {
	t.Setenv("DOORSENTRY_TRACKS", "/does/not/exist.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing track manifest")
	}
}

func TestLoad_BadTrackOffsetFails(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "tracks.yaml")
	content := `background:
  file: lobby.mp3
  offset: later
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	t.Setenv("DOORSENTRY_TRACKS", manifest)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid track offset")
	}
}
