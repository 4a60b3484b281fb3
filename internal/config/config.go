package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tracks.yaml
var tracksYAML []byte

type Config struct {
	Camera CameraConfig
	Detect DetectConfig
	Faces  FacesConfig
	Audio  AudioConfig
}

type CameraConfig struct {
	Index int // camera device index (default 0)
}

type DetectConfig struct {
	WeightsPath string  // darknet weights file
	ConfigPath  string  // darknet network config file
	Confidence  float64 // minimum detection confidence (default 0.25)
}

type FacesConfig struct {
	GalleryDir string  // directory with reference photos of known people
	ModelDir   string  // directory with the dlib model files
	Tolerance  float64 // maximum descriptor distance for a match (default 0.6)
}

type AudioConfig struct {
	SoundsDir string
	Tracks    TracksConfig
	// Per-category delay before the one-shot track fires.
	FriendDelay   time.Duration
	DeliveryDelay time.Duration
	ThiefDelay    time.Duration
}

// TracksConfig names the sound file for each logical track. Files are
// relative to SoundsDir.
type TracksConfig struct {
	Background TrackConfig `yaml:"background"`
	Friend     TrackConfig `yaml:"friend"`
	Delivery   TrackConfig `yaml:"delivery"`
	Thief      TrackConfig `yaml:"thief"`
}

type TrackConfig struct {
	File   string
	Offset time.Duration // where within the file playback starts
}

// UnmarshalYAML parses the offset from a human-readable duration ("27s").
func (t *TrackConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		File   string `yaml:"file"`
		Offset string `yaml:"offset"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	t.File = raw.File
	t.Offset = 0
	if raw.Offset != "" {
		d, err := time.ParseDuration(raw.Offset)
		if err != nil {
			return fmt.Errorf("invalid offset for track file %s: %w", raw.File, err)
		}
		t.Offset = d
	}
	return nil
}

// envInt reads an environment variable and parses it as a non-negative
// integer. Returns the default value if the env var is unset, empty, or
// invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns the default value if the env var is unset, empty, or invalid.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

// envDuration reads an environment variable and parses it as a non-negative
// duration ("2s", "500ms"). Returns the default value if the env var is
// unset, empty, or invalid.
func envDuration(key string, defaultVal time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return d
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() (*Config, error) {
	tracks, err := loadTracks()
	if err != nil {
		return nil, err
	}

	return &Config{
		Camera: CameraConfig{
			Index: envInt("DOORSENTRY_CAMERA_INDEX", 0),
		},
		Detect: DetectConfig{
			WeightsPath: envString("DOORSENTRY_YOLO_WEIGHTS", "yolov3-tiny.weights"),
			ConfigPath:  envString("DOORSENTRY_YOLO_CONFIG", "yolov3-tiny.cfg"),
			Confidence:  envFloat("DOORSENTRY_CONFIDENCE", 0.25),
		},
		Faces: FacesConfig{
			GalleryDir: envString("DOORSENTRY_GALLERY_DIR", "friends"),
			ModelDir:   envString("DOORSENTRY_FACE_MODELS", "models"),
			Tolerance:  envFloat("DOORSENTRY_MATCH_TOLERANCE", 0.6),
		},
		Audio: AudioConfig{
			SoundsDir:     envString("DOORSENTRY_SOUNDS_DIR", "sounds"),
			Tracks:        tracks,
			FriendDelay:   envDuration("DOORSENTRY_FRIEND_DELAY", 0),
			DeliveryDelay: envDuration("DOORSENTRY_DELIVERY_DELAY", 0),
			ThiefDelay:    envDuration("DOORSENTRY_THIEF_DELAY", 0),
		},
	}, nil
}

// loadTracks returns the track manifest: the embedded default, or the file
// named by DOORSENTRY_TRACKS when set.
func loadTracks() (TracksConfig, error) {
	var tracks TracksConfig

	if path := os.Getenv("DOORSENTRY_TRACKS"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return tracks, fmt.Errorf("failed to read track manifest %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &tracks); err != nil {
			return tracks, fmt.Errorf("failed to parse track manifest %s: %w", path, err)
		}
		return tracks, nil
	}

	if err := yaml.Unmarshal(tracksYAML, &tracks); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded tracks.yaml: " + err.Error())
	}
	return tracks, nil
}
