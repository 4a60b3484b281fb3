package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// mixerRate is the fixed speaker sample rate; tracks with other rates are
// resampled on the fly.
const mixerRate beep.SampleRate = 44100

// TrackSource describes where a logical track comes from and where within
// the file playback should start.
type TrackSource struct {
	File   string
	Offset time.Duration
}

// Beep plays mp3 files through the system speaker. Each Play decodes the
// file from scratch, mirroring a load-then-play mixer model.
type Beep struct {
	sources [NumTracks]TrackSource

	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	playing atomic.Bool
}

// NewBeep verifies that every configured track file exists and initializes
// the speaker. A missing sound file is a startup error.
func NewBeep(dir string, sources map[Track]TrackSource) (*Beep, error) {
	p := &Beep{}
	for t := TrackBackground; t < Track(NumTracks); t++ {
		src, ok := sources[t]
		if !ok || src.File == "" {
			return nil, fmt.Errorf("no sound file configured for track %s", t)
		}
		src.File = filepath.Join(dir, src.File)
		if _, err := os.Stat(src.File); err != nil {
			return nil, fmt.Errorf("sound file for track %s not found at %s: %w", t, src.File, err)
		}
		p.sources[t] = src
	}

	if err := speaker.Init(mixerRate, mixerRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return p, nil
}

// Play stops the current track, decodes the requested one and starts it.
// With loop set the track repeats until stopped and Busy never goes false
// on its own.
func (p *Beep) Play(t Track, loop bool) error {
	if t <= TrackNone || t >= Track(NumTracks) {
		return fmt.Errorf("cannot play track %s", t)
	}
	p.Stop()

	src := p.sources[t]
	f, err := os.Open(src.File)
	if err != nil {
		return fmt.Errorf("failed to open sound file %s: %w", src.File, err)
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode %s: %w", src.File, err)
	}

	if src.Offset > 0 {
		if err := stream.Seek(format.SampleRate.N(src.Offset)); err != nil {
			stream.Close()
			return fmt.Errorf("failed to seek %s to %s: %w", src.File, src.Offset, err)
		}
	}

	var s beep.Streamer = stream
	if loop {
		s = beep.Loop(-1, stream)
	}
	if format.SampleRate != mixerRate {
		s = beep.Resample(4, format.SampleRate, mixerRate, s)
	}

	p.mu.Lock()
	p.stream = stream
	p.mu.Unlock()
	p.playing.Store(true)

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		p.playing.Store(false)
	})))
	return nil
}

// Stop clears the speaker and closes the current stream, freeing the
// output channel for the next track.
func (p *Beep) Stop() {
	speaker.Clear()
	p.playing.Store(false)

	p.mu.Lock()
	if p.stream != nil {
		p.stream.Close()
		p.stream = nil
	}
	p.mu.Unlock()
}

// Busy reports whether the speaker is still playing the last track.
func (p *Beep) Busy() bool {
	return p.playing.Load()
}

// Close stops playback and releases the speaker.
func (p *Beep) Close() error {
	p.Stop()
	speaker.Close()
	return nil
}
