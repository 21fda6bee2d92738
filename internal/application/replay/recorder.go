package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder. cfg is stored with the replay so
// playback uses the same tuning.
func NewRecorder(level string, cfg *config.GameConfig) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Config:    cfg,
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's intents and delta
func (r *Recorder) RecordFrame(dt float64, in system.Intents) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(len(r.data.Frames), dt, in))
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return SaveReplay(filename, &r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(ext string) string {
	if ext == "" {
		ext = JSONCodec{}.Ext()
	}
	return fmt.Sprintf("replay_%s%s", time.Now().Format("20060102_150405"), ext)
}
