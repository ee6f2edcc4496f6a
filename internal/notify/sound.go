package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// alertFileName is the completion sound looked up next to the binary, in
// the working directory, or under the pomo home.
const alertFileName = "alert.wav"

// SoundPlayer owns the decoded alert sound and the speaker. A player with
// no usable audio stays valid and plays nothing.
type SoundPlayer struct {
	buffer *beep.Buffer
	wg     sync.WaitGroup
}

// NewSoundPlayer locates and decodes the alert sound. Audio problems
// disable sound rather than failing: a timer without a bell still works.
func NewSoundPlayer(homeDir string) *SoundPlayer {
	p := &SoundPlayer{}

	path, ok := findAlertSound(homeDir)
	if !ok {
		return p
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio disabled: opening %s: %v\n", path, err)
		return p
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio disabled: decoding %s: %v\n", path, err)
		return p
	}
	defer func() { _ = streamer.Close() }()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio disabled: initializing speaker: %v\n", err)
		return p
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	p.buffer = buffer
	return p
}

// Enabled reports whether an alert sound is loaded and ready to play.
func (p *SoundPlayer) Enabled() bool {
	return p != nil && p.buffer != nil
}

// Play starts the alert sound without waiting for it to finish.
func (p *SoundPlayer) Play() {
	if !p.Enabled() {
		return
	}
	p.wg.Add(1)
	done := beep.Callback(func() { p.wg.Done() })
	speaker.Play(beep.Seq(p.buffer.Streamer(0, p.buffer.Len()), done))
}

// Drain waits up to timeout for in-flight playback, so the final bell is
// audible before the process exits.
func (p *SoundPlayer) Drain(timeout time.Duration) {
	if !p.Enabled() {
		return
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}

// FindAlertSound returns the first existing candidate path for the alert
// sound. The installer uses it to locate an asset worth copying.
func FindAlertSound(homeDir string) (string, bool) {
	return findAlertSound(homeDir)
}

// findAlertSound returns the first existing candidate path for the alert
// sound.
func findAlertSound(homeDir string) (string, bool) {
	cwd, _ := os.Getwd()
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}

	for _, path := range alertCandidates(cwd, exeDir, homeDir) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// alertCandidates lists the lookup order for the alert sound: the working
// directory's assets, the binary's assets, the pomo home's assets, then a
// bare alert.wav in the working directory.
func alertCandidates(cwd, exeDir, homeDir string) []string {
	var candidates []string
	if cwd != "" {
		candidates = append(candidates, filepath.Join(cwd, "assets", alertFileName))
	}
	if exeDir != "" {
		candidates = append(candidates, filepath.Join(exeDir, "assets", alertFileName))
	}
	if homeDir != "" {
		candidates = append(candidates, filepath.Join(homeDir, "assets", alertFileName))
	}
	if cwd != "" {
		candidates = append(candidates, filepath.Join(cwd, alertFileName))
	}
	return candidates
}
