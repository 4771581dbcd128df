package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client wraps FFmpeg/FFprobe command invocations.
type Client struct {
	ffmpegPath  string // default: ffmpeg on PATH
	ffprobePath string // default: ffprobe on PATH
}

// NewClient creates an FFmpeg client. Binary locations can be overridden
// with FFMPEG_PATH / FFPROBE_PATH for environments with bundled binaries.
func NewClient() *Client {
	ffmpegPath := os.Getenv("FFMPEG_PATH")
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	ffprobePath := os.Getenv("FFPROBE_PATH")
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}

	return &Client{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}
}

// AudioDuration returns the duration of an audio file in seconds.
func (c *Client) AudioDuration(ctx context.Context, audioPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, c.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		audioPath,
	)

	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	outputStr := string(output)
	var duration float64
	if idx := strings.Index(outputStr, `"duration":`); idx != -1 {
		if _, err := fmt.Sscanf(outputStr[idx:], `"duration":"%f"`, &duration); err != nil {
			return 0, fmt.Errorf("parse duration: %w", err)
		}
	}

	return duration, nil
}

// EncodeSceneClip turns a still image plus a narration track into a video
// clip. The image loops and -shortest cuts the clip at the end of the audio,
// so the clip duration always equals the audio duration.
func (c *Client) EncodeSceneClip(ctx context.Context, imagePath, audioPath, outputPath string) error {
	args := []string{
		"-y",
		"-noautorotate", // some generated JPEGs carry bogus orientation metadata
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-c:a", "aac",
		"-b:a", "192k",
		"-pix_fmt", "yuv420p",
		"-shortest",
		outputPath,
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}

	log.Info().
		Str("image", imagePath).
		Str("audio", audioPath).
		Str("output", outputPath).
		Msg("scene clip encoded")

	return nil
}

// ConcatClips joins clips losslessly with the concat demuxer (-c copy, no
// re-encode). Clip order in the slice is the order in the output.
func (c *Client) ConcatClips(ctx context.Context, clipPaths []string, outputPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("no clips to concat")
	}

	listDir := filepath.Dir(outputPath)
	listFile := filepath.Join(listDir, fmt.Sprintf("concat_%d.txt", time.Now().UnixNano()))

	file, err := os.Create(listFile)
	if err != nil {
		return fmt.Errorf("create concat list file: %w", err)
	}
	defer os.Remove(listFile)

	for _, clipPath := range clipPaths {
		absPath, err := filepath.Abs(clipPath)
		if err != nil {
			file.Close()
			return fmt.Errorf("get absolute path: %w", err)
		}
		fmt.Fprintf(file, "file '%s'\n", absPath)
	}
	file.Close()

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-c", "copy",
		outputPath,
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}

	log.Info().
		Int("count", len(clipPaths)).
		Str("output", outputPath).
		Msg("clips concatenated")

	return nil
}
