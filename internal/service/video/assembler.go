package video

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// ClipEncoder turns a still image plus an audio track into a video clip
// and losslessly joins clips. Satisfied by ffmpeg.Client; tests inject a
// stub.
type ClipEncoder interface {
	EncodeSceneClip(ctx context.Context, imagePath, audioPath, outputPath string) error
	ConcatClips(ctx context.Context, clipPaths []string, outputPath string) error
	AudioDuration(ctx context.Context, audioPath string) (float64, error)
}

// assembler renders one scene into a clip: image generation (with a
// single safe-prompt retry on content-policy rejection), asset download,
// speech synthesis, and encoding. Steps per scene run strictly in order.
type assembler struct {
	images     storytools.ImageGenerator
	speech     storytools.SpeechSynthesizer
	encoder    ClipEncoder
	downloader *imageDownloader
}

// assembleClip produces the clip for one scene in workDir and returns
// its path plus the narration length in seconds.
func (a *assembler) assembleClip(ctx context.Context, scene storytools.Scene, profile storytools.StoryProfile, language, workDir string) (string, float64, error) {
	imagePath := filepath.Join(workDir, fmt.Sprintf("scene_%d.jpg", scene.Index))
	if err := a.produceImage(ctx, scene, imagePath); err != nil {
		return "", 0, err
	}

	ssml := storytools.NewSSMLBuilder(language, profile.Name, profile.VoicePreference).Build(scene.Text)
	audio, err := a.speech.Synthesize(ctx, ssml)
	if err != nil {
		return "", 0, fmt.Errorf("scene %d: synthesize speech: %w", scene.Index, err)
	}

	audioPath := filepath.Join(workDir, fmt.Sprintf("scene_%d.mp3", scene.Index))
	if err := os.WriteFile(audioPath, audio, 0o644); err != nil {
		return "", 0, fmt.Errorf("scene %d: write audio: %w", scene.Index, err)
	}

	// the probe is informational only, a failure must not abort the job
	duration, err := a.encoder.AudioDuration(ctx, audioPath)
	if err != nil {
		log.Warn().Int("scene", scene.Index).Err(err).Msg("failed to probe narration duration")
		duration = 0
	}

	clipPath := filepath.Join(workDir, fmt.Sprintf("scene_%d.mp4", scene.Index))
	if err := a.encoder.EncodeSceneClip(ctx, imagePath, audioPath, clipPath); err != nil {
		return "", 0, fmt.Errorf("scene %d: encode clip: %w", scene.Index, err)
	}

	log.Info().Int("scene", scene.Index).Float64("duration_sec", duration).Msg("scene clip assembled")
	return clipPath, duration, nil
}

// produceImage generates the scene illustration and materializes it at
// imagePath. A content-policy rejection is retried exactly once with the
// safe fallback prompt; any other error propagates.
func (a *assembler) produceImage(ctx context.Context, scene storytools.Scene, imagePath string) error {
	result, err := a.images.Generate(ctx, scene.ImagePrompt)
	if err != nil {
		if !errors.Is(err, storytools.ErrContentPolicy) {
			return fmt.Errorf("scene %d: generate image: %w", scene.Index, err)
		}

		log.Warn().Int("scene", scene.Index).Msg("image prompt rejected by content policy, retrying with safe prompt")
		result, err = a.images.Generate(ctx, storytools.SafeFallbackPrompt)
		if err != nil {
			return fmt.Errorf("scene %d: generate image with safe prompt: %w", scene.Index, err)
		}
	}

	if len(result.Data) > 0 {
		if err := os.WriteFile(imagePath, result.Data, 0o644); err != nil {
			return fmt.Errorf("scene %d: write image: %w", scene.Index, err)
		}
		return nil
	}

	if err := a.downloader.download(ctx, result.URL, imagePath); err != nil {
		return fmt.Errorf("scene %d: %w", scene.Index, err)
	}
	return nil
}

// concatenate joins the clips in the given order into outputPath without
// re-encoding.
func (a *assembler) concatenate(ctx context.Context, clipPaths []string, outputPath string) error {
	if err := a.encoder.ConcatClips(ctx, clipPaths, outputPath); err != nil {
		return fmt.Errorf("concatenate clips: %w", err)
	}
	return nil
}
