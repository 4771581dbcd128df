package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/model/story"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
	storyRepo "github.com/chaesu44438/emotion-theater/internal/repository/story"
)

// Job status values reported by Status.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Service runs the story-to-video pipeline as asynchronous jobs: scene
// split, per-scene illustration prompt, image + speech + clip assembly,
// and final concatenation. Acceptance returns immediately; progress is
// polled.
type Service struct {
	splitter  *storytools.SceneSplitter
	llm       storytools.TextGenerator
	assembler *assembler
	settings  *storyRepo.SettingRepo // optional
	tempDir   string
	outputDir string
	failures  *failureRegistry
}

// NewService creates the video pipeline service and its working
// directories. settings may be nil; the compiled-in prompter system
// prompt is used then.
func NewService(
	cfg *config.VideoConfig,
	llm storytools.TextGenerator,
	images storytools.ImageGenerator,
	speech storytools.SpeechSynthesizer,
	encoder ClipEncoder,
	settings *storyRepo.SettingRepo,
) (*Service, error) {
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &Service{
		splitter: storytools.NewSceneSplitter(llm, cfg.SceneCount),
		llm:      llm,
		assembler: &assembler{
			images:     images,
			speech:     speech,
			encoder:    encoder,
			downloader: newImageDownloader(),
		},
		settings:  settings,
		tempDir:   cfg.TempDir,
		outputDir: cfg.OutputDir,
		failures:  newFailureRegistry(),
	}, nil
}

// Generate accepts a job and starts the pipeline in the background. The
// returned job ID is available immediately; the pipeline has no
// cancellation path once accepted, so it runs detached from the request
// context.
func (s *Service) Generate(storyText string, profile storytools.StoryProfile, language string) (string, error) {
	jobID := id.NewJobID()

	workDir := filepath.Join(s.tempDir, jobID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", fmt.Errorf("create job work dir: %w", err)
	}

	go s.process(context.Background(), jobID, workDir, storyText, profile, language)

	return jobID, nil
}

// Status reports a job's state. Completion is judged purely by the
// output artifact existing on disk; failures come from the in-process
// registry.
func (s *Service) Status(jobID string) (status, downloadURL, failure string) {
	if _, err := os.Stat(s.OutputPath(jobID)); err == nil {
		return StatusCompleted, "/api/v1/video/download/" + jobID, ""
	}
	if reason, ok := s.failures.lookup(jobID); ok {
		return StatusFailed, "", reason
	}
	return StatusProcessing, "", ""
}

// OutputPath returns the final artifact path for a job.
func (s *Service) OutputPath(jobID string) string {
	return filepath.Join(s.outputDir, jobID+".mp4")
}

// process runs the full pipeline for one job. The working directory is
// removed on success and on terminal failure alike.
func (s *Service) process(ctx context.Context, jobID, workDir, storyText string, profile storytools.StoryProfile, language string) {
	logger := log.With().Str("job", jobID).Logger()
	logger.Info().Msg("video generation started")

	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logger.Warn().Err(err).Msg("failed to clean up work dir")
		}
	}()

	if err := s.run(ctx, jobID, workDir, storyText, profile, language, logger); err != nil {
		logger.Error().Err(err).Msg("video generation failed")
		s.failures.record(jobID, err.Error())
		return
	}

	logger.Info().Msg("video generation completed")
}

func (s *Service) run(ctx context.Context, jobID, workDir, storyText string, profile storytools.StoryProfile, language string, logger zerolog.Logger) error {
	scenes, err := s.splitter.Split(ctx, storyText)
	if err != nil {
		return err
	}
	logger.Info().Int("scenes", len(scenes)).Msg("story split into scenes")

	if err := s.promptScenes(ctx, scenes, profile); err != nil {
		return err
	}

	// scenes are assembled strictly in index order so the concat list
	// matches the story
	clipPaths := make([]string, 0, len(scenes))
	var totalDuration float64
	for _, scene := range scenes {
		clipPath, duration, err := s.assembler.assembleClip(ctx, scene, profile, language, workDir)
		if err != nil {
			return err
		}
		clipPaths = append(clipPaths, clipPath)
		totalDuration += duration
	}

	if err := s.assembler.concatenate(ctx, clipPaths, s.OutputPath(jobID)); err != nil {
		return err
	}

	logger.Info().Int("clips", len(clipPaths)).Float64("duration_sec", totalDuration).Msg("clips concatenated")
	return nil
}

// promptScenes derives the illustration prompt for every scene. Prompts
// are independent, so they run concurrently.
func (s *Service) promptScenes(ctx context.Context, scenes []storytools.Scene, profile storytools.StoryProfile) error {
	system := storyRepo.Default(story.SettingImagePromptSystem)
	if s.settings != nil {
		system = s.settings.Get(ctx, story.SettingImagePromptSystem)
	}
	prompter := storytools.NewIllustrationPrompter(s.llm, system)

	g, gctx := errgroup.WithContext(ctx)
	for i := range scenes {
		g.Go(func() error {
			prompt, err := prompter.PromptForScene(gctx, scenes[i], profile)
			if err != nil {
				return err
			}
			scenes[i].ImagePrompt = prompt
			return nil
		})
	}
	return g.Wait()
}
