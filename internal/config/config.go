package config

import (
	"errors"
	"time"
)

// Config is the application configuration root.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	AI      AIConfig      `mapstructure:"ai"`
	Image   ImageConfig   `mapstructure:"image"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Video   VideoConfig   `mapstructure:"video"`
	Log     LogConfig     `mapstructure:"log"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AIConfig text-generation settings (story, translation, scene split, image prompts).
type AIConfig struct {
	Provider   string          `mapstructure:"provider"` // openai, azure, ark
	APIKey     string          `mapstructure:"api_key"`
	Model      string          `mapstructure:"model"`
	BaseURL    string          `mapstructure:"base_url"`
	APIVersion string          `mapstructure:"api_version"` // Azure only
	Timeout    time.Duration   `mapstructure:"timeout"`
	Options    AIOptionsConfig `mapstructure:"options"`
}

// AIOptionsConfig model sampling parameters.
type AIOptionsConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TopP        float64 `mapstructure:"top_p"`
}

// ImageConfig illustration-generation settings.
type ImageConfig struct {
	Provider   string `mapstructure:"provider"` // azure, ark
	Endpoint   string `mapstructure:"endpoint"`
	APIKey     string `mapstructure:"api_key"`
	APIVersion string `mapstructure:"api_version"`
	Deployment string `mapstructure:"deployment"` // Azure deployment name / Ark model name
	Size       string `mapstructure:"size"`
	Quality    string `mapstructure:"quality"`
}

// SpeechConfig speech-synthesis settings (Azure Speech).
type SpeechConfig struct {
	Region       string `mapstructure:"region"`
	Key          string `mapstructure:"key"`
	Language     string `mapstructure:"language"`      // default narration language: ko, en
	OutputFormat string `mapstructure:"output_format"` // Azure output format name
}

// VideoConfig video-pipeline settings.
type VideoConfig struct {
	TempDir    string `mapstructure:"temp_dir"`    // per-job working directories
	OutputDir  string `mapstructure:"output_dir"`  // final videos, one file per job id
	SceneCount int    `mapstructure:"scene_count"` // fixed number of scenes per story
}

// LogConfig zerolog settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// MongoConfig MongoDB settings.
type MongoConfig struct {
	URI         string `mapstructure:"uri"`
	Database    string `mapstructure:"database"`
	MaxPoolSize uint64 `mapstructure:"max_pool_size"`
	MinPoolSize uint64 `mapstructure:"min_pool_size"`
}

// RedisConfig Redis settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig authentication settings.
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_token_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_token_expiry"`
}

// StorageConfig storage backend selection.
type StorageConfig struct {
	Type  string       `mapstructure:"type"` // local, oss
	Local *LocalConfig `mapstructure:"local,omitempty"`
	OSS   *OSSConfig   `mapstructure:"oss,omitempty"`
}

// LocalConfig local-filesystem storage settings.
type LocalConfig struct {
	BasePath string `mapstructure:"base_path"`
	BaseURL  string `mapstructure:"base_url"`
}

// OSSConfig Aliyun OSS storage settings.
type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	PresignExpiry   int    `mapstructure:"presign_expiry"`
}

// Validate checks config consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Video.SceneCount <= 0 {
		return errors.New("video.scene_count must be positive")
	}
	if c.Video.TempDir == "" || c.Video.OutputDir == "" {
		return errors.New("video.temp_dir and video.output_dir are required")
	}

	switch c.Image.Provider {
	case "", "azure", "ark":
	default:
		return errors.New("invalid image provider, must be azure/ark")
	}

	return nil
}
