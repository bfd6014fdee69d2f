package config

import "fmt"

type Config struct {
	Downloader DownloaderConfig `yaml:"downloader"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Limits     LimitsConfig     `yaml:"limits"`
	Output     OutputConfig     `yaml:"output"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DownloaderConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type FFmpegConfig struct {
	BinaryPath          string `yaml:"binary_path"`
	AudioCodec          string `yaml:"audio_codec"`
	DefaultBitrateKbps  int    `yaml:"default_bitrate_kbps"`
	FallbackBitrateKbps int    `yaml:"fallback_bitrate_kbps"`
}

type GeminiConfig struct {
	TranscribeModel string `yaml:"transcribe_model"`
	SummarizeModel  string `yaml:"summarize_model"`
}

type LimitsConfig struct {
	MaxUploadBytes      int64 `yaml:"max_upload_bytes"`
	ChunkThresholdChars int   `yaml:"chunk_threshold_chars"`
	RetryAttempts       int   `yaml:"retry_attempts"`
	RetryBaseDelaySecs  int   `yaml:"retry_base_delay_secs"`
}

type OutputConfig struct {
	Language     string `yaml:"language"`
	SectionOrder string `yaml:"section_order"`
	Separator    string `yaml:"separator"`
}

type PathsConfig struct {
	Scratch string `yaml:"scratch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Output.Language == "" {
		return fmt.Errorf("output.language is required")
	}
	if c.Output.SectionOrder != "" &&
		c.Output.SectionOrder != "transcript-first" &&
		c.Output.SectionOrder != "summary-first" {
		return fmt.Errorf("output.section_order must be transcript-first or summary-first")
	}

	if c.FFmpeg.DefaultBitrateKbps < 0 || c.FFmpeg.FallbackBitrateKbps < 0 {
		return fmt.Errorf("ffmpeg bitrates must be positive")
	}
	if c.Limits.MaxUploadBytes < 0 {
		return fmt.Errorf("limits.max_upload_bytes must be positive")
	}
	if c.Limits.ChunkThresholdChars < 0 {
		return fmt.Errorf("limits.chunk_threshold_chars must be positive")
	}
	if c.Limits.RetryAttempts < 0 {
		return fmt.Errorf("limits.retry_attempts must be positive")
	}
	if c.Limits.RetryBaseDelaySecs < 0 {
		return fmt.Errorf("limits.retry_base_delay_secs must be positive")
	}

	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.FFmpeg.DefaultBitrateKbps == 0 {
		c.FFmpeg.DefaultBitrateKbps = 24
	}
	if c.FFmpeg.FallbackBitrateKbps == 0 {
		c.FFmpeg.FallbackBitrateKbps = 16
	}
	if c.FFmpeg.FallbackBitrateKbps >= c.FFmpeg.DefaultBitrateKbps {
		return fmt.Errorf("ffmpeg.fallback_bitrate_kbps must be lower than default_bitrate_kbps")
	}
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = "gemini-2.5-flash"
	}
	if c.Gemini.SummarizeModel == "" {
		c.Gemini.SummarizeModel = "gemini-2.5-flash"
	}
	if c.Limits.MaxUploadBytes == 0 {
		c.Limits.MaxUploadBytes = 20_000_000
	}
	if c.Limits.ChunkThresholdChars == 0 {
		c.Limits.ChunkThresholdChars = 15000
	}
	if c.Limits.RetryAttempts == 0 {
		c.Limits.RetryAttempts = 3
	}
	if c.Limits.RetryBaseDelaySecs == 0 {
		c.Limits.RetryBaseDelaySecs = 2
	}
	if c.Output.SectionOrder == "" {
		c.Output.SectionOrder = "transcript-first"
	}
	if c.Output.Separator == "" {
		c.Output.Separator = "---"
	}
	if c.Paths.Scratch == "" {
		c.Paths.Scratch = "data/scratch"
	}

	return nil
}
