// Package media extracts audio tracks from video files with ffmpeg.
package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const maxOutputInError = 300

// FFmpeg runs the ffmpeg binary found at path
type FFmpeg struct {
	path   string
	logger *zap.Logger
}

// NewFFmpeg creates a demuxer; an empty path means "ffmpeg" from PATH
func NewFFmpeg(path string, logger *zap.Logger) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{path: path, logger: logger}
}

// ExtractAudio writes the audio track of src to dst as MP3
func (f *FFmpeg) ExtractAudio(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, f.path, extractArgs(src, dst)...)

	f.logger.Debug("Extracting audio track", zap.String("src", src), zap.String("dst", dst))

	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if len(msg) > maxOutputInError {
			msg = msg[len(msg)-maxOutputInError:]
		}
		return fmt.Errorf("ffmpeg extract audio: %w: %s", err, msg)
	}
	return nil
}

func extractArgs(src, dst string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", src,
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", "4",
		dst,
	}
}
