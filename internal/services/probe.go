package services

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"alfredoptarigan/interview-analyzer/internal/models"
)

// MediaProber confirms a file is a decodable video and reads its duration.
type MediaProber interface {
	Probe(ctx context.Context, path string) (*models.MediaInfo, error)
}

type ffprobeService struct {
	binary  string
	timeout time.Duration
}

func NewFFProbeService(binary string, timeout time.Duration) MediaProber {
	return &ffprobeService{
		binary:  binary,
		timeout: timeout,
	}
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p *ffprobeService) Probe(ctx context.Context, path string) (*models.MediaInfo, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-show_entries", "format=duration:stream=codec_type,codec_name",
		"-of", "json",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "ffprobe failed: %s", strings.TrimSpace(stderr.String()))
	}

	return parseProbeOutput(out)
}

func parseProbeOutput(out []byte) (*models.MediaInfo, error) {
	var probe ffprobeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, errors.Wrap(err, "unreadable ffprobe output")
	}

	info := &models.MediaInfo{}
	for _, stream := range probe.Streams {
		switch stream.CodecType {
		case "video":
			if info.VideoStream == "" {
				info.VideoStream = stream.CodecName
				if info.VideoStream == "" {
					info.VideoStream = "unknown"
				}
			}
		case "audio":
			info.HasAudio = true
		}
	}
	if info.VideoStream == "" {
		return nil, errors.New("no video stream found")
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid duration %q", probe.Format.Duration)
	}
	if duration <= 0 {
		return nil, errors.Errorf("invalid duration %q", probe.Format.Duration)
	}
	info.Duration = duration

	return info, nil
}
