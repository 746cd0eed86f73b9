package services

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeOutput(t *testing.T) {
	out := []byte(`{
		"streams": [{"codec_type": "video", "codec_name": "h264"}, {"codec_type": "audio", "codec_name": "aac"}],
		"format": {"duration": "612.480000"}
	}`)

	info, err := parseProbeOutput(out)
	require.NoError(t, err)
	assert.InDelta(t, 612.48, info.Duration, 0.0001)
	assert.Equal(t, "h264", info.VideoStream)
	assert.True(t, info.HasAudio)
}

func TestParseProbeOutputErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"not json", `Invalid data found when processing input`},
		{"audio only", `{"streams": [{"codec_type": "audio"}], "format": {"duration": "10.0"}}`},
		{"no streams", `{"streams": [], "format": {}}`},
		{"missing duration", `{"streams": [{"codec_type": "video"}], "format": {}}`},
		{"na duration", `{"streams": [{"codec_type": "video"}], "format": {"duration": "N/A"}}`},
		{"zero duration", `{"streams": [{"codec_type": "video"}], "format": {"duration": "0.000000"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProbeOutput([]byte(tt.out))
			assert.Error(t, err)
		})
	}
}

func TestFFProbeRejectsCorruptFile(t *testing.T) {
	binary, err := exec.LookPath("ffprobe")
	if err != nil {
		t.Skip("ffprobe not available")
	}

	path := filepath.Join(t.TempDir(), "corrupt.mp4")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an mp4 container"), 0644))

	_, err = NewFFProbeService(binary, 10*time.Second).Probe(context.Background(), path)
	assert.Error(t, err)
}

func TestFFProbeMissingBinary(t *testing.T) {
	prober := NewFFProbeService(filepath.Join(t.TempDir(), "no-ffprobe"), time.Second)

	_, err := prober.Probe(context.Background(), "video.mp4")
	assert.Error(t, err)
}
