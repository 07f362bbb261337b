package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/decode"
)

func execRoot(args ...string) error {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestUnknownModeFails(t *testing.T) {
	err := execRoot("--mode", "spiral")
	if !errors.Is(err, config.ErrUnknownMode) {
		t.Fatalf("Execute() = %v, want ErrUnknownMode", err)
	}
}

func TestMissingFileFailsBeforeRender(t *testing.T) {
	err := execRoot(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("Execute() with a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Execute() = %v, want file-not-found", err)
	}
}

func TestUnsupportedFormatFails(t *testing.T) {
	err := execRoot("track.mid")
	if !errors.Is(err, decode.ErrUnsupported) {
		t.Fatalf("Execute() = %v, want ErrUnsupported", err)
	}
}

func TestDeviceFlagRejectedInFileMode(t *testing.T) {
	err := execRoot("--device", "2", "track.wav")
	if !errors.Is(err, config.ErrDeviceWithFile) {
		t.Fatalf("Execute() = %v, want ErrDeviceWithFile", err)
	}
}

func TestSampleRateFlagRejectedInFileMode(t *testing.T) {
	err := execRoot("--samplerate", "48000", "track.wav")
	if !errors.Is(err, config.ErrRateWithFile) {
		t.Fatalf("Execute() = %v, want ErrRateWithFile", err)
	}
}

func TestBadBlockSizeFails(t *testing.T) {
	err := execRoot("--blocksize", "1000")
	if !errors.Is(err, config.ErrBadBlockSize) {
		t.Fatalf("Execute() = %v, want ErrBadBlockSize", err)
	}
}
