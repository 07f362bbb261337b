package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/decode"
	"github.com/lajordan/vizor/internal/source"
	"github.com/lajordan/vizor/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var mode string
	var listDevices bool

	cmd := &cobra.Command{
		Use:   "vizor [file]",
		Short: "Audio-reactive bar visualizer for the terminal",
		Long: "vizor renders live bars driven by an audio signal: either a capture\n" +
			"device (the default) or a playing audio file (" + decode.SupportedExtsList() + ").",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listDevices {
				return printDevices(cmd)
			}

			if len(args) == 1 {
				cfg.Path = args[0]
			}
			cfg.Mode = config.Mode(mode)
			if cfg.FileMode() && cmd.Flags().Changed("samplerate") {
				return config.ErrRateWithFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(cfg.Mode), "visualization mode: amplitude, frequency or wave")
	cmd.Flags().IntVar(&cfg.SampleRate, "samplerate", cfg.SampleRate, "capture sample rate in Hz (live mode only)")
	cmd.Flags().IntVar(&cfg.BlockSize, "blocksize", cfg.BlockSize, "samples per analysis block (power of two)")
	cmd.Flags().IntVar(&cfg.Bars, "bars", cfg.Bars, "bar count in frequency mode")
	cmd.Flags().StringVar(&cfg.Device, "device", "", "capture device index or name substring (live mode only)")
	cmd.Flags().BoolVar(&listDevices, "list-devices", false, "list capture devices and exit")

	return cmd
}

func printDevices(cmd *cobra.Command) error {
	devices, err := source.ListDevices()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return source.ErrNoInputDevice
	}
	for _, d := range devices {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
	return nil
}

// run opens the source, starts it, and only then hands control to the
// render loop. Every startup failure surfaces here, before a single frame
// is drawn.
func run(cfg config.Config) error {
	var (
		src   source.Source
		title string
	)

	if cfg.FileMode() {
		track, err := decode.ReadTrack(cfg.Path)
		if err != nil {
			return err
		}
		file, err := source.NewFile(track, cfg.BlockSize)
		if err != nil {
			return err
		}
		src = file
		title = file.Title()
	} else {
		capture, err := source.NewCapture(cfg)
		if err != nil {
			return err
		}
		src = capture
		title = capture.DeviceName()
	}

	if err := src.Start(); err != nil {
		src.Close()
		return err
	}

	program := tea.NewProgram(ui.New(cfg, src, title), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		src.Close()
		return fmt.Errorf("display error: %w", err)
	}
	return nil
}
