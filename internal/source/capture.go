package source

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/lajordan/vizor/internal/config"
)

// Capture reads mono blocks from a PortAudio input device. The PortAudio
// callback runs on a thread the audio subsystem owns; it hands each block to
// the render loop through a Latest slot and must not block or allocate.
type Capture struct {
	cfg     config.Config
	device  *portaudio.DeviceInfo
	stream  *portaudio.Stream
	latest  Latest
	scratch []float64
	lastSeq uint64
	started bool
}

var (
	paInit sync.Once
	paErr  error
)

func initPortAudio() error {
	paInit.Do(func() { paErr = portaudio.Initialize() })
	return paErr
}

// NewCapture opens the requested (or default) input device. Initialization
// errors surface here, before any frame is rendered.
func NewCapture(cfg config.Config) (*Capture, error) {
	if err := initPortAudio(); err != nil {
		return nil, fmt.Errorf("initializing audio subsystem: %w", err)
	}

	dev, err := findInputDevice(cfg.Device)
	if err != nil {
		return nil, err
	}

	return &Capture{
		cfg:     cfg,
		device:  dev,
		scratch: make([]float64, cfg.BlockSize),
	}, nil
}

// DeviceName returns the name of the opened input device.
func (c *Capture) DeviceName() string { return c.device.Name }

func (c *Capture) SampleRate() int { return c.cfg.SampleRate }

// Start opens and starts the input stream. Unsupported rate or block size
// combinations fail here.
func (c *Capture) Start() error {
	params := portaudio.HighLatencyParameters(c.device, nil)
	params.Input.Channels = 1
	params.SampleRate = float64(c.cfg.SampleRate)
	params.FramesPerBuffer = c.cfg.BlockSize

	stream, err := portaudio.OpenStream(params, c.callback)
	if err != nil {
		return fmt.Errorf("opening %s at %d Hz: %w", c.device.Name, c.cfg.SampleRate, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("starting capture on %s: %w", c.device.Name, err)
	}
	c.stream = stream
	c.started = true
	return nil
}

// callback runs on the audio thread. The scratch buffer is preallocated and
// Latest reuses its slot buffer, so the steady state is copy-only.
func (c *Capture) callback(in []float32) {
	n := len(in)
	if n > len(c.scratch) {
		n = len(c.scratch)
	}
	for i := range n {
		c.scratch[i] = float64(in[i])
	}
	c.latest.Store(c.scratch[:n], c.cfg.SampleRate)
}

// Next returns the most recent captured block. Before the first callback it
// returns a silent block so the bars can render immediately.
func (c *Capture) Next() (Block, bool, error) {
	block, seq := c.latest.Load()
	if seq == 0 {
		return Block{
			Samples:    make([]float64, c.cfg.BlockSize),
			SampleRate: c.cfg.SampleRate,
		}, false, nil
	}
	fresh := seq != c.lastSeq
	c.lastSeq = seq
	return block, fresh, nil
}

func (c *Capture) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	if err := c.stream.Stop(); err != nil {
		c.stream.Close()
		return err
	}
	return c.stream.Close()
}

// Device describes one input-capable device for --list-devices.
type Device struct {
	Index      int
	Name       string
	HostAPI    string
	SampleRate int
	Channels   int
}

func (d Device) String() string {
	return fmt.Sprintf("%2d  %s (%s, %d ch, %d Hz)", d.Index, d.Name, d.HostAPI, d.Channels, d.SampleRate)
}

// ListDevices enumerates input-capable devices.
func ListDevices() ([]Device, error) {
	if err := initPortAudio(); err != nil {
		return nil, fmt.Errorf("initializing audio subsystem: %w", err)
	}

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	var out []Device
	for i, info := range infos {
		if info.MaxInputChannels < 1 {
			continue
		}
		host := ""
		if info.HostApi != nil {
			host = info.HostApi.Name
		}
		out = append(out, Device{
			Index:      i,
			Name:       info.Name,
			HostAPI:    host,
			SampleRate: int(info.DefaultSampleRate),
			Channels:   info.MaxInputChannels,
		})
	}
	return out, nil
}

// findInputDevice resolves an index or case-insensitive name substring.
// An empty query selects the default input device.
func findInputDevice(query string) (*portaudio.DeviceInfo, error) {
	if query == "" {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("%w: no default input", ErrNoInputDevice)
		}
		return dev, nil
	}

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	if idx, err := strconv.Atoi(query); err == nil {
		if idx < 0 || idx >= len(infos) || infos[idx].MaxInputChannels < 1 {
			return nil, fmt.Errorf("%w: index %d", ErrNoInputDevice, idx)
		}
		return infos[idx], nil
	}

	needle := strings.ToLower(query)
	for _, info := range infos {
		if info.MaxInputChannels < 1 {
			continue
		}
		if strings.Contains(strings.ToLower(info.Name), needle) {
			return info, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoInputDevice, query)
}
