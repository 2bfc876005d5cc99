// Package config loads the YAML configuration file. ApplyTo merges its
// decoder settings (frames, polarity, modulation, buffer sizes,
// diagnostics, audio gain) onto core.Opts; these have no command-line
// flags. The service settings (diagnostics addresses, MQTT, GPIO, rig,
// audio device) are read by cmd/dsdgo, where a value given on the
// command line takes precedence over the file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dsdgo/dsdgo/core"
)

// File is the on-disk shape of the YAML configuration file.
type File struct {
	Frames struct {
		DMR      *bool `yaml:"dmr"`
		DStar    *bool `yaml:"dstar"`
		P25P1    *bool `yaml:"p25p1"`
		X2TDMA   *bool `yaml:"x2tdma"`
		NXDN48   *bool `yaml:"nxdn48"`
		NXDN96   *bool `yaml:"nxdn96"`
		ProVoice *bool `yaml:"provoice"`
	} `yaml:"frames"`

	Inverted struct {
		DMR    *bool `yaml:"dmr"`
		X2TDMA *bool `yaml:"x2tdma"`
	} `yaml:"inverted"`

	Modulation struct {
		C4FM      *bool `yaml:"c4fm"`
		QPSK      *bool `yaml:"qpsk"`
		GFSK      *bool `yaml:"gfsk"`
		Threshold *int  `yaml:"threshold"`
	} `yaml:"modulation"`

	SSize *int `yaml:"ssize"`
	MSize *int `yaml:"msize"`

	Diagnostics struct {
		ErrorBars    *bool `yaml:"error_bars"`
		Verbose      *int  `yaml:"verbose"`
		Datascope    *bool `yaml:"datascope"`
		SymbolTiming *bool `yaml:"symbol_timing"`
		ScopeRate    *int  `yaml:"scope_rate"`
	} `yaml:"diagnostics"`

	Audio struct {
		Device string   `yaml:"device"`
		Gain   *float64 `yaml:"gain"`
	} `yaml:"audio"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`

	Diag struct {
		ScopeWSAddr string `yaml:"scope_ws_addr"`
		MetricsAddr string `yaml:"metrics_addr"`
	} `yaml:"diag"`

	MDNSEnabled bool `yaml:"mdns_enabled"`

	MQTT struct {
		Broker string `yaml:"broker"`
		Topic  string `yaml:"topic"`
	} `yaml:"mqtt"`

	GPIO struct {
		Chip string `yaml:"chip"`
		Line int    `yaml:"line"`
	} `yaml:"gpio"`

	RigDevice string `yaml:"rig_device"`
	PTYMirror string `yaml:"pty_mirror"`
}

// Load reads and parses a YAML config file. A missing path is not an
// error: it returns a zero File, so every field falls back to the
// Opts default it's merged onto.
func Load(path string) (*File, error) {
	f := &File{}
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyTo merges the file's settings onto an existing core.Opts,
// leaving any field the file doesn't mention untouched.
func (f *File) ApplyTo(o *core.Opts) {
	applyBool(&o.FrameDMR, f.Frames.DMR)
	applyBool(&o.FrameDStar, f.Frames.DStar)
	applyBool(&o.FrameP25P1, f.Frames.P25P1)
	applyBool(&o.FrameX2TDMA, f.Frames.X2TDMA)
	applyBool(&o.FrameNXDN48, f.Frames.NXDN48)
	applyBool(&o.FrameNXDN96, f.Frames.NXDN96)
	applyBool(&o.FrameProVoice, f.Frames.ProVoice)

	applyBool(&o.InvertedDMR, f.Inverted.DMR)
	applyBool(&o.InvertedX2TDMA, f.Inverted.X2TDMA)

	applyBool(&o.ModC4FM, f.Modulation.C4FM)
	applyBool(&o.ModQPSK, f.Modulation.QPSK)
	applyBool(&o.ModGFSK, f.Modulation.GFSK)
	if f.Modulation.Threshold != nil {
		o.SetModThreshold(*f.Modulation.Threshold)
	}

	if f.SSize != nil {
		o.SetSSize(*f.SSize)
	}
	if f.MSize != nil {
		o.SetMSize(*f.MSize)
	}

	applyBool(&o.ErrorBars, f.Diagnostics.ErrorBars)
	if f.Diagnostics.Verbose != nil {
		o.Verbose = *f.Diagnostics.Verbose
	}
	applyBool(&o.Datascope, f.Diagnostics.Datascope)
	applyBool(&o.SymbolTiming, f.Diagnostics.SymbolTiming)
	if f.Diagnostics.ScopeRate != nil {
		o.ScopeRate = *f.Diagnostics.ScopeRate
	}

	if f.Audio.Gain != nil {
		o.SetAudioGain(*f.Audio.Gain)
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
