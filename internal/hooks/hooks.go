// Package hooks drives external carrier-detect indicators (a GPIO
// line, a serial port's RTS line) and rig control (via Hamlib) from
// the core's event stream. All are optional: a Decoder runs fine with
// nil hooks attached.
package hooks

import (
	"fmt"
	"os"

	"github.com/warthog618/go-gpiocdev"
	hamlib "github.com/xylo04/goHamlib"
	"golang.org/x/sys/unix"

	"github.com/dsdgo/dsdgo/core"
)

// GPIOIndicator drives a single GPIO output line high on carrier
// acquisition and low on carrier loss, using the pure-Go go-gpiocdev
// API.
type GPIOIndicator struct {
	line *gpiocdev.Line
}

// NewGPIOIndicator requests chipPath/offset as an output line, driven
// low initially.
func NewGPIOIndicator(chipPath string, offset int) (*GPIOIndicator, error) {
	line, err := gpiocdev.RequestLine(chipPath, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("dsdgo"),
	)
	if err != nil {
		return nil, fmt.Errorf("hooks: request gpio line: %w", err)
	}
	return &GPIOIndicator{line: line}, nil
}

// Observe is a core.Observer: EventSyncHit raises the line,
// EventNoCarrier lowers it, and other events leave it unchanged.
func (g *GPIOIndicator) Observe(ev core.Event) {
	if g == nil || g.line == nil {
		return
	}
	switch ev.Kind {
	case core.EventSyncHit:
		_ = g.line.SetValue(1)
	case core.EventNoCarrier:
		_ = g.line.SetValue(0)
	}
}

// Close releases the GPIO line.
func (g *GPIOIndicator) Close() error {
	if g == nil || g.line == nil {
		return nil
	}
	return g.line.Close()
}

// SerialPTT drives a serial port's RTS line high on carrier
// acquisition and low on carrier loss via a TIOCMBIS/TIOCMBIC ioctl,
// the same bitmask toggling a COM/USB-serial PTT adapter uses in place
// of a GPIO chip or a rig-control backend.
type SerialPTT struct {
	f *os.File
}

// NewSerialPTT opens device (e.g. /dev/ttyUSB0) for RTS-line control.
func NewSerialPTT(device string) (*SerialPTT, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("hooks: open serial device: %w", err)
	}
	return &SerialPTT{f: f}, nil
}

func (p *SerialPTT) setRTS(on bool) error {
	req := uint(unix.TIOCMBIC)
	if on {
		req = unix.TIOCMBIS
	}
	return unix.IoctlSetPointerInt(int(p.f.Fd()), req, unix.TIOCM_RTS)
}

// Observe is a core.Observer: EventSyncHit raises RTS, EventNoCarrier
// lowers it. Ioctl failures are swallowed, matching GPIOIndicator and
// RigController: PTT indication is a diagnostic nicety, never
// load-bearing for decoding.
func (p *SerialPTT) Observe(ev core.Event) {
	if p == nil || p.f == nil {
		return
	}
	switch ev.Kind {
	case core.EventSyncHit:
		_ = p.setRTS(true)
	case core.EventNoCarrier:
		_ = p.setRTS(false)
	}
}

// Close releases the serial device.
func (p *SerialPTT) Close() error {
	if p == nil || p.f == nil {
		return nil
	}
	return p.f.Close()
}

// RigController reports decoder lock state to a radio over Hamlib, so
// a rig capable of displaying auxiliary status (or logging squelch
// state) reflects what the decoder sees.
type RigController struct {
	rig *hamlib.Rig
}

// NewRigController opens a Hamlib rig handle for the given model and
// device path using the pure-Go goHamlib bindings.
func NewRigController(model int, device string) (*RigController, error) {
	r := hamlib.NewRig(model)
	if err := r.SetConf("rig_pathname", device); err != nil {
		return nil, fmt.Errorf("hooks: configure rig: %w", err)
	}
	if err := r.Open(); err != nil {
		return nil, fmt.Errorf("hooks: open rig: %w", err)
	}
	return &RigController{rig: r}, nil
}

// Observe is a core.Observer that toggles the rig's PTT as a decoder
// busy indicator: asserted for the duration of a confirmed frame
// dispatch, released on carrier loss. Errors from unsupported Hamlib
// backends are swallowed: rig status is a diagnostic nicety, never
// load-bearing for decoding.
func (r *RigController) Observe(ev core.Event) {
	if r == nil || r.rig == nil {
		return
	}
	switch ev.Kind {
	case core.EventFrameDispatch:
		_ = r.rig.SetPTT(hamlib.VFOCurrent, true)
	case core.EventNoCarrier:
		_ = r.rig.SetPTT(hamlib.VFOCurrent, false)
	}
}

// Close releases the rig handle.
func (r *RigController) Close() error {
	if r == nil || r.rig == nil {
		return nil
	}
	return r.rig.Close()
}
