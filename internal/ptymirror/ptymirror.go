// Package ptymirror exposes decoder status lines on a pseudo-terminal:
// a plain text status mirror that any terminal program can open.
package ptymirror

import (
	"fmt"
	"os"

	"github.com/creack/pty"

	"github.com/dsdgo/dsdgo/core"
)

// Mirror owns one pty pair: this process writes status lines to the
// master side, and the slave is the path an external terminal program
// opens.
type Mirror struct {
	master *os.File
	slave  *os.File
}

// Open allocates a new pty pair.
func Open() (*Mirror, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("ptymirror: open: %w", err)
	}
	return &Mirror{master: master, slave: slave}, nil
}

// SlaveName returns the path an external program should open, e.g.
// /dev/pts/4.
func (m *Mirror) SlaveName() string {
	if m == nil || m.slave == nil {
		return ""
	}
	return m.slave.Name()
}

// Observe is a core.Observer that writes one line per sync hit and
// carrier-loss event to the pty master side. Write errors are
// swallowed: a reader that hasn't opened the slave yet is the normal
// case, not a fault.
func (m *Mirror) Observe(ev core.Event) {
	if m == nil || m.master == nil {
		return
	}
	switch ev.Kind {
	case core.EventSyncHit:
		fmt.Fprintf(m.master, "SYNC code=%d mod=%s offset=%d\n", ev.SyncCode, ev.Modulation, ev.Offset)
	case core.EventNoCarrier:
		fmt.Fprintln(m.master, "NOCARRIER")
	}
}

// Close releases both ends of the pty pair.
func (m *Mirror) Close() error {
	if m == nil {
		return nil
	}
	if m.slave != nil {
		_ = m.slave.Close()
	}
	if m.master != nil {
		return m.master.Close()
	}
	return nil
}
