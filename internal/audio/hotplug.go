// Hotplug device discovery using the pure-Go jochenvg/go-udev
// bindings: poll for USB sound card arrivals so a configured-by-name
// device can be picked up without a restart.
package audio

import (
	"context"
	"time"

	"github.com/jochenvg/go-udev"

	"github.com/dsdgo/dsdgo/core"
)

// WatchForDevice polls udev's sound subsystem every interval until a
// device whose kernel name contains substr appears, or ctx is
// cancelled. It returns the device's kernel name (e.g. "card2") on
// arrival.
func WatchForDevice(ctx context.Context, log core.Logger, substr string, interval time.Duration) (string, error) {
	u := udev.Udev{}
	seen := map[string]bool{}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		e := u.NewEnumerate()
		if err := e.AddMatchSubsystem("sound"); err != nil {
			return "", err
		}
		devices, err := e.Devices()
		if err != nil {
			return "", err
		}
		for _, d := range devices {
			name := d.Sysname()
			if seen[name] {
				continue
			}
			seen[name] = true
			log.Infof("audio: sound device %s present", name)
			if substr == "" || contains(name, substr) {
				return name, nil
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}
