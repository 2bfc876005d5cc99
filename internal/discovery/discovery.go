// Package discovery announces the diagnostics websocket endpoint over
// mDNS/DNS-SD so client tools can find the scope endpoint on the
// local network without a configured address.
package discovery

import (
	"context"
	"fmt"

	"github.com/brutella/dnssd"

	"github.com/dsdgo/dsdgo/core"
)

const serviceType = "_dsdgo-scope._tcp"

// Announce advertises the diagnostics websocket endpoint at the given
// port under name (or the default name "dsdgo"), logging through log. It
// returns once the responder goroutine has been started; the
// responder itself runs until ctx is cancelled.
func Announce(ctx context.Context, log core.Logger, name string, port int) error {
	if name == "" {
		name = defaultServiceName()
	}

	cfg := dnssd.Config{
		Name: name,
		Type: serviceType,
		Port: port,
	}

	sv, err := dnssd.NewService(cfg)
	if err != nil {
		return fmt.Errorf("discovery: create service: %w", err)
	}

	rp, err := dnssd.NewResponder()
	if err != nil {
		return fmt.Errorf("discovery: create responder: %w", err)
	}

	if _, err := rp.Add(sv); err != nil {
		return fmt.Errorf("discovery: add service: %w", err)
	}

	log.Infof("discovery: announcing scope endpoint on port %d as %q", port, name)

	go func() {
		if err := rp.Respond(ctx); err != nil && ctx.Err() == nil {
			log.Warnf("discovery: responder stopped: %v", err)
		}
	}()

	return nil
}

func defaultServiceName() string {
	return "dsdgo"
}
