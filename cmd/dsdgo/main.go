package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dsdgo/dsdgo/core"
	"github.com/dsdgo/dsdgo/internal/audio"
	"github.com/dsdgo/dsdgo/internal/config"
	"github.com/dsdgo/dsdgo/internal/diag"
	"github.com/dsdgo/dsdgo/internal/discovery"
	"github.com/dsdgo/dsdgo/internal/events"
	"github.com/dsdgo/dsdgo/internal/hooks"
	"github.com/dsdgo/dsdgo/internal/logging"
	"github.com/dsdgo/dsdgo/internal/ptymirror"
	"github.com/dsdgo/dsdgo/internal/slicer"
)

func main() {
	var configFile = pflag.StringP("config-file", "c", "dsdgo.yaml", "Configuration file name.")
	var audioDevice = pflag.StringP("audio-device", "i", "", "Input audio device name. Empty selects the default.")
	var audioSampleRate = pflag.Float64P("audio-sample-rate", "r", 48000, "Audio sample rate, samples/sec.")
	var logLevel = pflag.StringP("log-level", "d", "info", "Log level: debug, info, warn, error.")
	var logFile = pflag.StringP("log-file", "L", "", "File name for logging. Empty logs to stderr.")
	var scopeWSAddr = pflag.StringP("scope-addr", "w", "", "Listen address for the datascope websocket feed. Empty disables it.")
	var metricsAddr = pflag.StringP("metrics-addr", "m", "", "Listen address for the Prometheus /metrics endpoint. Empty disables it.")
	var mqttBroker = pflag.StringP("mqtt-broker", "q", "", "MQTT broker URL, e.g. tcp://localhost:1883. Empty disables MQTT.")
	var mqttTopic = pflag.StringP("mqtt-topic", "T", "dsdgo", "MQTT topic prefix.")
	var mdnsEnabled = pflag.BoolP("mdns", "M", false, "Announce the scope endpoint over mDNS/DNS-SD.")
	var gpioChip = pflag.StringP("gpio-chip", "G", "", "GPIO chip path for a carrier indicator line. Empty disables it.")
	var gpioLine = pflag.IntP("gpio-line", "l", 0, "GPIO line offset on gpio-chip.")
	var rigDevice = pflag.StringP("rig-device", "R", "", "Hamlib rig device path for PTT-as-busy-indicator. Empty disables it.")
	var rigModel = pflag.IntP("rig-model", "N", 1, "Hamlib rig model number (1 = dummy backend).")
	var serialPTTDevice = pflag.StringP("serial-ptt-device", "s", "", "Serial port device for RTS-line PTT/carrier indication. Empty disables it.")
	var ptyMirror = pflag.BoolP("pty-mirror", "p", false, "Mirror sync/no-carrier status lines on a pseudo-terminal.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dsdgo - a software sample-driven demodulator dispatcher for narrow-band land-mobile-radio protocols.\n")
		fmt.Fprintf(os.Stderr, "\nUsage: dsdgo [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	log, err := logging.New(logging.Options{Level: *logLevel, File: *logFile, Prefix: "dsdgo"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dsdgo: logger: %v\n", err)
		os.Exit(1)
	}

	cfgFile, err := config.Load(*configFile)
	if err != nil {
		log.Errorf("config: %v", err)
		os.Exit(1)
	}

	opts := core.NewOpts()
	opts.SetLogger(log)
	cfgFile.ApplyTo(opts)

	if *scopeWSAddr == "" {
		*scopeWSAddr = cfgFile.Diag.ScopeWSAddr
	}
	if *metricsAddr == "" {
		*metricsAddr = cfgFile.Diag.MetricsAddr
	}
	if *mqttBroker == "" {
		*mqttBroker = cfgFile.MQTT.Broker
	}
	if cfgFile.MQTT.Topic != "" && !pflag.CommandLine.Changed("mqtt-topic") {
		*mqttTopic = cfgFile.MQTT.Topic
	}
	if !*mdnsEnabled {
		*mdnsEnabled = cfgFile.MDNSEnabled
	}
	if *gpioChip == "" {
		*gpioChip = cfgFile.GPIO.Chip
		*gpioLine = cfgFile.GPIO.Line
	}
	if *rigDevice == "" {
		*rigDevice = cfgFile.RigDevice
	}
	if cfgFile.Audio.Device != "" && *audioDevice == "" {
		*audioDevice = cfgFile.Audio.Device
	}

	dpll := slicer.NewDPLL(*audioSampleRate, 4800)
	dec := core.NewDecoder(opts, dpll)
	dec.SetLogger(log)
	dec.WireDefaults()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var closers []func() error

	if *metricsAddr != "" {
		metrics := diag.NewMetrics()
		dec.SetObserver(chain(dec, metrics.Observe))
		mux := http.NewServeMux()
		mux.Handle("/metrics", diag.Handler())
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnf("diag: metrics server stopped: %v", err)
			}
		}()
		closers = append(closers, func() error { return srv.Close() })
		log.Infof("diag: metrics on http://%s/metrics", *metricsAddr)
	}

	if *scopeWSAddr != "" {
		hub := diag.NewScopeHub()
		dec.SetObserver(chain(dec, hub.Observe))
		mux := http.NewServeMux()
		mux.Handle("/scope", hub)
		srv := &http.Server{Addr: *scopeWSAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnf("diag: scope server stopped: %v", err)
			}
		}()
		closers = append(closers, func() error { return srv.Close() })
		log.Infof("diag: scope feed on ws://%s/scope", *scopeWSAddr)

		if *mdnsEnabled {
			_, port, err := splitHostPort(*scopeWSAddr)
			if err != nil {
				log.Warnf("discovery: %v", err)
			} else if err := discovery.Announce(ctx, log, "", port); err != nil {
				log.Warnf("discovery: %v", err)
			}
		}
	}

	if *mqttBroker != "" {
		pub, err := events.NewPublisher(events.Config{Broker: *mqttBroker, TopicPrefix: *mqttTopic}, log)
		if err != nil {
			log.Warnf("events: %v", err)
		} else {
			dec.SetObserver(chain(dec, pub.Observe))
			closers = append(closers, func() error { pub.Close(); return nil })
		}
	}

	if *gpioChip != "" {
		ind, err := hooks.NewGPIOIndicator(*gpioChip, *gpioLine)
		if err != nil {
			log.Warnf("hooks: gpio: %v", err)
		} else {
			dec.SetObserver(chain(dec, ind.Observe))
			closers = append(closers, ind.Close)
		}
	}

	if *rigDevice != "" {
		rig, err := hooks.NewRigController(*rigModel, *rigDevice)
		if err != nil {
			log.Warnf("hooks: rig: %v", err)
		} else {
			dec.SetObserver(chain(dec, rig.Observe))
			closers = append(closers, rig.Close)
		}
	}

	if *serialPTTDevice != "" {
		ptt, err := hooks.NewSerialPTT(*serialPTTDevice)
		if err != nil {
			log.Warnf("hooks: serial ptt: %v", err)
		} else {
			dec.SetObserver(chain(dec, ptt.Observe))
			closers = append(closers, ptt.Close)
		}
	}

	if *ptyMirror {
		mir, err := ptymirror.Open()
		if err != nil {
			log.Warnf("ptymirror: %v", err)
		} else {
			log.Infof("ptymirror: status lines available on %s", mir.SlaveName())
			dec.SetObserver(chain(dec, mir.Observe))
			closers = append(closers, mir.Close)
		}
	}

	pump, err := audio.Open(*audioDevice, *audioSampleRate, dec)
	if err != nil {
		log.Errorf("audio: %v", err)
		os.Exit(1)
	}
	closers = append(closers, pump.Close)

	log.Infof("dsdgo: listening for samples at %.0f Hz", *audioSampleRate)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if err := pump.Run(); err != nil {
				log.Warnf("audio: %v", err)
				return
			}
		}
	}()

	<-ctx.Done()
	log.Infof("dsdgo: shutting down")
	for _, c := range closers {
		_ = c()
	}
}

// chain composes a new observer out of the decoder's existing one (if
// any) and an additional one, so multiple ambient components can all
// receive every event without clobbering each other's registration.
func chain(d *core.Decoder, next core.Observer) core.Observer {
	prev := d.ObserverFunc()
	return func(ev core.Event) {
		if prev != nil {
			prev(ev)
		}
		next(ev)
	}
}

func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
