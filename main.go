package main

import (
	"net"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stationland/stationd/api"
	"github.com/stationland/stationd/statlog"
	"github.com/stationland/stationd/station"
	"github.com/stationland/stationd/wpa"
)

var (
	// Commit stores the current commit hash of this build. This should be set using -ldflags during compilation.
	Commit string
	// Version stores the version string of this build. This should be set using -ldflags during compilation.
	Version string
	// Date stores the date of this build. This should be set using -ldflags during compilation.
	Date string
)

// stationdMain is the true entry point for stationd. This is required since
// defers created in the top-level scope of a main method aren't executed if
// os.Exit() is called.
func stationdMain() error {
	statLog := statlog.New()

	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	log.AddHook(statLog)

	// Load CLI configuration and defaults
	cfg, err := loadConfig()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Errorf("Failed parsing arguments: %v", err)
	}

	// Set logger into debug mode if called with --debug
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Info("Setting debug mode.")
	}

	// Print version of the daemon
	log.Infof("Version %s (commit %s)", Version, Commit)
	log.Infof("Built on %s", Date)

	// Stop here if only version was requested
	if cfg.ShowVersion {
		return nil
	}

	// The station control binds to the supplicant through the message bus
	// and rebinds whenever the supplicant restarts.
	control := station.New(&station.Config{
		Registry: func() (station.ServiceRegistry, error) {
			return wpa.NewRegistry(&wpa.Config{
				Address: cfg.BusAddress,
				Logger:  log.WithField("system", "wpa"),
			})
		},
		Logger: log.WithField("system", "station"),
	})

	if !control.Initialize() {
		return errors.New("Could not initialize supplicant control")
	}

	log.Info("Registered for supplicant availability.")

	a := api.New(&api.Config{
		Station: control,
		StatLog: statLog,
		Log:     log.WithField("system", "api"),
	})

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return errors.Errorf("Could not listen on %v: %v", cfg.Listen, err)
	}

	defer func() {
		err := listener.Close()
		if err != nil {
			log.Errorf("Could not close api listener: %v", err)
		}
	}()

	go func() {
		log.Infof("Serving api on %v", cfg.Listen)

		err := a.Serve(listener)
		if err != nil {
			log.Errorf("Could not serve api: %v", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	<-signals

	log.Info("Received interrupt, shutting down.")

	return nil
}

func main() {
	err := stationdMain()
	if err != nil {
		log.Errorf("Failed running stationd: %v", err)
		os.Exit(1)
	}
}
