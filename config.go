package main

import (
	"github.com/jessevdk/go-flags"
)

type config struct {
	ShowVersion bool   `long:"version" description:"Display version information and exit"`
	Debug       bool   `long:"debug" description:"Start in debug mode"`
	Listen      string `long:"listen" description:"Interface and port to listen on for API connections" default:"127.0.0.1:9363"`
	BusAddress  string `long:"bus" description:"Connect to a specific message bus address instead of the system bus"`
}

// loadConfig starts with a default configuration and applies any command line
// options on top of it.
func loadConfig() (*config, error) {
	cfg := &config{}

	parser := flags.NewParser(cfg, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
