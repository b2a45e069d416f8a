/* GLoBe - host driver for a u-blox NEO-M9N class GNSS receiver. */
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	globe "github.com/uni-ro/GLoBe/src"
)

func main() {
	var configPath = flag.StringP("config", "c", "", "path to the YAML host configuration file")
	var port = flag.StringP("port", "p", "", "GNSS serial port (overrides the config file)")
	var baud = flag.IntP("baud", "b", 0, "GNSS serial speed (overrides the config file)")
	var level = flag.StringP("verbosity", "v", "", "diagnostics level: debug, info, warn, error")

	flag.Parse()

	var cfg, err = globe.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "globe: %s\n", err)
		os.Exit(1)
	}

	if *port != "" {
		cfg.GNSSPort = *port
	}

	if *baud != 0 {
		cfg.GNSSSpeed = *baud
	}

	if *level != "" {
		cfg.DiagLevel = *level
	}

	if err := globe.GlobeMain(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "globe: %s\n", err)
		os.Exit(1)
	}
}
