/* Query or set the receiver's dynamic platform model over the serial
 * link. */
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	globe "github.com/uni-ro/GLoBe/src"
)

var layer_names = map[string]globe.CFGLayer{
	"ram":   globe.LAYER_RAM,
	"bbr":   globe.LAYER_BBR,
	"flash": globe.LAYER_FLASH,
}

func main() {
	var port = flag.StringP("port", "p", "/dev/ttyUSB0", "GNSS serial port")
	var baud = flag.IntP("baud", "b", 38400, "GNSS serial speed")
	var layerName = flag.StringP("layer", "l", "flash", "layer to read from: ram, bbr, flash")
	var set = flag.StringP("set", "s", "", "dynamic platform model to configure (e.g. air4)")
	var level = flag.StringP("verbosity", "v", "info", "diagnostics level")

	flag.Parse()

	globe.DiagInit(*level)

	var layer, layerOK = layer_names[*layerName]
	if !layerOK {
		fmt.Fprintf(os.Stderr, "globe-cfg: unknown layer %q\n", *layerName)
		os.Exit(1)
	}

	var fd, err = globe.OpenGNSS(*port, *baud)
	if err != nil {
		fmt.Fprintf(os.Stderr, "globe-cfg: %s\n", err)
		os.Exit(1)
	}

	var ring = globe.NewRingBuffer(globe.MAIN_BUFF_SIZE)

	globe.StartProducer(fd, ring)

	var receiver = globe.NewReceiver(ring, fd)

	if *set != "" {
		var model, modelErr = globe.DynModelByName(*set)
		if modelErr != nil {
			fmt.Fprintf(os.Stderr, "globe-cfg: %s\n", modelErr)
			os.Exit(1)
		}

		if cfgErr := receiver.ConfigureDynamicModel(model); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "globe-cfg: %s\n", cfgErr)
			os.Exit(1)
		}

		fmt.Printf("dynamic platform model set to %s\n", *set)
		return
	}

	var pairs, getErr = receiver.GetConfiguration(layer, 0x0000, []globe.CFGKey{globe.NAVSPG_DYNMODEL}, globe.DEFAULT_GET_TIMEOUT)
	if getErr != nil {
		fmt.Fprintf(os.Stderr, "globe-cfg: %s\n", getErr)
		os.Exit(1)
	}

	for _, pair := range pairs {
		if pair.Key == globe.NAVSPG_DYNMODEL {
			fmt.Printf("dynamic platform model (%s layer): %d\n", *layerName, pair.Value.U1())
			return
		}
	}

	fmt.Fprintf(os.Stderr, "globe-cfg: the reply did not contain the requested key\n")
	os.Exit(1)
}
