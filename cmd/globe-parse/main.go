/* Offline NMEA log reader: feed captured receiver output through the
 * sentence dispatcher and print what it carries. */
package main

import (
	"bufio"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/tzneal/coordconv"

	globe "github.com/uni-ro/GLoBe/src"
)

func main() {
	var utm = flag.BoolP("utm", "u", false, "also print UTM coordinates for each fix")
	var mgrs = flag.BoolP("mgrs", "m", false, "also print the MGRS grid reference for each fix")

	flag.Parse()

	var in = os.Stdin

	if flag.NArg() == 1 {
		var f, err = os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "globe-parse: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else if flag.NArg() > 1 {
		usage()
		os.Exit(1)
	}

	var scanner = bufio.NewScanner(in)

	for scanner.Scan() {
		var line = scanner.Text()
		if line == "" {
			continue
		}

		if t, err := globe.Time(line); err == nil {
			if utc, ok := t.GetTime().Get(); ok {
				fmt.Printf("time %s\n", utc)
			}
		}

		var pos, err = globe.Position(line)
		if err != nil {
			continue
		}

		var latlng, ok = globe.PosLatLng(pos)
		if !ok {
			continue
		}

		fmt.Printf("fix  lat %.6f lon %.6f\n", latlng.Lat.Degrees(), latlng.Lng.Degrees())

		if p3d, err := globe.Position3D(line); err == nil {
			if alt, ok := p3d.GetAltitude().Get(); ok {
				fmt.Printf("     alt %.1f\n", alt)
			}
		}

		if *utm {
			var coord, utmErr = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
			if utmErr == nil {
				fmt.Printf("     utm zone %d easting %.0f northing %.0f\n", coord.Zone, coord.Easting, coord.Northing)
			}
		}

		if *mgrs {
			var coord, mgrsErr = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(latlng, 5)
			if mgrsErr == nil {
				fmt.Printf("     mgrs %s\n", coord)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "globe-parse: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("Parse captured NMEA receiver output\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tglobe-parse [-u] [-m] [logfile]\n")
	fmt.Printf("\n")
	fmt.Printf("Reads from stdin when no log file is given.\n")
}
