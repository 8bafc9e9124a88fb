package main

import (
	"flag"
	"fmt"
	"os"

	chronos "github.com/reoring/chronos"
	"github.com/reoring/chronos/codec"
	"github.com/reoring/chronos/tz"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "zones":
		zonesCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "chronos CLI\n\nUsage:\n  chronos zones -catalogue zones.yaml\n  chronos convert -at 2013-03-04T20:21:00+01:00 -zone UTC-07\n\nNotes:\n  - zones lists the ids of a YAML zone catalogue with their version.\n  - convert re-expresses an ISO-8601 offset date-time in another zone.")
}

func zonesCmd(args []string) {
	fs := flag.NewFlagSet("zones", flag.ExitOnError)
	var path string
	fs.StringVar(&path, "catalogue", "", "path to a YAML zone catalogue")
	_ = fs.Parse(args)
	if path == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	src, err := tz.LoadMapSource(data)
	if err != nil {
		fatal(err)
	}
	cache, err := tz.NewCache(src)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("version %s\n", cache.VersionID())
	for _, id := range cache.IDs() {
		zone, err := cache.Get(id)
		if err != nil {
			fatal(err)
		}
		off, err := zone.OffsetAt(chronos.UnixEpoch)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%-32s %s\n", id, codec.FormatOffset(off))
	}
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var at, zoneID, catalogue string
	fs.StringVar(&at, "at", "", "ISO-8601 offset date-time to convert")
	fs.StringVar(&zoneID, "zone", "UTC", "target zone id (fixed-offset ids always work)")
	fs.StringVar(&catalogue, "catalogue", "", "optional YAML zone catalogue for named zones")
	_ = fs.Parse(args)
	if at == "" {
		fs.Usage()
		os.Exit(2)
	}

	value, err := codec.ParseOffsetDateTime(at)
	if err != nil {
		fatal(err)
	}

	var src tz.Source = tz.NewMapSource("builtin", "", map[string]tz.Zone{})
	if catalogue != "" {
		data, err := os.ReadFile(catalogue)
		if err != nil {
			fatal(err)
		}
		if src, err = tz.LoadMapSource(data); err != nil {
			fatal(err)
		}
	}
	cache, err := tz.NewCache(src)
	if err != nil {
		fatal(err)
	}
	zone, err := cache.Get(zoneID)
	if err != nil {
		fatal(err)
	}
	offset, err := zone.OffsetAt(value.ToInstant())
	if err != nil {
		fatal(err)
	}
	moved, err := value.WithOffset(offset)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s = %s in %s\n", codec.FormatOffsetDateTime(value), codec.FormatOffsetDateTime(moved), zone.ID())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "chronos:", err)
	os.Exit(1)
}
