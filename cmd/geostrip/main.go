package main

import (
	"flag"
	"fmt"
	"geostrip/geoip"
	"geostrip/strip"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Dependency injection composition root
func main() {
	logLevel := flag.String("loglevel", "warn", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %v <input.dat> <output.dat>\n", os.Args[0])
		os.Exit(1)
	}

	loglevel, _ := zerolog.ParseLevel(*logLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(loglevel).With().Timestamp().Logger()

	fs := strip.NewFileSystem()
	s := strip.NewStripper(logger, fs, geoip.DefaultCountries)

	stats, err := s.Strip(flag.Arg(0), flag.Arg(1))
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while stripping GeoIP data set")
	}

	fmt.Printf("Input: %v bytes\n", stats.InputBytes)
	fmt.Printf("Total entries: %v\n", stats.TotalEntries)
	for _, code := range stats.KeptCodes {
		fmt.Printf("  KEEP: %v\n", code)
	}
	fmt.Printf("Filtered entries: %v\n", stats.KeptEntries)
	fmt.Printf("Output: %v bytes (%.1f%% of original)\n", stats.OutputBytes, stats.Ratio())
}
