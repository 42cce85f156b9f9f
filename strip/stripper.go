package strip

import (
	"fmt"
	"geostrip/geoip"

	"github.com/rs/zerolog"
)

// Stats describes one strip run.
type Stats struct {
	InputBytes   int
	TotalEntries int
	KeptEntries  int
	KeptCodes    []string
	OutputBytes  int
}

// Ratio returns the output size as a percentage of the input size.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}

	return float64(s.OutputBytes) / float64(s.InputBytes) * 100
}

// Stripper filters a GeoIP data file down to an allow-list of countries.
type Stripper interface {
	Strip(inputPath string, outputPath string) (Stats, error)
}

// NewStripper creates a Stripper that keeps only the entries whose country
// code is in keep.
func NewStripper(logger zerolog.Logger, fs FileSystem, keep geoip.CountrySet) Stripper {
	return &stripperImpl{logger: logger, fs: fs, keep: keep}
}

type stripperImpl struct {
	logger zerolog.Logger
	fs     FileSystem
	keep   geoip.CountrySet
}

// Strip reads the data set at inputPath, drops every entry whose country code
// is not in the allow-list, and writes the re-encoded remainder to
// outputPath. Entry order and payload bytes are preserved.
func (s *stripperImpl) Strip(inputPath string, outputPath string) (stats Stats, err error) {
	data, err := s.fs.ReadFile(inputPath)
	if err != nil {
		err = fmt.Errorf("error while reading %v: %v", inputPath, err)
		return
	}
	stats.InputBytes = len(data)
	s.logger.Info().Int("bytes", len(data)).Msgf("Read GeoIP data set from %v", inputPath)

	entries, err := geoip.ParseList(data)
	if err != nil {
		err = fmt.Errorf("error while parsing %v: %v", inputPath, err)
		return
	}
	stats.TotalEntries = len(entries)
	s.logger.Info().Int("entries", len(entries)).Msg("Parsed GeoIP data set")

	kept := geoip.Filter(entries, s.keep)
	stats.KeptEntries = len(kept)
	for _, entry := range kept {
		stats.KeptCodes = append(stats.KeptCodes, entry.CountryCode)
		s.logger.Debug().Msgf("Keeping entry %v", entry.CountryCode)
	}

	output := geoip.EncodeList(kept)
	stats.OutputBytes = len(output)

	if err = s.fs.WriteFile(outputPath, output); err != nil {
		err = fmt.Errorf("error while writing %v: %v", outputPath, err)
		return
	}
	s.logger.Info().Int("bytes", len(output)).Msgf("Wrote stripped GeoIP data set to %v", outputPath)

	return
}
