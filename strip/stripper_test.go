package strip

import (
	"fmt"
	"geostrip/geoip"
	"geostrip/testutils"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockFileSystem struct {
	files map[string][]byte
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{files: make(map[string][]byte)}
}

func (mfs *mockFileSystem) ReadFile(filename string) (buf []byte, err error) {
	if data, ok := mfs.files[filename]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("no such file: %v", filename)
}

func (mfs *mockFileSystem) WriteFile(filename string, buf []byte) error {
	mfs.files[filename] = buf
	return nil
}

func TestStripEndToEnd(t *testing.T) {
	assert := assert.New(t)

	// Arrange: entry A carries country code "US", entry B carries "ZZ".
	logger := testutils.NewTestLogger(t)
	mfs := newMockFileSystem()
	mfs.files["geoip.dat"] = []byte("\x0a\x04\x0a\x02US\x0a\x04\x0a\x02ZZ")
	s := NewStripper(logger, mfs, geoip.DefaultCountries)

	// Act
	stats, err := s.Strip("geoip.dat", "geoip-stripped.dat")

	// Assert: only the US entry survives, bytes regenerated identically.
	assert.Nil(err)
	assert.Equal([]byte("\x0a\x04\x0a\x02US"), mfs.files["geoip-stripped.dat"])
	assert.Equal(12, stats.InputBytes)
	assert.Equal(2, stats.TotalEntries)
	assert.Equal(1, stats.KeptEntries)
	assert.Equal([]string{"US"}, stats.KeptCodes)
	assert.Equal(6, stats.OutputBytes)
	assert.Equal(50.0, stats.Ratio())
}

func TestStripAllEntriesKept(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	mfs := newMockFileSystem()
	input := []byte("\x0a\x04\x0a\x02DE\x0a\x04\x0a\x02fr")
	mfs.files["geoip.dat"] = input
	s := NewStripper(logger, mfs, geoip.DefaultCountries)

	// Act
	stats, err := s.Strip("geoip.dat", "out.dat")

	// Assert: with every present code allowed, output is byte-identical.
	assert.Nil(err)
	assert.Equal(input, mfs.files["out.dat"])
	assert.Equal([]string{"DE", "fr"}, stats.KeptCodes)
	assert.Equal(100.0, stats.Ratio())
}

func TestStripMissingInput(t *testing.T) {
	assert := assert.New(t)

	logger := testutils.NewTestLogger(t)
	mfs := newMockFileSystem()
	s := NewStripper(logger, mfs, geoip.DefaultCountries)

	_, err := s.Strip("missing.dat", "out.dat")

	assert.NotNil(err)
	assert.NotContains(mfs.files, "out.dat")
}

func TestStripMalformedInput(t *testing.T) {
	assert := assert.New(t)

	// Arrange: length prefix declares more bytes than the file holds.
	logger := testutils.NewTestLogger(t)
	mfs := newMockFileSystem()
	mfs.files["geoip.dat"] = []byte{0x0a, 0x7f, 0x0a, 0x02}
	s := NewStripper(logger, mfs, geoip.DefaultCountries)

	// Act
	_, err := s.Strip("geoip.dat", "out.dat")

	// Assert: parse errors abort the run before anything is written.
	assert.NotNil(err)
	assert.NotContains(mfs.files, "out.dat")
}

func TestStripEmptyInput(t *testing.T) {
	assert := assert.New(t)

	logger := testutils.NewTestLogger(t)
	mfs := newMockFileSystem()
	mfs.files["geoip.dat"] = []byte{}
	s := NewStripper(logger, mfs, geoip.DefaultCountries)

	stats, err := s.Strip("geoip.dat", "out.dat")

	assert.Nil(err)
	assert.Equal(0, stats.TotalEntries)
	assert.Equal(0, stats.KeptEntries)
	assert.Equal([]byte{}, mfs.files["out.dat"])
	assert.Equal(0.0, stats.Ratio())
}
