package strip

import "io/ioutil"

// FileSystem is the interface for reading the input GeoIP data set and
// writing the stripped result.
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, buf []byte) error
}

// NewFileSystem creates an OS-backed FileSystem.
func NewFileSystem() FileSystem {
	return &fileSystemImpl{}
}

type fileSystemImpl struct{}

func (fs *fileSystemImpl) ReadFile(name string) (buf []byte, err error) {
	buf, err = ioutil.ReadFile(name)
	return
}

func (fs *fileSystemImpl) WriteFile(name string, buf []byte) (err error) {
	err = ioutil.WriteFile(name, buf, 0644)
	return
}
