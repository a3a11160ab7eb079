package libgl

import (
	"crypto/md5"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"learn-gl/libio"
)

// ProgramCache stores linked program binaries on disk, keyed by the shader
// sources and the driver that produced them.
type ProgramCache struct {
	dir    string
	driver string
	MaxAge time.Duration
	now    func() time.Time
}

func NewProgramCache(dir, driver string) *ProgramCache {
	return &ProgramCache{
		dir:    dir,
		driver: driver,
		// The cache should expire after some time, since the driver might have
		// had an update and produce different code now
		MaxAge: 30 * 24 * time.Hour,
		now:    time.Now,
	}
}

func (cache *ProgramCache) Key(sources ...string) string {
	hasher := md5.New()
	for _, src := range sources {
		hasher.Write([]byte(src))
		hasher.Write([]byte{0})
	}
	hasher.Write([]byte(cache.driver))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (cache *ProgramCache) path(key string) string {
	return filepath.Join(cache.dir, key+".glp")
}

// Load creates a program from a cached binary. A binary the driver rejects
// is removed from the cache.
func (cache *ProgramCache) Load(key string) (uint32, bool) {
	prog, ok := cache.read(key)
	if !ok {
		return 0, false
	}

	id := gl.CreateProgram()
	gl.ProgramBinary(id, prog.Format, gl.Ptr(prog.Data), int32(len(prog.Data)))
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(id)
		os.Remove(cache.path(key))
		return 0, false
	}
	return id, true
}

// Store retrieves the binary of a linked program and writes it to disk.
// Failures are logged and otherwise ignored.
func (cache *ProgramCache) Store(key string, id uint32) {
	var length int32
	gl.GetProgramiv(id, gl.PROGRAM_BINARY_LENGTH, &length)
	if length <= 0 {
		return
	}
	buf := make([]byte, length)
	var format uint32
	gl.GetProgramBinary(id, length, &length, &format, gl.Ptr(buf))

	err := cache.write(key, &libio.ProgramBinary{Format: format, Data: buf[:length]})
	if err != nil {
		log.Printf("Could not write shader cache: %v\n", err)
	}
}

func (cache *ProgramCache) read(key string) (prog *libio.ProgramBinary, ok bool) {
	var err error
	defer func() {
		if err != nil {
			log.Printf("Could not read shader cache: %v\n", err)
		}
	}()

	path := cache.path(key)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	if cache.now().Sub(info.ModTime()) > cache.MaxAge {
		os.Remove(path)
		return nil, false
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	prog, err = libio.DecodeProgramBinary(file)
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, false
	}
	return prog, true
}

// write goes through a temporary file so a concurrent reader never sees a
// partial binary.
func (cache *ProgramCache) write(key string, prog *libio.ProgramBinary) error {
	if err := os.MkdirAll(cache.dir, 0755); err != nil {
		return fmt.Errorf("could not create shader cache directory: %w", err)
	}
	file, err := os.CreateTemp(cache.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	if err := libio.EncodeProgramBinary(file, prog); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), cache.path(key))
}
