package libgl

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reloads shaders whose source files change on disk.
//
// The fsnotify goroutine only records changed paths; Poll has to be called
// from the GL thread and does the actual recompilation.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	shaders map[string][]*Shader
	changed chan string
	done    chan struct{}
}

func NewShaderWatcher() (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	sw := &ShaderWatcher{
		watcher: w,
		shaders: map[string][]*Shader{},
		changed: make(chan string, 64),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Watch registers both source files of a shader. Directories are watched
// rather than files, since many editors save by replacing the file.
func (sw *ShaderWatcher) Watch(s *Shader) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	for _, p := range []string{s.VertexPath, s.FragmentPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		if err := sw.watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		sw.shaders[abs] = append(sw.shaders[abs], s)
	}
	return nil
}

func (sw *ShaderWatcher) run() {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			sw.mu.Lock()
			_, known := sw.shaders[abs]
			sw.mu.Unlock()
			if !known {
				continue
			}
			select {
			case sw.changed <- abs:
			default:
				// render loop is behind, drop the event
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("shader watcher: %v\n", err)
		}
	}
}

// Changed drains all paths reported since the last call without blocking.
func (sw *ShaderWatcher) Changed() []string {
	var paths []string
	seen := map[string]bool{}
	for {
		select {
		case p := <-sw.changed:
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		default:
			return paths
		}
	}
}

// Poll reloads every shader affected by a change and returns how many
// reloads succeeded. A failed reload keeps the previous program.
// A nil watcher does nothing.
func (sw *ShaderWatcher) Poll() int {
	if sw == nil {
		return 0
	}
	paths := sw.Changed()
	if len(paths) == 0 {
		return 0
	}

	var pending []*Shader
	sw.mu.Lock()
	for _, p := range paths {
		for _, s := range sw.shaders[p] {
			dup := false
			for _, q := range pending {
				dup = dup || q == s
			}
			if !dup {
				pending = append(pending, s)
			}
		}
	}
	sw.mu.Unlock()

	reloaded := 0
	for _, s := range pending {
		if err := s.Reload(); err != nil {
			log.Printf("reload failed, keeping previous program: %v\n", err)
			continue
		}
		log.Printf("reloaded %v shader\n", s.Name())
		reloaded++
	}
	return reloaded
}

func (sw *ShaderWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}
