package maps

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

type FileKind int

const (
	MapFile FileKind = iota
	ScriptFile
)

// Change is a map or script file that was written, created, renamed or
// removed.
type Change struct {
	Path string
	Kind FileKind
}

// Watcher reports changed map and script files. Bursts of events for the
// same file inside watchDebounce collapse into one Change.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	done      chan struct{}
	closeOnce sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close is safe to call more than once. Changes and Errors are closed once
// the watch loop exits.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changes)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classify(ev)
			if !ok {
				continue
			}
			now := time.Now()
			if at, dup := seen[change.Path]; dup && now.Sub(at) < watchDebounce {
				continue
			}
			seen[change.Path] = now

			select {
			case w.Changes <- change:
			case <-w.done:
				return
			}
		}
	}
}

func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return Change{}, false
	}
	switch {
	case isSpecFile(ev.Name):
		return Change{Path: ev.Name, Kind: MapFile}, true
	case strings.EqualFold(filepath.Ext(ev.Name), ".tengo"):
		return Change{Path: ev.Name, Kind: ScriptFile}, true
	}
	return Change{}, false
}
