package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// saveDebounce collapses the burst of writes editors emit for one save.
const saveDebounce = 100 * time.Millisecond

// Watcher reports edited prefabs by the name Load takes ("player.yaml"), so
// a reload can go straight back through the prefab loader. Both channels
// close once the watcher stops.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	errs    chan error
	done    chan struct{}
	stop    sync.Once
}

// NewWatcher watches a prefab directory, normally the on-disk override
// directory "prefabs".
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fsw,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers prefab names. Drain it from the game loop without
// blocking.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors keeps only the latest undelivered watch error.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)
	defer close(w.errs)

	saves := debouncer{window: saveDebounce, last: map[string]time.Time{}}
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name, ok := prefabSave(ev)
			if !ok || !saves.allow(name, time.Now()) {
				continue
			}
			select {
			case w.changes <- name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// prefabSave maps a file event to the prefab it saved. Removals and
// non-yaml files (editor swap files, backups) are ignored.
func prefabSave(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return "", false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return cleanPrefabPath(filepath.Base(ev.Name)), true
	default:
		return "", false
	}
}

type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

// allow reports whether name is outside the window of its previous event.
func (d *debouncer) allow(name string, now time.Time) bool {
	if t, ok := d.last[name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[name] = now
	return true
}
