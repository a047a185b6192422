package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gioui.org/x/explorer"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"github.com/fsnotify/fsnotify"
)

// SeriesData is one state of the loaded data.
type SeriesData struct {
	// Path is the file the series was read from, if any.
	Path   string
	Series chart.Series
	// Err is the most recent load failure. Series still holds the last good data.
	Err error
}

type RWBox[T any] struct {
	t    T
	lock sync.RWMutex
}

func (r *RWBox[T]) Read(f func(*T)) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f(&r.t)
}

func (r *RWBox[T]) Write(f func(*T)) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f(&r.t)
}

type sources struct {
	current SeriesData
	// watched is the cleaned path reloaded on write, if any.
	watched string
	subs    map[chan SeriesData]struct{}
}

// Datasource loads series from files and streams, reloads watched files when they are
// written, and publishes every new state to its subscribers.
type Datasource struct {
	state   RWBox[sources]
	watcher *fsnotify.Watcher
	appCtx  context.Context
}

func NewDatasource(appCtx context.Context) (*Datasource, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating file watcher: %w", err)
	}
	d := &Datasource{
		watcher: watcher,
		appCtx:  appCtx,
	}
	d.state.Write(func(s *sources) {
		s.subs = map[chan SeriesData]struct{}{}
	})
	go d.watch()
	return d, nil
}

// Series streams the data, starting with the current state. It is suitable as a
// stream.Stream provider. The channel is closed when ctx is cancelled.
func (d *Datasource) Series(ctx context.Context) <-chan SeriesData {
	out := make(chan SeriesData, 1)
	d.state.Write(func(s *sources) {
		out <- s.current
		s.subs[out] = struct{}{}
	})
	go func() {
		<-ctx.Done()
		d.state.Write(func(s *sources) {
			delete(s.subs, out)
			close(out)
		})
	}()
	return out
}

// Current returns the most recent state.
func (d *Datasource) Current() SeriesData {
	var current SeriesData
	d.state.Read(func(s *sources) {
		current = s.current
	})
	return current
}

// publish replaces the current state. Subscribers that have not read the previous state
// only ever see the newest one.
func (d *Datasource) publish(data SeriesData) {
	d.state.Write(func(s *sources) {
		s.current = data
		for sub := range s.subs {
			select {
			case <-sub:
			default:
			}
			sub <- data
		}
	})
}

// fail records err against path without discarding the last good series.
func (d *Datasource) fail(path string, err error) {
	log.Printf("failed loading %q: %v", path, err)
	current := d.Current()
	current.Path = path
	current.Err = err
	d.publish(current)
}

// Open loads the CSV file at path and reloads it whenever it is written.
func (d *Datasource) Open(path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed resolving data file: %w", err)
	}
	if err := d.watchPath(path); err != nil {
		return err
	}
	return d.reload(path)
}

func (d *Datasource) watchPath(path string) error {
	var previous string
	d.state.Write(func(s *sources) {
		previous = s.watched
		s.watched = path
	})
	if previous != "" && filepath.Dir(previous) != filepath.Dir(path) {
		if err := d.watcher.Remove(filepath.Dir(previous)); err != nil {
			log.Printf("failed unwatching %q: %v", previous, err)
		}
	}
	// Watch the directory rather than the file, so that editors replacing the file
	// do not end the watch.
	if err := d.watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed watching %q: %w", path, err)
	}
	return nil
}

func (d *Datasource) reload(path string) error {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed opening data file: %w", err)
		d.fail(path, err)
		return err
	}
	defer f.Close()
	series, err := ReadSeries(NewLineReader(f))
	if err != nil {
		d.fail(path, err)
		return err
	}
	d.publish(SeriesData{Path: path, Series: series})
	return nil
}

// LoadFromStream reads a whole series from r and closes it. If r is a named file it is
// watched for changes afterwards.
func (d *Datasource) LoadFromStream(name string, r io.ReadCloser) error {
	if f, ok := r.(interface{ Name() string }); ok {
		r.Close()
		return d.Open(f.Name())
	}
	defer r.Close()
	series, err := ReadSeries(r)
	if err != nil {
		d.fail(name, err)
		return err
	}
	d.publish(SeriesData{Path: name, Series: series})
	return nil
}

// LoadFromFile asks the user for a CSV file and loads it in the background. The result
// arrives on the Series stream.
func (d *Datasource) LoadFromFile(expl *explorer.Explorer) {
	go func() {
		file, err := expl.ChooseFile(".csv")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				d.fail("", fmt.Errorf("failed browsing for file: %w", err))
			}
			return
		}
		d.LoadFromStream("chosen file", file)
	}()
}

func (d *Datasource) watchedPath() string {
	var path string
	d.state.Read(func(s *sources) {
		path = s.watched
	})
	return path
}

func (d *Datasource) watch() {
	defer d.watcher.Close()
	for {
		select {
		case <-d.appCtx.Done():
			return
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if path := d.watchedPath(); path != "" && filepath.Clean(ev.Name) == path {
				d.reload(path)
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("file watcher failed: %v", err)
		}
	}
}
