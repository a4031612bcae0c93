package extradata

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"vboxmanager/pkg/logging"
)

// Watch reloads the store whenever another process rewrites its file and
// then calls onChange. It returns once the watcher is running; watching
// stops when ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	logging.Debug(subsystem, "Watching %s", dir)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Writes land through a rename of the temp file.
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if err := s.Reload(ctx); err != nil {
					logging.Warn(subsystem, "Failed to reload %s: %v", s.path, err)
					continue
				}
				if onChange != nil {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn(subsystem, "File watcher error: %v", err)
			}
		}
	}()
	return nil
}
