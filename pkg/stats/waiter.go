package stats

import (
	"errors"
	"os"
	"time"

	"github.com/zdnscloud/cement/log"
)

const (
	waitRetries  = 4
	waitInterval = 250 * time.Millisecond
)

// ErrFileNotCreated means the daemon never wrote the dump file within the
// wait budget. The file path in named.conf and the one configured here
// almost certainly disagree, so callers treat this as fatal.
var ErrFileNotCreated = errors.New("dump file was not created within the wait budget")

// FileWaiter waits for a dump file the daemon writes as a side effect of
// a control channel trigger. The clock and filesystem hooks exist so
// tests run without real sleeps.
type FileWaiter struct {
	retries  int
	interval time.Duration
	sleep    func(time.Duration)
	stat     func(string) (os.FileInfo, error)
	remove   func(string) error
}

func NewFileWaiter() *FileWaiter {
	return &FileWaiter{
		retries:  waitRetries,
		interval: waitInterval,
		sleep:    time.Sleep,
		stat:     os.Stat,
		remove:   os.Remove,
	}
}

// Prepare removes a stale copy of the dump file so a later existence
// check cannot observe the previous run's output. A missing file is fine.
func (w *FileWaiter) Prepare(path string) error {
	if err := w.remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Wait polls for the file to appear, sleeping a fixed interval between
// polls. The budget is small on purpose: the daemon writes the file
// immediately or not at all.
func (w *FileWaiter) Wait(path string) error {
	for i := 0; i < w.retries; i++ {
		if _, err := w.stat(path); err == nil {
			return nil
		}
		log.Debugf("dump file %s not present yet, poll %d of %d", path, i+1, w.retries)
		w.sleep(w.interval)
	}

	return ErrFileNotCreated
}
