package stats

import (
	"os"
	"testing"
	"time"

	ut "github.com/zdnscloud/cement/unittest"
)

type fakeFS struct {
	sleeps     int
	appearLate int
	polls      int
	removed    []string
	removeErr  error
}

func (f *fakeFS) waiter() *FileWaiter {
	w := NewFileWaiter()
	w.sleep = func(time.Duration) { f.sleeps++ }
	w.stat = func(string) (os.FileInfo, error) {
		f.polls++
		if f.appearLate > 0 && f.polls >= f.appearLate {
			return nil, nil
		}
		return nil, os.ErrNotExist
	}
	w.remove = func(path string) error {
		f.removed = append(f.removed, path)
		return f.removeErr
	}
	return w
}

func TestWaitFileAppears(t *testing.T) {
	fs := &fakeFS{appearLate: 3}
	err := fs.waiter().Wait("/tmp/named_stats.txt")
	ut.Assert(t, err == nil, "wait should succeed once the file appears: %v", err)
	ut.Assert(t, fs.sleeps == 2, "expected 2 sleeps before the third poll, got %d", fs.sleeps)
}

func TestWaitBudgetExhausted(t *testing.T) {
	fs := &fakeFS{}
	err := fs.waiter().Wait("/tmp/named_stats.txt")
	ut.Assert(t, err == ErrFileNotCreated, "exhausted budget should report ErrFileNotCreated, got %v", err)
	ut.Assert(t, fs.polls == waitRetries, "expected %d polls, got %d", waitRetries, fs.polls)
}

func TestPrepareRemovesStaleFile(t *testing.T) {
	fs := &fakeFS{}
	err := fs.waiter().Prepare("/tmp/named_stats.txt")
	ut.Assert(t, err == nil, "prepare failed: %v", err)
	ut.Assert(t, len(fs.removed) == 1 && fs.removed[0] == "/tmp/named_stats.txt",
		"prepare should remove the stale file")
}

func TestPrepareIgnoresAbsentFile(t *testing.T) {
	fs := &fakeFS{removeErr: os.ErrNotExist}
	err := fs.waiter().Prepare("/tmp/named_stats.txt")
	ut.Assert(t, err == nil, "absent stale file is not an error: %v", err)
}
