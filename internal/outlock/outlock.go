// Package outlock guards a generator output directory with an advisory
// flock(2) lock. The lock file records the PID of its holder, so a second
// generator pointed at the same directory can report who is using it.
//
// flock is advisory: processes that do not go through this package are free
// to ignore it.
package outlock

import (
	errs "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/go-stdlog/stdlog"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/heyvito/conbound/errors"
)

const FileName = "lock"

var ErrReleased = fmt.Errorf("lock has already been released")

// Lock is a held output directory lock.
type Lock struct {
	mu       sync.Mutex
	file     *os.File
	path     string
	released bool
}

// Acquire locks dir for the calling process. It returns a
// CannotAcquireBuildLock error when another live process holds the lock.
// A lock file left behind by a process that no longer holds the lock is taken
// over.
func Acquire(dir string, log stdlog.Logger) (*Lock, error) {
	if log == nil {
		log = stdlog.Discard
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	if err = syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		pid, _ := readPID(f)
		_ = f.Close()
		if errs.Is(err, syscall.EWOULDBLOCK) {
			return nil, errors.CannotAcquireBuildLock{PID: pid}
		}
		return nil, fmt.Errorf("failed locking %s: %w", path, err)
	}

	l := &Lock{file: f, path: path}
	pid, err := readPID(f)
	if err != nil {
		log.Warning("Ignoring unreadable lock file contents", "path", path, "err", err.Error())
		pid = 0
	}

	if pid != 0 && pid != os.Getpid() {
		// flock succeeded, so no other process holds the lock. A running
		// sibling under the recorded PID means the PID was reused.
		if held, err := heldBySibling(pid); err != nil {
			log.Warning("Could not inspect previous lock holder", "path", path, "previous_pid", pid, "err", err.Error())
		} else if held {
			log.Warning("Previous lock holder PID belongs to a running generator not holding the lock", "path", path, "previous_pid", pid)
		}
		log.Info("Taking over stale build lock", "path", path, "previous_pid", pid)
	}

	if err = l.writePID(os.Getpid()); err != nil {
		return nil, errs.Join(fmt.Errorf("failed writing current pid to lockfile: %w", err), l.Release())
	}
	log.Debug("Build lock acquired", "path", path)
	return l, nil
}

// heldBySibling reports whether pid is a running instance of the current
// executable.
func heldBySibling(pid int) (bool, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		if errs.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, err
	}
	running, err := proc.IsRunning()
	if err != nil || !running {
		return false, err
	}
	cmd, err := proc.CmdlineSlice()
	if err != nil || len(cmd) == 0 {
		// Zombies and processes we may not inspect cannot be holding our lock
		// in any useful way.
		return false, nil
	}
	self, err := os.Executable()
	if err != nil {
		return false, err
	}
	return cmd[0] == self, nil
}

func readPID(f *os.File) (int, error) {
	buf := make([]byte, 32)
	n, err := f.ReadAt(buf, 0)
	if err != nil && !errs.Is(err, io.EOF) {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(string(buf[:n])))
}

func (l *Lock) writePID(pid int) error {
	if err := l.file.Truncate(0); err != nil {
		return err
	}
	if _, err := l.file.WriteAt([]byte(strconv.Itoa(pid)+"\n"), 0); err != nil {
		return err
	}
	return l.file.Sync()
}

func (l *Lock) Path() string { return l.path }

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return ErrReleased
	}
	l.released = true

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		_ = l.file.Close()
		return err
	}
	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}
