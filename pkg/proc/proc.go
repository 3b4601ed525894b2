package proc

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zdnscloud/cement/log"
)

const kbUnit = "kB"

// Status holds what the inspector gathered about the daemon process.
// Fields keeps the kernel's own labels (VmRSS, VmSize, Threads, ...) with
// kB sizes normalized to bytes.
type Status struct {
	PID    int64
	Fields map[string]int64
}

// Inspector reads the daemon's PID file and the matching process status
// pseudo file. Everything here is best effort: a stopped daemon or an
// unreadable /proc must not fail a metrics run.
type Inspector struct {
	pidFile  string
	procRoot string
}

func NewInspector(pidFile string) *Inspector {
	return &Inspector{pidFile: pidFile, procRoot: "/proc"}
}

// Inspect returns the gathered status, or ok=false when the PID file is
// absent or unreadable.
func (i *Inspector) Inspect() (*Status, bool) {
	data, err := ioutil.ReadFile(i.pidFile)
	if err != nil {
		log.Debugf("pid file %s not readable, skipping process stats: %s", i.pidFile, err.Error())
		return nil, false
	}

	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	pid, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		log.Debugf("pid file %s has no usable pid, skipping process stats", i.pidFile)
		return nil, false
	}

	status := &Status{PID: pid, Fields: make(map[string]int64)}
	statusPath := filepath.Join(i.procRoot, fmt.Sprintf("%d", pid), "status")
	f, err := os.Open(statusPath)
	if err != nil {
		log.Debugf("process status %s not readable: %s", statusPath, err.Error())
		return status, true
	}
	defer f.Close()

	parseStatus(f, status.Fields)
	return status, true
}

// parseStatus scans status lines of the form `Label: value [unit]`,
// keeping memory (Vm prefixed) and thread counts.
func parseStatus(r io.Reader, fields map[string]int64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		label := strings.TrimSuffix(parts[0], ":")
		if !strings.HasPrefix(label, "Vm") && label != "Threads" {
			continue
		}

		value, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		if len(parts) > 2 && parts[2] == kbUnit {
			value *= 1024
		}
		fields[label] = value
	}
}
