package proc

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zdnscloud/cement/log"
	ut "github.com/zdnscloud/cement/unittest"
)

func init() {
	log.InitLogger(log.Debug)
}

const sampleStatus = `Name:	named
State:	S (sleeping)
Pid:	1234
VmPeak:	  262144 kB
VmSize:	  204800 kB
VmRSS:	   51200 kB
VmLib:	    8192 kB
Threads:	7
SigQ:	0/15634
`

func writeFakeProc(t *testing.T, pid string, status string) *Inspector {
	dir, err := ioutil.TempDir("", "proc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	pidFile := filepath.Join(dir, "named.pid")
	if err := ioutil.WriteFile(pidFile, []byte(pid), 0644); err != nil {
		t.Fatal(err)
	}
	if status != "" {
		if err := os.MkdirAll(filepath.Join(dir, strings.TrimSpace(pid)), 0755); err != nil {
			t.Fatal(err)
		}
		if err := ioutil.WriteFile(filepath.Join(dir, strings.TrimSpace(pid), "status"), []byte(status), 0644); err != nil {
			t.Fatal(err)
		}
	}

	inspector := NewInspector(pidFile)
	inspector.procRoot = dir
	return inspector
}

func TestInspectProcess(t *testing.T) {
	inspector := writeFakeProc(t, "1234\n", sampleStatus)

	status, ok := inspector.Inspect()
	ut.Assert(t, ok, "inspection should succeed")
	ut.Assert(t, status.PID == 1234, "expected pid 1234, got %d", status.PID)
	ut.Assert(t, status.Fields["VmRSS"] == 51200*1024, "kB fields normalize to bytes, got %d", status.Fields["VmRSS"])
	ut.Assert(t, status.Fields["Threads"] == 7, "unitless fields pass through, got %d", status.Fields["Threads"])

	_, hasName := status.Fields["Name"]
	ut.Assert(t, !hasName, "only Vm* and Threads labels are kept")
	_, hasSigQ := status.Fields["SigQ"]
	ut.Assert(t, !hasSigQ, "only Vm* and Threads labels are kept")
}

func TestInspectMissingPidFile(t *testing.T) {
	inspector := NewInspector("/nonexistent/named.pid")
	_, ok := inspector.Inspect()
	ut.Assert(t, !ok, "missing pid file should skip inspection")
}

func TestInspectBadPidFile(t *testing.T) {
	inspector := writeFakeProc(t, "not-a-pid\n", "")
	_, ok := inspector.Inspect()
	ut.Assert(t, !ok, "unparseable pid file should skip inspection")
}

func TestInspectMissingStatusKeepsPid(t *testing.T) {
	inspector := writeFakeProc(t, "4321\n", "")

	status, ok := inspector.Inspect()
	ut.Assert(t, ok, "a dead process still reports its recorded pid")
	ut.Assert(t, status.PID == 4321, "expected pid 4321, got %d", status.PID)
	ut.Assert(t, len(status.Fields) == 0, "no status file means no memory fields")
}
