package rndc

import (
	"testing"

	ut "github.com/zdnscloud/cement/unittest"
)

func TestClassifyTriggerOutput(t *testing.T) {
	failures := []string{
		"rndc: 'stats' failed: permission denied",
		"rndc: connect failed: connection refused",
		"ERROR: no control channel",
		"rndc.key: file not Found",
	}
	for _, out := range failures {
		ut.Assert(t, classifyTriggerOutput(out) == triggerFailed, "%q should classify as failed", out)
	}

	oks := []string{"", "statistics dumped\n"}
	for _, out := range oks {
		ut.Assert(t, classifyTriggerOutput(out) == triggerOK, "%q should classify as ok", out)
	}
}

func TestStatsTrigger(t *testing.T) {
	var gotArgs []string
	client := NewClient("/usr/sbin/rndc")
	client.run = func(name string, args ...string) (string, error) {
		gotArgs = append([]string{name}, args...)
		return "", nil
	}

	err := client.Stats()
	ut.Assert(t, err == nil, "stats trigger failed: %v", err)
	ut.Assert(t, len(gotArgs) == 2 && gotArgs[0] == "/usr/sbin/rndc" && gotArgs[1] == "stats",
		"unexpected command line %v", gotArgs)
}

func TestDumpTriggerFailureOutput(t *testing.T) {
	client := NewClient("/usr/sbin/rndc")
	client.run = func(string, ...string) (string, error) {
		return "rndc: 'dumpdb' failed: dump file not writable", nil
	}

	ut.Assert(t, client.DumpDB() == ErrTriggerFailed, "failure output should map to ErrTriggerFailed")
}
