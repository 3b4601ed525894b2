package stats

import (
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/zdnscloud/cement/log"
)

// RecordNotCounted is the sentinel reported when the zone dump could not
// be triggered or read.
const RecordNotCounted = -1

var recordLine = regexp.MustCompile(`\bIN\s+(NS|A|MX|AAAA|PTR)\b`)

// RecordCounter counts resource records from a full zone and cache dump.
// Dumping every zone is expensive on servers with large zone sets, so
// this runs only when the records metric is explicitly requested.
type RecordCounter struct {
	dumpFile string
	trigger  func() error
	waiter   *FileWaiter
	readFile func(string) ([]byte, error)
}

func NewRecordCounter(dumpFile string, trigger func() error, waiter *FileWaiter) *RecordCounter {
	return &RecordCounter{
		dumpFile: dumpFile,
		trigger:  trigger,
		waiter:   waiter,
		readFile: ioutil.ReadFile,
	}
}

func (c *RecordCounter) Count() int64 {
	if err := c.waiter.Prepare(c.dumpFile); err != nil {
		log.Warnf("remove stale zone dump %s failed: %s", c.dumpFile, err.Error())
		return RecordNotCounted
	}
	if err := c.trigger(); err != nil {
		log.Warnf("trigger zone dump failed: %s", err.Error())
		return RecordNotCounted
	}
	if err := c.waiter.Wait(c.dumpFile); err != nil {
		log.Warnf("wait for zone dump %s failed: %s", c.dumpFile, err.Error())
		return RecordNotCounted
	}

	data, err := c.readFile(c.dumpFile)
	if err != nil {
		log.Warnf("read zone dump %s failed: %s", c.dumpFile, err.Error())
		return RecordNotCounted
	}

	var count int64
	for _, line := range strings.Split(string(data), "\n") {
		if recordLine.MatchString(line) {
			count++
		}
	}

	return count
}
