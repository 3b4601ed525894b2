package rndc

import (
	"errors"
	"regexp"

	"github.com/zdnscloud/cement/shell"
)

// ErrTriggerFailed means the control tool ran but its output indicates the
// requested dump was not performed.
var ErrTriggerFailed = errors.New("control channel trigger failed")

// rndc reports problems on stdout and stderr in prose, there is no machine
// readable status. Keep the heuristic in one place so callers never match
// on tool output themselves.
var failureOutput = regexp.MustCompile(`(?i)failed|error|found`)

type Client struct {
	path string
	run  func(name string, args ...string) (string, error)
}

func NewClient(path string) *Client {
	return &Client{path: path, run: shell.Shell}
}

// Stats asks the daemon to write its statistics snapshot to the stats file
// configured in named.conf.
func (c *Client) Stats() error {
	return c.trigger("stats")
}

// DumpDB asks the daemon to dump zone and cache contents to the dump file
// configured in named.conf.
func (c *Client) DumpDB() error {
	return c.trigger("dumpdb")
}

func (c *Client) trigger(command string) error {
	out, err := c.run(c.path, command)
	if classifyTriggerOutput(out) == triggerFailed {
		return ErrTriggerFailed
	}
	if err != nil {
		return err
	}

	return nil
}

type triggerResult int

const (
	triggerOK triggerResult = iota
	triggerFailed
)

func classifyTriggerOutput(out string) triggerResult {
	if failureOutput.MatchString(out) {
		return triggerFailed
	}

	return triggerOK
}
