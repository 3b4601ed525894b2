package metric

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/zdnscloud/cement/log"
	"github.com/zdnscloud/cement/uuid"
	"github.com/zdnscloud/g53"

	"github.com/linkingthing/named-probe/config"
	"github.com/linkingthing/named-probe/pkg/latency"
	"github.com/linkingthing/named-probe/pkg/proc"
	"github.com/linkingthing/named-probe/pkg/rndc"
	"github.com/linkingthing/named-probe/pkg/stats"
)

const (
	StatQueries = "queries"
	StatRecords = "records"
	StatLatency = "latency"
	StatZones   = "zones"
	StatPID     = "pid"
)

var (
	// ErrNoStats means the stats trigger failed and there is nothing to
	// report; callers print the -1 sentinel.
	ErrNoStats = errors.New("no statistics available from the daemon")

	// ErrStatsFileMissing is the fatal misconfiguration case: the trigger
	// succeeded but the stats file never appeared.
	ErrStatsFileMissing = errors.New("stats file was not created, check stats_file against named.conf")

	// ErrStatNotFound means the zone exists but carries no such metric;
	// callers print the -1 sentinel.
	ErrStatNotFound = errors.New("no such statistic")
)

// UnknownZoneError reports a requested zone that the daemon's stats dump
// knows nothing about, usually an operator typo.
type UnknownZoneError struct {
	Zone string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("zone %s not found in the stats dump, check the zone name against named.conf", e.Zone)
}

type triggerClient interface {
	Stats() error
	DumpDB() error
}

type latencyProber interface {
	Measure() float64
}

type processInspector interface {
	Inspect() (*proc.Status, bool)
}

// Resolver runs the acquisition pipeline and resolves one requested
// (stat, zone) pair per invocation.
type Resolver struct {
	conf   *config.ProbeConfig
	client triggerClient
	waiter *stats.FileWaiter

	prober    latencyProber
	inspector processInspector
	records   func() int64
	readFile  func(string) ([]byte, error)
}

func NewResolver(conf *config.ProbeConfig) *Resolver {
	client := rndc.NewClient(conf.RndcPath)
	waiter := stats.NewFileWaiter()
	counter := stats.NewRecordCounter(conf.DumpFile, client.DumpDB, waiter)
	return &Resolver{
		conf:      conf,
		client:    client,
		waiter:    waiter,
		prober:    latency.NewProber(conf.ServerIP, conf.ProbeName),
		inspector: proc.NewInspector(conf.PidFile),
		records:   counter.Count,
		readFile:  ioutil.ReadFile,
	}
}

// Snapshot triggers a stats dump and parses it into a fresh namespace.
// A failing trigger yields an empty namespace; a trigger that succeeds
// without producing the file is ErrStatsFileMissing.
func (r *Resolver) Snapshot() (stats.Namespace, error) {
	if err := r.waiter.Prepare(r.conf.StatsFile); err != nil {
		return nil, fmt.Errorf("remove stale stats file %s failed: %s", r.conf.StatsFile, err.Error())
	}
	if err := r.client.Stats(); err != nil {
		log.Warnf("stats trigger failed: %s", err.Error())
		return make(stats.Namespace), nil
	}
	if err := r.waiter.Wait(r.conf.StatsFile); err != nil {
		return nil, ErrStatsFileMissing
	}

	data, err := r.readFile(r.conf.StatsFile)
	if err != nil {
		return nil, fmt.Errorf("read stats file %s failed: %s", r.conf.StatsFile, err.Error())
	}

	return stats.Parse(string(data)), nil
}

// Resolve runs the whole pipeline for one request. Zone validity is
// checked against the namespace as parsed, before any synthetic global
// fields exist, so an operator typo fails before the measurement side
// effects run.
func (r *Resolver) Resolve(stat, zone string) (stats.Value, error) {
	var runID string
	if r.conf.Debug {
		runID, _ = uuid.Gen()
		log.Debugf("[%s] resolving stat %s zone %s", runID, stat, zone)
	}

	ns, err := r.Snapshot()
	if err != nil {
		return stats.Value{}, err
	}
	if len(ns) == 0 {
		return stats.Value{}, ErrNoStats
	}

	zone = CanonicalZone(zone)
	if !ns.HasZone(zone) {
		return stats.Value{}, &UnknownZoneError{Zone: zone}
	}
	zoneCount := ns.ZoneCount()

	ns.Set(stats.GlobalZone, StatLatency, stats.FloatValue(r.prober.Measure()))
	ns.Set(stats.GlobalZone, StatZones, stats.IntValue(zoneCount))
	if stat == StatRecords {
		ns.Set(stats.GlobalZone, StatRecords, stats.IntValue(r.records()))
	}
	ns.Set(zone, StatQueries, stats.IntValue(ns.Queries(zone)))

	if status, ok := r.inspector.Inspect(); ok {
		ns.Set(stats.GlobalZone, StatPID, stats.IntValue(status.PID))
		for label, value := range status.Fields {
			ns.Set(stats.GlobalZone, label, stats.IntValue(value))
		}
	}

	if r.conf.Debug {
		dumpNamespace(runID, ns)
	}

	value, ok := ns.Get(zone, stat)
	if !ok {
		return stats.Value{}, ErrStatNotFound
	}

	return value, nil
}

// CanonicalZone validates and normalizes a requested zone name. The
// reserved global key and names g53 rejects pass through unchanged; the
// latter simply fail the zone check afterwards.
func CanonicalZone(zone string) string {
	if zone == "" {
		return stats.GlobalZone
	}
	if zone == stats.GlobalZone {
		return zone
	}

	if _, err := g53.NameFromString(zone); err != nil {
		return zone
	}

	return strings.TrimSuffix(strings.ToLower(zone), ".")
}

func dumpNamespace(runID string, ns stats.Namespace) {
	for zone, zoneStats := range ns {
		for metric, value := range zoneStats {
			log.Debugf("[%s] %s.%s = %s", runID, zone, metric, value.String())
		}
	}
}
