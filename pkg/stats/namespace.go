package stats

import (
	"strconv"
)

// GlobalZone is the reserved zone key for server-wide metrics and for
// report lines that carry no zone field.
const GlobalZone = "global"

// NativeCounters are the per-zone counters the daemon reports directly.
// Their sum makes up the derived "queries" metric.
var NativeCounters = []string{"success", "referral", "nxrrset", "nxdomain", "recursion", "failure"}

// Value is a single metric value. Counters are integers, the latency
// probe yields seconds as a float; keeping the tag explicit avoids
// silently formatting one as the other.
type Value struct {
	intVal   int64
	floatVal float64
	isFloat  bool
}

func IntValue(v int64) Value {
	return Value{intVal: v}
}

func FloatValue(v float64) Value {
	return Value{floatVal: v, isFloat: true}
}

func (v Value) Int() int64 {
	if v.isFloat {
		return int64(v.floatVal)
	}
	return v.intVal
}

func (v Value) Float() float64 {
	if v.isFloat {
		return v.floatVal
	}
	return float64(v.intVal)
}

func (v Value) String() string {
	if v.isFloat {
		return strconv.FormatFloat(v.floatVal, 'f', 6, 64)
	}
	return strconv.FormatInt(v.intVal, 10)
}

// Namespace maps zone name to metric name to value. It is rebuilt from a
// fresh stats dump on every run; zones carry only the metrics the daemon
// happened to record.
type Namespace map[string]map[string]Value

func (ns Namespace) Set(zone, metric string, v Value) {
	zoneStats, ok := ns[zone]
	if !ok {
		zoneStats = make(map[string]Value)
		ns[zone] = zoneStats
	}
	zoneStats[metric] = v
}

func (ns Namespace) Get(zone, metric string) (Value, bool) {
	zoneStats, ok := ns[zone]
	if !ok {
		return Value{}, false
	}

	v, ok := zoneStats[metric]
	return v, ok
}

func (ns Namespace) HasZone(zone string) bool {
	_, ok := ns[zone]
	return ok
}

// ZoneCount counts distinct zone keys, the global pseudo-zone included.
func (ns Namespace) ZoneCount() int64 {
	return int64(len(ns))
}

// Queries sums the native counters for one zone, treating missing
// counters as zero.
func (ns Namespace) Queries(zone string) int64 {
	var total int64
	for _, counter := range NativeCounters {
		if v, ok := ns.Get(zone, counter); ok {
			total += v.Int()
		}
	}

	return total
}
