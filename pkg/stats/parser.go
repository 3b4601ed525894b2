package stats

import (
	"strings"
)

// summarySuffix marks the daemon's terminal summary section, reported
// under a pseudo-domain that never corresponds to a configured zone.
const summarySuffix = "_bind"

// Parse builds a Namespace from the text of a stats dump. Report framing
// (`---`/`+++` separators) and the summary section are dropped; two-field
// lines belong to the global zone, three-field lines to the named zone.
// Lines with any other shape are skipped rather than failing the parse.
func Parse(text string) Namespace {
	ns := make(Namespace)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			continue
		}
		if strings.HasSuffix(fields[len(fields)-1], summarySuffix) {
			continue
		}

		zone := GlobalZone
		if len(fields) == 3 {
			zone = fields[2]
		}
		ns.Set(zone, fields[0], IntValue(parseCount(fields[1])))
	}

	return ns
}

// parseCount reads the leading integer portion of s, the way the daemon's
// own tools treat counter fields: trailing junk is truncated and fully
// non-numeric input counts as zero.
func parseCount(s string) int64 {
	var n int64
	var i int
	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int64(s[i]-'0')
	}
	if negative {
		n = -n
	}

	return n
}
