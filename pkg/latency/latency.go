package latency

import (
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/zdnscloud/cement/log"
)

const queryTimeout = 2 * time.Second

type dnsClient interface {
	Exchange(msg *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// Prober measures the round trip time of a single recursive query against
// the probed nameserver. The measurement deliberately includes failed and
// timed out queries: the observed latency is the point, not the answer.
type Prober struct {
	server string
	name   string

	newClient func(timeout time.Duration) dnsClient
}

func NewProber(serverIP, name string) *Prober {
	return &Prober{
		server: net.JoinHostPort(serverIP, "53"),
		name:   dns.Fqdn(name),
		newClient: func(timeout time.Duration) dnsClient {
			return &dns.Client{Net: "udp", ReadTimeout: timeout}
		},
	}
}

// Measure issues one A query and returns the wall clock elapsed seconds.
func (p *Prober) Measure() float64 {
	msg := new(dns.Msg)
	msg.SetQuestion(p.name, dns.TypeA)
	msg.RecursionDesired = true

	client := p.newClient(queryTimeout)
	start := time.Now()
	_, _, err := client.Exchange(msg, p.server)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		log.Debugf("latency query for %s against %s failed: %s", p.name, p.server, err.Error())
	}

	return elapsed
}
