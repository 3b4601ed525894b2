package config

import (
	"os"

	"github.com/zdnscloud/cement/configure"
)

const (
	defaultRndcPath   = "/usr/sbin/rndc"
	defaultStatsFile  = "/var/named/data/named_stats.txt"
	defaultDumpFile   = "/var/named/data/cache_dump.db"
	defaultPidFile    = "/var/run/named/named.pid"
	defaultServerIP   = "127.0.0.1"
	defaultProbeName  = "www.example.com."
	defaultExportPort = 8601
	defaultPeriod     = 30
)

type ProbeConfig struct {
	Path      string       `yaml:"-"`
	RndcPath  string       `yaml:"rndc_path"`
	StatsFile string       `yaml:"stats_file"`
	DumpFile  string       `yaml:"dump_file"`
	PidFile   string       `yaml:"pid_file"`
	ServerIP  string       `yaml:"server_ip"`
	ProbeName string       `yaml:"probe_name"`
	Debug     bool         `yaml:"debug"`
	Exporter  ExporterConf `yaml:"exporter"`
}

type ExporterConf struct {
	Port   uint32 `yaml:"port"`
	Node   string `yaml:"node"`
	Period uint32 `yaml:"period"`
}

func LoadConfig(path string) (*ProbeConfig, error) {
	var conf ProbeConfig
	conf.Path = path
	if err := conf.Reload(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *ProbeConfig) Reload() error {
	var newConf ProbeConfig
	if err := configure.Load(&newConf, c.Path); err != nil {
		return err
	}

	newConf.Path = c.Path
	newConf.fillDefaults()
	*c = newConf
	return nil
}

// Default returns a configuration usable without a config file, so the
// probe keeps working when invoked bare by a monitoring agent.
func Default() *ProbeConfig {
	var conf ProbeConfig
	conf.fillDefaults()
	return &conf
}

func (c *ProbeConfig) fillDefaults() {
	if c.RndcPath == "" {
		c.RndcPath = defaultRndcPath
	}
	if c.StatsFile == "" {
		c.StatsFile = defaultStatsFile
	}
	if c.DumpFile == "" {
		c.DumpFile = defaultDumpFile
	}
	if c.PidFile == "" {
		c.PidFile = defaultPidFile
	}
	if c.ServerIP == "" {
		c.ServerIP = defaultServerIP
	}
	if c.ProbeName == "" {
		c.ProbeName = defaultProbeName
	}
	if c.Exporter.Port == 0 {
		c.Exporter.Port = defaultExportPort
	}
	if c.Exporter.Period == 0 {
		c.Exporter.Period = defaultPeriod
	}
	if c.Exporter.Node == "" {
		if hostname, err := os.Hostname(); err == nil {
			c.Exporter.Node = hostname
		}
	}
	if os.Getenv("PROBE_DEBUG") == "1" {
		c.Debug = true
	}
}
