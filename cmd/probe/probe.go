package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zdnscloud/cement/log"

	"github.com/linkingthing/named-probe/config"
	"github.com/linkingthing/named-probe/pkg/metric"
)

var configFile string

const usageText = `usage: probe [-c probe.conf] <stat> [<zone>]

Prints one value for the requested named statistic and exits 0, or prints
-1 and exits 1 when the statistic is unavailable. <zone> defaults to the
global pseudo-zone.

Native stats:  success referral nxrrset nxdomain recursion failure
Derived stats: queries latency zones records pid Threads Vm*
`

func main() {
	flag.StringVar(&configFile, "c", "", "configure file path")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Print(usageText)
		os.Exit(0)
	}

	conf := loadConfig()
	if conf.Debug {
		log.InitLogger(log.Debug)
	} else {
		log.InitLogger(log.Info)
	}

	stat := flag.Arg(0)
	zone := flag.Arg(1)

	value, err := metric.NewResolver(conf).Resolve(stat, zone)
	if err != nil {
		exitOnError(err)
	}

	fmt.Println(value.String())
}

func loadConfig() *config.ProbeConfig {
	if configFile == "" {
		return config.Default()
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		log.InitLogger(log.Info)
		log.Fatalf("load config file failed: %s", err.Error())
	}

	return conf
}

func exitOnError(err error) {
	switch typed := err.(type) {
	case *metric.UnknownZoneError:
		log.Errorf(typed.Error())
	default:
		if err == metric.ErrNoStats || err == metric.ErrStatNotFound {
			fmt.Println("-1")
		} else {
			log.Fatalf(err.Error())
		}
	}
	os.Exit(1)
}
