package main

import (
	"flag"

	"github.com/zdnscloud/cement/log"

	"github.com/linkingthing/named-probe/config"
	"github.com/linkingthing/named-probe/pkg/metric"
)

var configFile string

func main() {
	flag.StringVar(&configFile, "c", "probe.conf", "configure file path")
	flag.Parse()

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		log.InitLogger(log.Info)
		log.Fatalf("load config file failed: %s", err.Error())
	}

	if conf.Debug {
		log.InitLogger(log.Debug)
	} else {
		log.InitLogger(log.Info)
	}

	log.Infof("exporting named stats for node %s on port %d", conf.Exporter.Node, conf.Exporter.Port)
	metric.NewHandler(conf).Run()
}
