package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/mandinga/gateway/base/log"
)

var (
	initOnce = sync.Once{}
	cli      statsCli

	// DdPort is the dogstatsd port of the agent
	DdPort = 8125
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// client connects to the datadog agent configured by `datadog_host` once.
// Without an agent the metrics are written to the debug log.
func client() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			cli = &LogClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		c, err := statsd.New(addr)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent")
			cli = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		cli = c
	})
	return cli
}
