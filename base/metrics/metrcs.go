/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mandinga/gateway/base/env"
	"github.com/mandinga/gateway/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

// Metrics prefixes keys with the package name and forwards to the shared client
type Metrics struct {
	pkgName string
	ddTags  []string
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum", key)
	cli := client()
	if err := cli.Count(mt.pkgName+`.`+key, int64(val), mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram", key)
	cli := client()
	if err := cli.Histogram(mt.pkgName+`.`+key, val, mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer, End() records the elapsed milliseconds:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + `.` + key,
		tags:  mt.tags(tags),
	}
}

func (mt *Metrics) tags(tags []string) []string {
	res := make([]string, 0, len(mt.ddTags)+len(tags)/2)
	res = append(res, mt.ddTags...)
	return append(res, parseTag(tags)...)
}

func (mt *Metrics) recoverBump(typ, key string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": mt.pkgName + "." + key, "type": typ}).Error("metric panic")
	}
}

// parseTag turns key/value pairs into datadog `key:value` tags
func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Warn("tag length needs to be multiple of 2")
		tags = tags[:len(tags)-1]
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("metric panic")
		}
	}()
	d := time.Since(t.start)
	ms := float64(d) / float64(time.Millisecond)
	if err := client().TimeInMilliseconds(t.key, ms, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "tags": strings.Join(t.tags, ","), "func": "BumpTime"}).Error("Bump fail")
	}
}
