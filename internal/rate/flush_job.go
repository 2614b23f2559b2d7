package rate

import (
	"github.com/sirupsen/logrus"
)

// FlushCachedRates drops the whole cache. Entries have no TTL of their own;
// this job is how an operator opts into periodic invalidation.
func FlushCachedRates(execID string, cache *Cache) {
	count := cache.Len()
	if count == 0 {
		logrus.Debugf("Nothing to flush this time; execID: %s", execID)
		return
	}
	cache.FlushRates()
	logrus.Infof("%d cached rates were flushed; execID: %s", count, execID)
}
