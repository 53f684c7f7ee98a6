package initializers

import (
	log "github.com/sirupsen/logrus"

	"page-control-backend/config"
	statscache "page-control-backend/lib/stats-cache"
)

// InitStatsCache is best effort, handlers fall back to direct reads when the
// cache is unavailable.
func InitStatsCache() {
	err := statscache.Connect(config.Conf.Redis.Addr, config.Conf.Redis.Password, config.Conf.Redis.DB)
	if err != nil {
		log.WithError(err).Warn("stats cache disabled, redis is unreachable")
		return
	}
	log.Info("stats cache initialized")
}
