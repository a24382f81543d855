package main

import (
	"log/slog"
	"time"

	"mm-server/config"
	"mm-server/di"
	"mm-server/util"
)

func main() {
	config.LoadEnv()
	slog.SetDefault(util.NewLogger())

	if _, err := util.EnableFileLogging(config.LogDir()); err != nil {
		slog.Warn("file logging disabled", "err", err)
	}

	container := di.NewContainer(config.Env())

	container.StatsRefresherService.StartPeriodicJob(
		config.STATS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	container.MatrimonyHttpServer.Start()
}
