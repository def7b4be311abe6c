package application

import (
	"sale-alerts/services/scheduler"
	databases "sale-alerts/utils/databases"
	"sale-alerts/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	cron   gocron.Scheduler
	poller scheduler.Service
	db     databases.SqlConnection
	probes insights.Probes
}
