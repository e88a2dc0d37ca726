package service

import (
	"github.com/clawdock/clawdock/internal/activity"
	"github.com/clawdock/clawdock/internal/logger"
)

type Services struct {
	ActivityService ActivityService
	AppInfoService  AppInfoService
}

func NewServices(activityLog activity.Log, version string, logger *logger.Logger) *Services {
	return &Services{
		ActivityService: NewActivityService(activityLog, logger),
		AppInfoService:  NewAppInfoService(version),
	}
}
