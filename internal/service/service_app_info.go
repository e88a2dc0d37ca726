package service

import "context"

type appInfoService struct {
	version string
}

// NewAppInfoService returns an AppInfoService reporting the given version.
func NewAppInfoService(version string) AppInfoService {
	return &appInfoService{version: version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
