package domain

import (
	"context"

	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

type SettingDomain interface {
	Get(context.Context, *model.GetSettingsRequest) (*model.GetSettingsResponse, error)
}

type settingDomain struct{}

func NewSettingDomain() SettingDomain {
	return &settingDomain{}
}

func (d *settingDomain) Get(
	ctx context.Context, req *model.GetSettingsRequest,
) (*model.GetSettingsResponse, error) {
	cfg := xcontext.Configs(ctx).Leaderboard
	return &model.GetSettingsResponse{
		BroadcastInterval:   int(cfg.BroadcastInterval.Seconds()),
		MaxDisplayedResults: cfg.MaxDisplayedResults,
		SocketPath:          cfg.WebsocketPath,
	}, nil
}
