package domain

import (
	"testing"

	"github.com/questx-lab/leaderboard/internal/model"
	"github.com/questx-lab/leaderboard/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_settingDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()

	resp, err := NewSettingDomain().Get(ctx, &model.GetSettingsRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.GetSettingsResponse{
		BroadcastInterval:   5,
		MaxDisplayedResults: 10,
		SocketPath:          "/",
	}, resp)
}
