package model

type GetCommunityRequest struct {
	ID string `uri:"id"`
}

type GetCommunityResponse Community

type GetCommunitiesRequest struct{}

type GetCommunitiesResponse []Community

type GetLeaderboardRequest struct{}

type GetLeaderboardResponse []LeaderboardRow
