package model

type JoinCommunityRequest struct {
	UserID      string `uri:"id"`
	CommunityID string `uri:"communityID"`
}

type JoinCommunityResponse struct {
	Message string `json:"message"`
}

type LeaveCommunityRequest struct {
	UserID      string `uri:"id"`
	CommunityID string `uri:"communityID"`
}

type LeaveCommunityResponse struct {
	Message string `json:"message"`
}
