package model

type GetUserRequest struct {
	ID string `uri:"id"`
}

type GetUserResponse User

type GetUsersRequest struct{}

type GetUsersResponse []UserTotal
