package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest  Code = 100001
	NotFound    Code = 100004
	Internal    Code = 100007
	Unavailable Code = 100008

	// Membership codes
	AlreadyMember Code = 200001
	NotMember     Code = 200002

	// Leaderboard codes
	AggregationFailure Code = 300001
)
