package model

type Community struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type ExperiencePoint struct {
	ID        int64  `json:"id,string"`
	Points    int64  `json:"points"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"`
}

type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	ProfilePicture   string            `json:"profilePicture"`
	Community        *string           `json:"community"`
	ExperiencePoints []ExperiencePoint `json:"experiencePoints"`
}

// UserTotal is a user with the sum of all its experience points.
type UserTotal struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	ProfilePicture  string `json:"profilePicture"`
	TotalExperience int64  `json:"totalExperience"`
}

// LeaderboardRow is computed on every request or broadcast tick and never
// persisted.
type LeaderboardRow struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Logo                  string `json:"logo,omitempty"`
	TotalUsers            int64  `json:"totalUsers"`
	TotalExperiencePoints int64  `json:"totalExperiencePoints"`
}
