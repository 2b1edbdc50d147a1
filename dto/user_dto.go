package dto

// UserStatsResponse summarizes a user's live contributions and rewards
type UserStatsResponse struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	StarsBalance int    `json:"starsBalance"`
	Ideas        int64  `json:"ideas"`
	SubIdeas     int64  `json:"subIdeas"`
	Proposals    int64  `json:"proposals"`
	Prototypes   int64  `json:"prototypes"`
}
