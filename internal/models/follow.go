package models

// Follow is a directed edge in the follow graph: Follower observes Followed.
// Only this direction is stored; the "followers" view is the reverse query
// over the same rows, so the two views cannot drift apart.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowedID uint `gorm:"primaryKey;autoIncrement:false" json:"followed_id"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
