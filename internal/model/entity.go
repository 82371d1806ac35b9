package model

import (
	"time"

	"gorm.io/gorm"
)

// User 사용자
type User struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OauthID         string         `gorm:"type:varchar(255);not null;uniqueIndex:uk_user_provider_oauth" json:"oauth_id"`
	Provider        string         `gorm:"type:varchar(50);not null;uniqueIndex:uk_user_provider_oauth" json:"provider"`
	Email           *string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	Nickname        string         `gorm:"type:varchar(100)" json:"nickname"`
	ProfileImageURL *string        `gorm:"type:text" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	HostedRooms  []Room            `gorm:"foreignKey:HostID" json:"hosted_rooms,omitempty"`
	Participants []RoomParticipant `gorm:"foreignKey:UserID" json:"participants,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Room 방
//
// InviteCode는 공개/비공개 여부와 무관하게 발급되며 살아있는 방 전체에서
// 유일하다. nullable unique index이므로 삭제 시 NULL로 풀면 코드가 재사용
// 가능해진다.
type Room struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	IsPrivate   bool           `gorm:"not null;default:false" json:"is_private"`
	InviteCode  *string        `gorm:"type:varchar(16);uniqueIndex" json:"invite_code,omitempty"`
	Thumbnail   *string        `gorm:"type:text" json:"thumbnail,omitempty"`
	HostID      int64          `gorm:"not null;index" json:"host_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	Host         User              `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Participants []RoomParticipant `gorm:"foreignKey:RoomID" json:"participants,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomParticipant 방 참가자
//
// 호스트는 참가자 행을 가지지 않는다 (Room.HostID가 암묵 멤버십).
// (room_id, user_id) unique index가 동시 join 경합의 최종 방어선이다.
type RoomParticipant struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    int64          `gorm:"not null;uniqueIndex:uk_room_participant" json:"room_id"`
	UserID    int64          `gorm:"not null;uniqueIndex:uk_room_participant" json:"user_id"`
	JoinedAt  time.Time      `gorm:"autoCreateTime" json:"joined_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RoomParticipant) TableName() string {
	return "room_participants"
}

// Notice 공지사항
type Notice struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string         `gorm:"type:varchar(200);not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Notice) TableName() string {
	return "notices"
}
