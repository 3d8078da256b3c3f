package models

import "time"

type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleTeacher    Role = "TEACHER"
	RoleDirector   Role = "DIRECTOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole validates a role value against the closed set.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleStudent, RoleTeacher, RoleDirector, RoleAdmin, RoleSuperAdmin:
		return Role(value), true
	}
	return "", false
}

// AtLeast reports whether the role grants every permission of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank(r) >= roleRank(other)
}

func roleRank(r Role) int {
	switch r {
	case RoleStudent:
		return 1
	case RoleTeacher:
		return 2
	case RoleDirector:
		return 3
	case RoleAdmin:
		return 4
	case RoleSuperAdmin:
		return 5
	}
	return 0
}

type InquiryStatus string

const (
	InquiryPending    InquiryStatus = "PENDING"
	InquiryInProgress InquiryStatus = "IN_PROGRESS"
	InquiryResolved   InquiryStatus = "RESOLVED"
)

func ParseInquiryStatus(value string) (InquiryStatus, bool) {
	switch InquiryStatus(value) {
	case InquiryPending, InquiryInProgress, InquiryResolved:
		return InquiryStatus(value), true
	}
	return "", false
}

type ChargeStatus string

const (
	ChargePending  ChargeStatus = "PENDING"
	ChargeApproved ChargeStatus = "APPROVED"
	ChargeRejected ChargeStatus = "REJECTED"
)

type HomeworkStatus string

const (
	HomeworkSubmitted HomeworkStatus = "SUBMITTED"
	HomeworkGrading   HomeworkStatus = "GRADING"
	HomeworkGraded    HomeworkStatus = "GRADED"
)

type MessageKind string

const (
	MessageSMS   MessageKind = "SMS"
	MessageKakao MessageKind = "KAKAO"
)

func ParseMessageKind(value string) (MessageKind, bool) {
	switch MessageKind(value) {
	case MessageSMS, MessageKakao:
		return MessageKind(value), true
	}
	return "", false
}

type User struct {
	ID              int64     `json:"id"`
	AcademyID       *int64    `json:"academyId,omitempty"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Role            Role      `json:"role"`
	Approved        bool      `json:"approved"`
	Points          int       `json:"points"`
	AIChatEnabled   bool      `json:"aiChatEnabled"`
	HomeworkEnabled bool      `json:"homeworkEnabled"`
	StudyEnabled    bool      `json:"studyEnabled"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Academy struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Student struct {
	UserID         int64  `json:"userId"`
	AcademyID      *int64 `json:"academyId,omitempty"`
	ClassID        *int64 `json:"classId,omitempty"`
	Grade          string `json:"grade,omitempty"`
	School         string `json:"school,omitempty"`
	AttendanceCode string `json:"attendanceCode,omitempty"`
}

type BotAssignment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	BotID     string    `json:"botId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Session struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	TokenHash string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

type Inquiry struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Contact     string        `json:"contact"`
	Subject     string        `json:"subject"`
	Body        string        `json:"body"`
	Status      InquiryStatus `json:"status"`
	Response    string        `json:"response,omitempty"`
	ResponderID *int64        `json:"responderId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type PointChargeRequest struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"userId"`
	Amount    int          `json:"amount"`
	Status    ChargeStatus `json:"status"`
	DecidedBy *int64       `json:"decidedBy,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type StoreProduct struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        int       `json:"price"`
	PointsPrice  int       `json:"pointsPrice"`
	Active       bool      `json:"active"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PricingPlan struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Currency        string    `json:"currency"`
	PriceMinorUnits int       `json:"priceMinorUnits"`
	Features        string    `json:"features,omitempty"`
	Featured        bool      `json:"featured"`
	DisplayOrder    int       `json:"displayOrder"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type KakaoChannel struct {
	ID           int64     `json:"id"`
	AcademyID    int64     `json:"academyId"`
	ChannelKey   string    `json:"channelKey"`
	SenderNumber string    `json:"senderNumber"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MessageLog struct {
	ID                int64       `json:"id"`
	AcademyID         *int64      `json:"academyId,omitempty"`
	ChannelKey        string      `json:"channelKey,omitempty"`
	Recipient         string      `json:"recipient"`
	Kind              MessageKind `json:"kind"`
	Body              string      `json:"body"`
	Status            string      `json:"status"`
	ProviderMessageID string      `json:"providerMessageId,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type HomeworkSubmission struct {
	ID            int64          `json:"id"`
	StudentID     int64          `json:"studentId"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	AttachmentURL string         `json:"attachmentUrl,omitempty"`
	Status        HomeworkStatus `json:"status"`
	Score         *int           `json:"score,omitempty"`
	Feedback      string         `json:"feedback,omitempty"`
	GradedBy      *int64         `json:"gradedBy,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type LandingPage struct {
	ID        int64     `json:"id"`
	AcademyID *int64    `json:"academyId,omitempty"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}
