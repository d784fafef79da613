package dto

import (
	"time"

	"doctor-directory-bff/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SelectSlotRequest struct {
	Slot string `json:"slot" validate:"required,max=32"`
}

// Response DTOs

// Notice is a message the app must show, blocking where it says so.
type Notice struct {
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// Navigation tells the app which screen to open next.
type Navigation struct {
	Route  string      `json:"route"`
	Params interface{} `json:"params,omitempty"`
}

type DoctorCardResponse struct {
	Email           string          `json:"email"`
	DoctorName      string          `json:"doctorname"`
	Specialization  string          `json:"specialization"`
	Experience      string          `json:"experience"`
	ProfilePhoto    string          `json:"profilePhoto"`
	Description     string          `json:"description,omitempty"`
	Fees            decimal.Decimal `json:"fees"`
	FeeLabel        string          `json:"feeLabel"`
	Rating          float64         `json:"rating"`
	SubscriberCount int             `json:"subscriberCount"`
	Slots           []string        `json:"slots,omitempty"`
	SelectedSlot    string          `json:"selectedSlot,omitempty"`
}

type DirectoryViewResponse struct {
	ID       uuid.UUID            `json:"id"`
	Loading  bool                 `json:"loading"`
	LoadedAt *time.Time           `json:"loaded_at,omitempty"`
	Doctors  []DoctorCardResponse `json:"doctors"`
	Total    int                  `json:"total"`
}

// SubscriptionViewModel is the doctor record handed to the detail screen,
// merged with the locally derived count.
type SubscriptionViewModel struct {
	entity.DoctorRecord
	SubscriberCount int `json:"subscriberCount"`
}

// DoctorDetailParams are the route params of the doctor detail screen.
type DoctorDetailParams struct {
	Doctors SubscriptionViewModel `json:"doctors"`
}

type SubscribeResponse struct {
	Subscribed bool        `json:"subscribed"`
	Notice     *Notice     `json:"notice,omitempty"`
	Navigation *Navigation `json:"navigation,omitempty"`
}

type LikeResponse struct {
	Email           string `json:"email"`
	SubscriberCount int    `json:"subscriberCount"`
}
