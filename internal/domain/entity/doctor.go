package entity

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// DoctorRecord is a doctor profile as served by the upstream doctors service.
// Email is the primary key. ConsultationFees is a preformatted fee label that
// takes precedence over the numeric Fees when present.
type DoctorRecord struct {
	Email            string          `json:"email"`
	DoctorName       string          `json:"doctorname"`
	Specialization   string          `json:"specialization"`
	Experience       string          `json:"experience"`
	ProfilePhoto     string          `json:"profilePhoto"`
	Description      string          `json:"description,omitempty"`
	Fees             decimal.Decimal `json:"fees"`
	ConsultationFees string          `json:"consultationFees,omitempty"`
	Rating           Rating          `json:"rating"`
	Subscribers      []string        `json:"subscribers"`
	Slots            []string        `json:"slots,omitempty"`
}

// FeeLabel is the fee as shown on a doctor card.
func (d *DoctorRecord) FeeLabel() string {
	if d.ConsultationFees != "" {
		return d.ConsultationFees
	}
	return "₹" + d.Fees.String()
}

// Rating is a doctor rating. The doctors service sends it as a number or as a
// quoted number; anything else decodes as 0 so one bad record cannot fail a
// whole list.
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*r = 0
			return nil
		}
		data = []byte(s)
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		*r = 0
		return nil
	}
	*r = Rating(d.InexactFloat64())
	return nil
}

// SubscriberCount returns the server-side subscriber count.
func (d *DoctorRecord) SubscriberCount() int {
	return len(d.Subscribers)
}

// HasSubscriber reports whether email is already in the subscriber list.
func (d *DoctorRecord) HasSubscriber(email string) bool {
	return email != "" && slices.Contains(d.Subscribers, email)
}

// OffersSlot reports whether slot is one of the doctor's sample slots.
func (d *DoctorRecord) OffersSlot(slot string) bool {
	return slices.Contains(d.Slots, slot)
}

// FindDoctor returns the record with the given email, or nil.
func FindDoctor(doctors []DoctorRecord, email string) *DoctorRecord {
	for i := range doctors {
		if doctors[i].Email == email {
			return &doctors[i]
		}
	}
	return nil
}
