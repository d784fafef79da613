package converter

import (
	"encoding/json"
	"testing"
	"time"

	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotToResponse_UsesDisplayedCounts(t *testing.T) {
	snap := service.ViewSnapshot{
		ID: uuid.New(),
		Doctors: []entity.DoctorRecord{
			{Email: "kislay@example.com", Subscribers: []string{"a@x.com"}},
			{Email: "ritesh@example.com"},
		},
		Counts:        map[string]int{"kislay@example.com": 4},
		SelectedSlots: map[string]string{"ritesh@example.com": "10:30 AM"},
	}

	resp := SnapshotToResponse(snap)
	assert.Equal(t, 2, resp.Total)
	assert.Nil(t, resp.LoadedAt)
	assert.Equal(t, 4, resp.Doctors[0].SubscriberCount)
	assert.Equal(t, 0, resp.Doctors[1].SubscriberCount)
	assert.Equal(t, "10:30 AM", resp.Doctors[1].SelectedSlot)

	snap.LoadedAt = time.Now()
	assert.NotNil(t, SnapshotToResponse(snap).LoadedAt)
}

func TestDoctorToViewModel_FlattensRecord(t *testing.T) {
	vm := DoctorToViewModel(entity.DoctorRecord{Email: "kislay@example.com", DoctorName: "Dr. Kislay"}, 3)

	raw, err := json.Marshal(vm)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "kislay@example.com", got["email"])
	assert.Equal(t, "Dr. Kislay", got["doctorname"])
	assert.Equal(t, float64(3), got["subscriberCount"])
}

func TestDoctorToCard_FeeLabelFallsBackToNumericFees(t *testing.T) {
	labelled := entity.DoctorRecord{Email: "a@x.com", Fees: decimal.NewFromInt(850), ConsultationFees: "₹900 per visit", Rating: 4.5}
	card := DoctorToCard(&labelled, 1, "")
	assert.Equal(t, "₹900 per visit", card.FeeLabel)
	assert.Equal(t, "850", card.Fees.String())
	assert.Equal(t, 4.5, card.Rating)

	numeric := entity.DoctorRecord{Email: "b@x.com", Fees: decimal.NewFromInt(850)}
	assert.Equal(t, "₹850", DoctorToCard(&numeric, 0, "").FeeLabel)

	assert.Equal(t, "₹0", DoctorToCard(&entity.DoctorRecord{Email: "c@x.com"}, 0, "").FeeLabel)
}
