package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRecord_DecodesFeesAndConsultationFees(t *testing.T) {
	var d DoctorRecord
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@x.com","fees":850,"consultationFees":"₹850"}`), &d))

	assert.Equal(t, "850", d.Fees.String())
	assert.Equal(t, "₹850", d.ConsultationFees)
	assert.Equal(t, "₹850", d.FeeLabel())
}

func TestDoctorRecord_FeeLabelWithoutConsultationFees(t *testing.T) {
	var d DoctorRecord
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@x.com","fees":499}`), &d))
	assert.Equal(t, "₹499", d.FeeLabel())

	d = DoctorRecord{}
	assert.Equal(t, "₹0", d.FeeLabel())
}

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `4.5`, 4.5},
		{"quoted number", `"4.8"`, 4.8},
		{"integer", `5`, 5},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"not a number", `"n/a"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Rating
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &r))
			assert.InDelta(t, tt.want, float64(r), 1e-9)
		})
	}
}

func TestDoctorRecord_BadRatingDoesNotFailList(t *testing.T) {
	var body struct {
		Doctors []DoctorRecord `json:"doctors"`
	}
	raw := `{"doctors":[{"email":"a@x.com","rating":"4.8"},{"email":"b@x.com","rating":4.5},{"email":"c@x.com","rating":{}}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &body))

	require.Len(t, body.Doctors, 3)
	assert.InDelta(t, 4.8, float64(body.Doctors[0].Rating), 1e-9)
	assert.InDelta(t, 4.5, float64(body.Doctors[1].Rating), 1e-9)
	assert.Zero(t, body.Doctors[2].Rating)
}
