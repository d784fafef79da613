package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorClient_FetchDoctors_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Prod/doctorsService/fetchDoctors", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"doctors": [{
				"email": "kislay@example.com",
				"doctorname": "Dr. Kislay",
				"specialization": "Cardiologist",
				"experience": "12 years",
				"profilePhoto": "https://cdn.example.com/kislay.jpg",
				"fees": 850,
				"consultationFees": "₹850",
				"rating": 4.8,
				"subscribers": ["a@x.com", "b@x.com"]
			}]
		}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL+"/Prod", 2*time.Second)
	require.NoError(t, err)

	doctors, err := c.FetchDoctors(context.Background())
	require.NoError(t, err)
	if assert.Len(t, doctors, 1) {
		assert.Equal(t, "kislay@example.com", doctors[0].Email)
		assert.Equal(t, "Dr. Kislay", doctors[0].DoctorName)
		assert.Equal(t, "850", doctors[0].Fees.String())
		assert.Equal(t, "₹850", doctors[0].FeeLabel())
		assert.Equal(t, 2, doctors[0].SubscriberCount())
	}
}

func TestDoctorClient_FetchDoctors_MixedRatingShapes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"doctors":[
			{"email":"a@x.com","rating":"4.8","fees":"600"},
			{"email":"b@x.com","rating":4.5,"fees":850},
			{"email":"c@x.com","rating":"n/a"},
			{"email":"d@x.com","rating":null}
		]}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, time.Second)
	require.NoError(t, err)

	doctors, err := c.FetchDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.InDelta(t, 4.8, float64(doctors[0].Rating), 1e-9)
	assert.InDelta(t, 4.5, float64(doctors[1].Rating), 1e-9)
	assert.Zero(t, doctors[2].Rating)
	assert.Zero(t, doctors[3].Rating)
	assert.Equal(t, "₹600", doctors[0].FeeLabel())
	assert.Equal(t, "₹850", doctors[1].FeeLabel())
	assert.Equal(t, "₹0", doctors[2].FeeLabel())
}

func TestDoctorClient_FetchDoctors_MissingFieldIsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, time.Second)
	require.NoError(t, err)

	doctors, err := c.FetchDoctors(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, doctors)
	assert.Empty(t, doctors)
}

func TestDoctorClient_FetchDoctors_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"something went wrong"}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, time.Second)
	require.NoError(t, err)

	doctors, err := c.FetchDoctors(context.Background())
	assert.ErrorIs(t, err, ErrStatus)
	assert.Nil(t, doctors)
}

func TestDoctorClient_FetchDoctors_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.FetchDoctors(context.Background())
	assert.Error(t, err)
}

func TestDoctorClient_Subscribe_SendsBody(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctorsService/subscribe", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"success": true, "message": "Subscribed"}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, time.Second)
	require.NoError(t, err)

	reply, err := c.Subscribe(context.Background(), "kislay@example.com", "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"doctor_email": "kislay@example.com", "user_email": "me@x.com"}, got)
	if assert.NotNil(t, reply.Success) {
		assert.True(t, *reply.Success)
	}
	assert.Equal(t, "Subscribed", reply.Message)
}

func TestDoctorClient_Subscribe_MissingDiscriminator(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "Subscribed"}`))
	}))
	defer ts.Close()

	c, err := NewDoctorClient(ts.URL, time.Second)
	require.NoError(t, err)

	reply, err := c.Subscribe(context.Background(), "kislay@example.com", "me@x.com")
	require.NoError(t, err)
	assert.Nil(t, reply.Success)
}

func TestNewDoctorClient_RejectsRelativeURL(t *testing.T) {
	c, err := NewDoctorClient("/Prod", time.Second)
	assert.Error(t, err)
	assert.Nil(t, c)
}
