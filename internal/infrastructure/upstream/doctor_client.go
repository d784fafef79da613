package upstream

import (
	"context"
	"time"

	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/domain/gateway"
)

// DoctorClient calls the doctors service and maps its payloads.
type DoctorClient struct {
	*jsonClient
}

var _ gateway.DoctorGateway = (*DoctorClient)(nil)

// NewDoctorClient constructs a DoctorClient.
// base := "https://bzp2envoek.execute-api.ap-south-1.amazonaws.com/Prod" (no trailing slash required).
func NewDoctorClient(base string, timeout time.Duration) (*DoctorClient, error) {
	c, err := newJSONClient(base, timeout)
	if err != nil {
		return nil, err
	}
	return &DoctorClient{jsonClient: c}, nil
}

type fetchDoctorsResponse struct {
	Doctors []entity.DoctorRecord `json:"doctors"`
}

type subscribeRequest struct {
	DoctorEmail string `json:"doctor_email"`
	UserEmail   string `json:"user_email"`
}

type subscribeResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// FetchDoctors returns the upstream list, or an empty slice when the
// response has no doctors field.
func (c *DoctorClient) FetchDoctors(ctx context.Context) ([]entity.DoctorRecord, error) {
	var resp fetchDoctorsResponse
	if err := c.post(ctx, nil, &resp, "doctorsService", "fetchDoctors"); err != nil {
		return nil, err
	}
	if resp.Doctors == nil {
		return []entity.DoctorRecord{}, nil
	}
	return resp.Doctors, nil
}

// Subscribe asks the upstream to subscribe userEmail to doctorEmail.
func (c *DoctorClient) Subscribe(ctx context.Context, doctorEmail, userEmail string) (*gateway.SubscribeReply, error) {
	var resp subscribeResponse
	req := subscribeRequest{DoctorEmail: doctorEmail, UserEmail: userEmail}
	if err := c.post(ctx, req, &resp, "doctorsService", "subscribe"); err != nil {
		return nil, err
	}
	return &gateway.SubscribeReply{Success: resp.Success, Message: resp.Message}, nil
}
