package converter

import (
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/domain/entity"
)

// PlansToResponses converts the plan catalog to PlanResponse DTOs
func PlansToResponses(plans []entity.Plan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = dto.PlanResponse{
			ID:       plan.ID,
			Name:     plan.Name,
			OldPrice: plan.OldPrice,
			NewPrice: plan.NewPrice,
			Period:   plan.Period,
			Discount: plan.Discount,
			Features: plan.Features,
		}
	}
	return responses
}
