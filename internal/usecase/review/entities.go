package review

import (
	"time"

	"loan-marketplace/internal/domain/product"
	"loan-marketplace/internal/domain/review"
	loanUsecase "loan-marketplace/internal/usecase/loan"
)

type ReviewInput struct {
	ApplicationID uint64        `json:"-"`
	Decision      review.Action `json:"action"`
	Comment       *string       `json:"comment,omitempty"`
}

type ReviewDTO struct {
	ApplicationID uint64    `json:"application_id"`
	Status        string    `json:"status"`
	ReviewedAt    time.Time `json:"reviewed_at"`
	ActionID      uint64    `json:"action_id"`
	Message       string    `json:"message"`
}

// AdminApplicationDTO is an application as the review queue shows it. Name and
// email are empty when the applicant row is gone.
type AdminApplicationDTO struct {
	loanUsecase.ApplicationDTO
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type ApplicationDetail struct {
	Application AdminApplicationDTO  `json:"application"`
	Product     *product.Product     `json:"product,omitempty"`
	Actions     []review.AdminAction `json:"actions"`
}
