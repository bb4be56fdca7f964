package dto

type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}

// AdminReviewRow - отзыв для админки, дата отформатирована как 02-Jan-2006.
type AdminReviewRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
	Date   string `json:"date"`
}
