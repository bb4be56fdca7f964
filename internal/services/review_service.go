package services

import (
	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services/dto"
	"photobook_backend/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(req *dto.CreateReviewRequest) error
	GetAllReviews() ([]dto.AdminReviewRow, error)
	DeleteReview(id uint) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) CreateReview(req *dto.CreateReviewRequest) error {
	review := &models.Review{
		Name:   req.Name,
		Email:  req.Email,
		Rating: req.Rating,
		Review: req.Review,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return err
	}

	logger.Info("review submitted", "review_id", review.ID, "rating", review.Rating)
	return nil
}

func (s *reviewService) GetAllReviews() ([]dto.AdminReviewRow, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminReviewRow, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, dto.AdminReviewRow{
			ID:     r.ID,
			Name:   r.Name,
			Email:  r.Email,
			Rating: r.Rating,
			Review: r.Review,
			Date:   r.CreatedAt.Format("02-Jan-2006"),
		})
	}
	return rows, nil
}

func (s *reviewService) DeleteReview(id uint) error {
	err := s.reviewRepo.Delete(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return err
	}

	logger.Info("review deleted", "review_id", id)
	return nil
}
