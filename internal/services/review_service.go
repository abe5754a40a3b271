package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/logger"
	"tripforge/pkg/utils"
)

// ReviewServiceInterface is the admin review workflow over itineraries:
// draft -> submitted -> under_review -> approved | rejected. Ownership and
// role checks are the caller's job; this engine trusts its inputs.
type ReviewServiceInterface interface {
	SubmitForReview(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error)
	UpdateReviewStatus(ctx context.Context, itineraryID string, status dbm.ReviewStatus, adminID, adminName string) (*response_models.ItineraryDetailResponse, error)
	AddAdminComment(ctx context.Context, itineraryID, adminID, adminName, message, suggestion string) (*response_models.AdminCommentResponse, error)
	ApplySuggestion(ctx context.Context, itineraryID, commentID string) error
	TogglePublic(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error)
}

type ReviewService struct {
	itineraryRepo repositories.ItineraryRepository
	accountRepo   repositories.AccountRepository
	notifier      NotificationServiceInterface
	mailer        IMailService
	appBaseURL    string
}

func NewReviewService(
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	notifier NotificationServiceInterface,
	mailer IMailService,
	appBaseURL string,
) ReviewServiceInterface {
	return &ReviewService{
		itineraryRepo: itineraryRepo,
		accountRepo:   accountRepo,
		notifier:      notifier,
		mailer:        mailer,
		appBaseURL:    appBaseURL,
	}
}

// SubmitForReview is deliberately permissive about the starting state: a
// rejected (or even approved) itinerary may be resubmitted with the same
// call. Each call notifies every admin exactly once.
func (s *ReviewService) SubmitForReview(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	itinerary.ReviewStatus = dbm.ReviewSubmitted
	itinerary.SubmittedAt = &now

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("submit for review failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	owner, err := s.accountRepo.FindById(ctx, itinerary.UserID.String())
	if err != nil {
		logger.Error("load owner failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	ownerName := "A traveler"
	if owner != nil {
		ownerName = owner.Name
	}

	admins, err := s.accountRepo.ListAdmins(ctx)
	if err != nil {
		logger.Error("list admins failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	relatedID := itinerary.ID
	for _, admin := range admins {
		if err := s.notifier.Add(ctx, admin.ID, dbm.NotificationSubmission,
			"New Itinerary Submitted",
			fmt.Sprintf("%s submitted %q for review.", ownerName, itinerary.Title),
			&relatedID); err != nil {
			logger.Warn("submission notification failed",
				logger.Err(err))
		}
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ReviewService) UpdateReviewStatus(ctx context.Context, itineraryID string, status dbm.ReviewStatus, adminID, adminName string) (*response_models.ItineraryDetailResponse, error) {
	switch status {
	case dbm.ReviewUnderReview, dbm.ReviewApproved, dbm.ReviewRejected:
	default:
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	itinerary.ReviewStatus = status
	itinerary.ReviewedAt = &now
	itinerary.ReviewedBy = adminName

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("update review status failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	if status == dbm.ReviewApproved || status == dbm.ReviewRejected {
		s.notifyDecision(ctx, itinerary, adminName, status == dbm.ReviewApproved)
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ReviewService) notifyDecision(ctx context.Context, itinerary *dbm.Itinerary, adminName string, approved bool) {
	relatedID := itinerary.ID

	notificationType := dbm.NotificationApproval
	title := "Itinerary Approved"
	message := fmt.Sprintf("Your itinerary %q has been approved by %s.", itinerary.Title, adminName)
	if !approved {
		notificationType = dbm.NotificationRejection
		title = "Itinerary Needs Changes"
		message = fmt.Sprintf("Your itinerary %q was not approved. Please review the admin feedback.", itinerary.Title)
	}

	if err := s.notifier.Add(ctx, itinerary.UserID, notificationType, title, message, &relatedID); err != nil {
		logger.Warn("decision notification failed", logger.Err(err))
	}

	owner, err := s.accountRepo.FindById(ctx, itinerary.UserID.String())
	if err != nil || owner == nil {
		logger.Warn("decision email skipped: owner not found")
		return
	}
	if err := s.mailer.SendReviewDecision(owner.Email, owner.Name, itinerary.Title, approved); err != nil {
		logger.Warn("decision email failed", logger.Err(err))
	}
}

func (s *ReviewService) AddAdminComment(ctx context.Context, itineraryID, adminID, adminName, message, suggestion string) (*response_models.AdminCommentResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, utils.ErrInvalidInput
	}
	admin, err := uuid.Parse(adminID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	comment := &dbm.AdminComment{
		ItineraryID: itinerary.ID,
		AdminID:     admin,
		AdminName:   adminName,
		Message:     message,
		Suggestion:  suggestion,
		IsApplied:   false,
	}
	if err := s.itineraryRepo.InsertComment(ctx, comment); err != nil {
		logger.Error("insert admin comment failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	itinerary.UpdatedAt = time.Now().Unix()
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("touch itinerary failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	notificationType := dbm.NotificationComment
	title := "New Comment from Admin"
	if suggestion != "" {
		notificationType = dbm.NotificationSuggestion
		title = "New Suggestion from Admin"
	}
	relatedID := itinerary.ID
	if err := s.notifier.Add(ctx, itinerary.UserID, notificationType, title,
		fmt.Sprintf("%s left feedback on %q.", adminName, itinerary.Title),
		&relatedID); err != nil {
		logger.Warn("comment notification failed", logger.Err(err))
	}

	resp := dbm.BuildAdminCommentResponse(comment)
	return &resp, nil
}

// ApplySuggestion is an acknowledgement only: it never edits the plan
// itself, the owner applies the change by hand.
func (s *ReviewService) ApplySuggestion(ctx context.Context, itineraryID, commentID string) error {
	itinerary, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return err
	}

	var comment *dbm.AdminComment
	for i := range itinerary.AdminComments {
		if itinerary.AdminComments[i].ID.String() == commentID {
			comment = &itinerary.AdminComments[i]
			break
		}
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}

	comment.IsApplied = true
	if err := s.itineraryRepo.UpdateComment(ctx, comment); err != nil {
		logger.Error("update admin comment failed", logger.Err(err))
		return utils.ErrDatabaseError
	}

	itinerary.UpdatedAt = time.Now().Unix()
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("touch itinerary failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) TogglePublic(ctx context.Context, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	itinerary.IsPublic = !itinerary.IsPublic
	if itinerary.IsPublic {
		itinerary.ShareLink = fmt.Sprintf("%s/itineraries/%s",
			strings.TrimRight(s.appBaseURL, "/"), itinerary.ID)
	} else {
		itinerary.ShareLink = ""
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		logger.Error("toggle public failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildItineraryDetailResponse(itinerary), nil
}

func (s *ReviewService) loadItinerary(ctx context.Context, id string) (*dbm.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		logger.Error("load itinerary failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}
