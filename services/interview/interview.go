package interview

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

func (s *DefaultInterviewService) load(ctx context.Context, interviewID string) (*models.Interview, error) {
	iv, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return iv, nil
}

// CreateInterview inserts an interview record directly. Admin tooling only;
// regular interviews are created by the booking confirmation flow.
func (s *DefaultInterviewService) CreateInterview(ctx context.Context, iv models.Interview) (*models.Interview, error) {
	if iv.Status == "" {
		iv.Status = models.InterviewStatusScheduled
	}
	if err := s.Repo.Create(ctx, &iv); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return &iv, nil
}

// DeleteInterview removes an interview record. Admin tooling only.
func (s *DefaultInterviewService) DeleteInterview(ctx context.Context, interviewID string) error {
	if err := s.Repo.Delete(ctx, interviewID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInterviewNotFound
		}
		return err
	}
	return nil
}

func participant(iv *models.Interview, userID string) bool {
	return iv.CandidateID == userID || iv.InterviewerID == userID
}

// GetInterview returns an interview visible to the caller. Admins see all
// interviews, participants see their own.
func (s *DefaultInterviewService) GetInterview(ctx context.Context, userID, role, interviewID string) (*models.Interview, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && !participant(iv, userID) {
		return nil, ErrForbidden
	}
	return iv, nil
}

// ListInterviews returns interviews where the caller is a participant,
// on either side of the table.
func (s *DefaultInterviewService) ListInterviews(ctx context.Context, userID string) ([]models.Interview, error) {
	return s.Repo.ListByParticipant(ctx, userID)
}

// UpdateInterview applies status and feedback changes requested over the
// generic update endpoint. Status changes go through the same transition
// rules as Start and Complete.
func (s *DefaultInterviewService) UpdateInterview(ctx context.Context, userID, interviewID string, req models.UpdateInterviewRequest) (*models.Interview, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.InterviewerID != userID {
		return nil, ErrNotInterviewer
	}

	if req.Status != nil {
		switch *req.Status {
		case models.InterviewStatusInProgress:
			return s.Start(ctx, userID, interviewID)
		case models.InterviewStatusCompleted:
			feedback := iv.Feedback
			if req.Feedback != nil {
				feedback = *req.Feedback
			}
			return s.Complete(ctx, userID, interviewID, feedback)
		case models.InterviewStatusCancelled:
			updated, err := s.Repo.TransitionStatus(ctx, interviewID,
				[]string{models.InterviewStatusScheduled, models.InterviewStatusInProgress},
				models.InterviewStatusCancelled)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return nil, ErrInvalidTransition
				}
				return nil, err
			}
			s.notify(ctx, updated.CandidateID, "interview_cancelled",
				"Интервью отменено", "Интервьюер отменил ваше интервью")
			return updated, nil
		default:
			return nil, ErrInvalidTransition
		}
	}

	if req.Feedback != nil {
		if err := s.Repo.UpdateFields(ctx, interviewID, map[string]interface{}{"feedback": *req.Feedback}); err != nil {
			return nil, fmt.Errorf("failed to update interview: %w", err)
		}
	}
	return s.load(ctx, interviewID)
}

// Start moves a scheduled interview to IN_PROGRESS. Interviewer only.
func (s *DefaultInterviewService) Start(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.InterviewerID != userID {
		return nil, ErrNotInterviewer
	}

	updated, err := s.Repo.TransitionStatus(ctx, interviewID,
		[]string{models.InterviewStatusScheduled}, models.InterviewStatusInProgress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.notify(ctx, updated.CandidateID, "interview_started",
		"Интервью началось", "Ваше интервью началось, присоединяйтесь")
	return updated, nil
}

// Complete finishes an interview and stores the final feedback. Allowed from
// SCHEDULED as well, since short sessions may never be explicitly started.
func (s *DefaultInterviewService) Complete(ctx context.Context, userID, interviewID string, feedback string) (*models.Interview, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.InterviewerID != userID {
		return nil, ErrNotInterviewer
	}

	updated, err := s.Repo.TransitionStatus(ctx, interviewID,
		[]string{models.InterviewStatusScheduled, models.InterviewStatusInProgress},
		models.InterviewStatusCompleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	if feedback != "" {
		if err := s.Repo.UpdateFields(ctx, interviewID, map[string]interface{}{"feedback": feedback}); err != nil {
			utils.GetLogger().Error("Complete: failed to store feedback",
				zap.String("interviewId", interviewID),
				zap.Error(err))
		} else {
			updated.Feedback = feedback
		}
	}

	s.notify(ctx, updated.CandidateID, "interview_completed",
		"Интервью завершено", "Интервьюер завершил ваше интервью и оставил обратную связь")
	return updated, nil
}

// AddScore records one scored criterion on a completed interview.
func (s *DefaultInterviewService) AddScore(ctx context.Context, userID, interviewID string, req models.AddScoreRequest) (*models.InterviewScore, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.InterviewerID != userID {
		return nil, ErrNotInterviewer
	}
	if iv.Status != models.InterviewStatusCompleted {
		return nil, ErrNotCompleted
	}

	score := models.InterviewScore{
		InterviewID: interviewID,
		Criterion:   req.Criterion,
		Value:       req.Value,
		Comment:     req.Comment,
	}
	if err := s.Repo.AddScore(ctx, &score); err != nil {
		return nil, fmt.Errorf("failed to add score: %w", err)
	}
	return &score, nil
}

// ListScores returns the criteria scores for an interview the caller may see.
func (s *DefaultInterviewService) ListScores(ctx context.Context, userID, role, interviewID string) ([]models.InterviewScore, error) {
	iv, err := s.load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && !participant(iv, userID) {
		return nil, ErrForbidden
	}
	return s.Repo.ListScores(ctx, interviewID)
}

func (s *DefaultInterviewService) notify(ctx context.Context, userID, notifType, title, body string) {
	if s.Notifications == nil {
		return
	}
	if err := s.Notifications.Notify(ctx, userID, notifType, title, body); err != nil {
		utils.GetLogger().Warn("interview notification failed",
			zap.String("userId", userID),
			zap.Error(err))
	}
}
