package usecase

import (
	"context"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

// AutoModerateContent walks the verdicts in order and escalates the first
// flagged one to the policy procedure. The loop short-circuits on the first
// non-approved result; verdicts after it are never consulted.
func (uc *implUseCase) AutoModerateContent(ctx context.Context, sc model.Scope, input analysis.AutoModerateInput) (string, error) {
	for _, verdict := range input.Verdicts {
		if !verdict.ShouldFlag {
			continue
		}

		action, err := uc.repo.EvaluateAutoModeration(ctx, repository.EvaluateAutoModerationOptions{
			ContentType:    input.ContentType,
			ContentID:      input.ContentID,
			AnalysisType:   verdict.AnalysisType,
			Confidence:     verdict.Confidence,
			Classification: verdict.Classification,
		})
		if err != nil {
			if uc.cfg.FailOpenOnDecisionError {
				// Content passes on infra failure. Every occurrence is
				// logged for audit.
				uc.l.Errorf(ctx, "analysis.usecase.AutoModerateContent: decision procedure failed, failing open to approved: content_type=%s content_id=%s analysis_type=%s: %v",
					input.ContentType, input.ContentID, verdict.AnalysisType, err)
				continue
			}

			uc.l.Errorf(ctx, "analysis.usecase.AutoModerateContent: decision procedure failed, escalating to review queue: %v", err)
			uc.enqueue(ctx, input, "decision_error", model.PriorityUrgent)
			return analysis.ActionQueued, nil
		}

		if action != analysis.ActionApproved {
			priority := model.PriorityDefault
			if action == analysis.ActionRejected {
				priority = model.PriorityUrgent
			}
			uc.enqueue(ctx, input, string(verdict.AnalysisType), priority)
			return action, nil
		}
	}

	return analysis.ActionApproved, nil
}

func (uc *implUseCase) enqueue(ctx context.Context, input analysis.AutoModerateInput, reason string, priority int) {
	err := uc.modUC.AddToQueue(ctx, moderation.AddToQueueInput{
		ContentType:   input.ContentType,
		ContentID:     input.ContentID,
		Reason:        reason,
		PriorityLevel: priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.enqueue: AddToQueue failed: content_type=%s content_id=%s reason=%s: %v",
			input.ContentType, input.ContentID, reason, err)
	}
}
