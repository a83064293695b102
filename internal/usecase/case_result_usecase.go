package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/domain/messages"
	"dischley_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCaseResultNotFound  = errors.New("case result not found")
	ErrInvalidCaseResultID = errors.New("invalid case result id")
)

// ICaseResultUseCase exposes the post-hearing lifecycle:
//   - SubmitResult: persist, compose the disposition-dependent body (with
//     the review-request addendum folded in when asked for) and notify the
//     attorneys in a single dispatch.
//   - EditResult: persist the overwrites and send nothing. Edits to an
//     already-reported disposition are deliberately quiet.

type ICaseResultUseCase interface {
	SubmitResult(ctx context.Context, in entities.CaseResultIntake) (entities.CaseResult, NotificationReport, error)
	EditResult(ctx context.Context, id string, upd entities.CaseResultUpdate) (entities.CaseResult, error)
	GetByID(ctx context.Context, id string) (entities.CaseResult, error)
	List(ctx context.Context) ([]entities.CaseResult, error)
}

type CaseResultUseCase struct {
	repo       interfaces.ICaseResultRepository
	mailer     interfaces.IMailSender
	recipients []string
}

var _ ICaseResultUseCase = (*CaseResultUseCase)(nil)

func NewCaseResultUseCase(repo interfaces.ICaseResultRepository, mailer interfaces.IMailSender, recipients []string) *CaseResultUseCase {
	return &CaseResultUseCase{repo: repo, mailer: mailer, recipients: recipients}
}

func (u *CaseResultUseCase) SubmitResult(ctx context.Context, in entities.CaseResultIntake) (entities.CaseResult, NotificationReport, error) {
	sid := uuid.NewString()
	log.Printf("[case_result][usecase] submit start submission_id=%s operator=%s", sid, operatorName(ctx))

	var report NotificationReport

	now := time.Now().UTC()
	result := entities.CaseResult{
		DefendantName:     in.DefendantName,
		Offense:           in.Offense,
		AmendedCharge:     in.AmendedCharge,
		Disposition:       in.Disposition,
		OtherDisposition:  in.OtherDisposition,
		JailTimeImposed:   in.JailTimeImposed,
		JailTimeSuspended: in.JailTimeSuspended,
		FineImposed:       in.FineImposed,
		FineSuspended:     in.FineSuspended,
		LicenseSuspension: in.LicenseSuspension,
		ASAPOrdered:       in.ASAPOrdered,
		ProbationType:     in.ProbationType,
		WasContinued:      in.WasContinued,
		ContinuationDate:  in.ContinuationDate,
		ClientEmail:       in.ClientEmail,
		Notes:             in.Notes,
		DateDisposition:   in.DateDisposition,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, result)
	if err != nil {
		log.Printf("[case_result][usecase] persist failed submission_id=%s err=%v", sid, err)
		return entities.CaseResult{}, report, err
	}
	log.Printf("[case_result][usecase] persisted submission_id=%s result_id=%s", sid, created.ID)

	if u.mailer == nil {
		log.Printf("[case_result][usecase] mail transport not configured submission_id=%s", sid)
		report.warnf("attorney notification not sent: mail transport not configured")
		return created, report, nil
	}

	err = u.mailer.Send(ctx, interfaces.OutboundMail{
		Subject:    messages.SubjectCaseResult(in.DefendantName),
		Body:       messages.CaseResultReported(in),
		To:         u.recipients,
		SenderName: messages.SenderNameCaseResult,
	})
	if err != nil {
		log.Printf("[case_result][usecase] attorney notification failed submission_id=%s result_id=%s err=%v", sid, created.ID, err)
		report.warnf("attorney notification not sent: %v", err)
	} else {
		report.AttorneysNotified = true
	}

	log.Printf("[case_result][usecase] submit done submission_id=%s result_id=%s warnings=%d", sid, created.ID, len(report.Warnings))
	return created, report, nil
}

func (u *CaseResultUseCase) EditResult(ctx context.Context, id string, upd entities.CaseResultUpdate) (entities.CaseResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CaseResult{}, ErrInvalidCaseResultID
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.CaseResult{}, err
	}
	if updated.ID == "" {
		return entities.CaseResult{}, ErrCaseResultNotFound
	}
	log.Printf("[case_result][usecase] edit done result_id=%s operator=%s", updated.ID, operatorName(ctx))
	return updated, nil
}

func (u *CaseResultUseCase) GetByID(ctx context.Context, id string) (entities.CaseResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CaseResult{}, ErrInvalidCaseResultID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CaseResult{}, err
	}
	if r.ID == "" {
		return entities.CaseResult{}, ErrCaseResultNotFound
	}
	return r, nil
}

func (u *CaseResultUseCase) List(ctx context.Context) ([]entities.CaseResult, error) {
	return u.repo.List(ctx)
}
