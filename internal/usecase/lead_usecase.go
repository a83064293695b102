package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dischley_intake/internal/domain/auth"
	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/domain/messages"
	"dischley_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrLeadNameRequired = errors.New("lead name is required")
	ErrInvalidLeadID    = errors.New("invalid lead id")
)

// NotificationReport tells the caller which best-effort steps of a
// submission actually landed. Persistence succeeding is the only gate for
// overall success; everything here is advisory.
type NotificationReport struct {
	AttorneysNotified bool
	ClientNotified    bool
	CRMAccepted       bool
	Warnings          []string
}

func (r *NotificationReport) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ILeadUseCase exposes the lead lifecycle:
//   - SubmitIntake: persist a fresh intake, notify the attorneys, forward
//     the lead to the CRM. Mail and CRM failures never roll back the write.
//   - ApplyStaffUpdate: merge the follow-up form (flags included), notify
//     the attorneys, and auto-reply to the client iff LVM is set and an
//     email is on file.
//   - QuickEdit: partial overwrite with no notification at all.

type ILeadUseCase interface {
	SubmitIntake(ctx context.Context, in entities.LeadIntake) (entities.Lead, NotificationReport, error)
	ApplyStaffUpdate(ctx context.Context, id string, upd entities.LeadStaffUpdate) (entities.Lead, NotificationReport, error)
	QuickEdit(ctx context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}

type LeadUseCase struct {
	repo       interfaces.ILeadRepository
	mailer     interfaces.IMailSender
	crm        interfaces.ICRMGateway
	recipients []string
	baseURL    string
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, mailer interfaces.IMailSender, crm interfaces.ICRMGateway, recipients []string, baseURL string) *LeadUseCase {
	return &LeadUseCase{
		repo:       repo,
		mailer:     mailer,
		crm:        crm,
		recipients: recipients,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (u *LeadUseCase) detailURL(id string) string {
	return u.baseURL + "/v1/leads/" + id
}

func (u *LeadUseCase) SubmitIntake(ctx context.Context, in entities.LeadIntake) (entities.Lead, NotificationReport, error) {
	sid := uuid.NewString()
	log.Printf("[lead][usecase] intake start submission_id=%s operator=%s", sid, operatorName(ctx))

	var report NotificationReport

	if strings.TrimSpace(in.Name) == "" {
		log.Printf("[lead][usecase] intake rejected (missing name) submission_id=%s", sid)
		return entities.Lead{}, report, ErrLeadNameRequired
	}

	now := time.Now().UTC()
	lead := entities.Lead{
		Name:      strings.TrimSpace(in.Name),
		Phone:     in.Phone,
		Email:     in.Email,
		Charge:    in.Charge,
		CourtDate: in.CourtDate,
		CourtTime: in.CourtTime,
		Court:     in.Court,
		Notes:     in.Notes,
		Homework:  in.Homework,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[lead][usecase] intake persist failed submission_id=%s err=%v", sid, err)
		return entities.Lead{}, report, err
	}
	log.Printf("[lead][usecase] intake persisted submission_id=%s lead_id=%s", sid, created.ID)

	u.notifyAttorneys(ctx, sid, &report, interfaces.OutboundMail{
		Subject:    messages.SubjectLeadCreated,
		Body:       messages.LeadCreated(created, u.detailURL(created.ID)),
		To:         u.recipients,
		SenderName: messages.SenderNameLead,
	})

	u.syncCRM(ctx, sid, &report, created)

	log.Printf("[lead][usecase] intake done submission_id=%s lead_id=%s warnings=%d", sid, created.ID, len(report.Warnings))
	return created, report, nil
}

func (u *LeadUseCase) ApplyStaffUpdate(ctx context.Context, id string, upd entities.LeadStaffUpdate) (entities.Lead, NotificationReport, error) {
	sid := uuid.NewString()
	var report NotificationReport

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, report, ErrInvalidLeadID
	}
	log.Printf("[lead][usecase] staff update start submission_id=%s lead_id=%s operator=%s", sid, id, operatorName(ctx))

	updated, err := u.repo.Update(ctx, id, staffUpdateFields(upd))
	if err != nil {
		log.Printf("[lead][usecase] staff update persist failed submission_id=%s lead_id=%s err=%v", sid, id, err)
		return entities.Lead{}, report, err
	}
	if updated.ID == "" {
		return entities.Lead{}, report, ErrLeadNotFound
	}

	u.notifyAttorneys(ctx, sid, &report, interfaces.OutboundMail{
		Subject:    messages.SubjectLeadUpdated(updated.Name),
		Body:       messages.LeadUpdated(updated, u.detailURL(updated.ID)),
		To:         u.recipients,
		SenderName: messages.SenderNameLead,
	})

	if updated.LVM && updated.Email != "" {
		if u.mailer == nil {
			report.warnf("client follow-up not sent: mail transport not configured")
		} else if err := u.mailer.Send(ctx, interfaces.OutboundMail{
			Subject:    messages.SubjectClientFollowUp,
			Body:       messages.ClientFollowUpBody,
			To:         []string{updated.Email},
			SenderName: messages.SenderNameLead,
		}); err != nil {
			log.Printf("[lead][usecase] client follow-up failed submission_id=%s lead_id=%s err=%v", sid, updated.ID, err)
			report.warnf("client follow-up not sent: %v", err)
		} else {
			report.ClientNotified = true
		}
	}

	log.Printf("[lead][usecase] staff update done submission_id=%s lead_id=%s warnings=%d", sid, updated.ID, len(report.Warnings))
	return updated, report, nil
}

// staffUpdateFields turns the follow-up form into a partial overwrite.
// The three flags come from checkboxes, so every submission states them;
// the retainer amount is cleared whenever the flag is off so a stale
// amount can never outlive its flag.
func staffUpdateFields(upd entities.LeadStaffUpdate) entities.LeadUpdate {
	retainerAmount := ""
	if upd.SendRetainer {
		retainerAmount = upd.RetainerAmount
	}
	return entities.LeadUpdate{
		Name:           upd.Name,
		Phone:          upd.Phone,
		Email:          upd.Email,
		Charge:         upd.Charge,
		CourtDate:      upd.CourtDate,
		CourtTime:      upd.CourtTime,
		Court:          upd.Court,
		Notes:          upd.Notes,
		Homework:       upd.Homework,
		SendRetainer:   &upd.SendRetainer,
		RetainerAmount: &retainerAmount,
		LVM:            &upd.LVM,
		NotPC:          &upd.NotPC,
		Quote:          &upd.Quote,
	}
}

// QuickEdit overwrites the provided fields and sends nothing.
func (u *LeadUseCase) QuickEdit(ctx context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	log.Printf("[lead][usecase] quick edit done lead_id=%s operator=%s", updated.ID, operatorName(ctx))
	return updated, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) notifyAttorneys(ctx context.Context, sid string, report *NotificationReport, m interfaces.OutboundMail) {
	if u.mailer == nil {
		log.Printf("[lead][usecase] mail transport not configured submission_id=%s", sid)
		report.warnf("attorney notification not sent: mail transport not configured")
		return
	}
	if err := u.mailer.Send(ctx, m); err != nil {
		log.Printf("[lead][usecase] attorney notification failed submission_id=%s err=%v", sid, err)
		report.warnf("attorney notification not sent: %v", err)
		return
	}
	report.AttorneysNotified = true
}

func (u *LeadUseCase) syncCRM(ctx context.Context, sid string, report *NotificationReport, l entities.Lead) {
	if u.crm == nil {
		log.Printf("[lead][usecase] crm gateway not configured submission_id=%s", sid)
		report.warnf("crm sync skipped: gateway not configured")
		return
	}
	sub, err := u.crm.SubmitLead(ctx, l)
	if err != nil {
		log.Printf("[lead][usecase] crm sync transport failed submission_id=%s lead_id=%s err=%v", sid, l.ID, err)
		report.warnf("crm sync failed: %v", err)
		return
	}
	if !sub.Accepted {
		log.Printf("[lead][usecase] crm sync rejected submission_id=%s lead_id=%s status=%d body=%s", sid, l.ID, sub.Status, sub.Body)
		report.warnf("crm rejected lead: status %d", sub.Status)
		return
	}
	report.CRMAccepted = true
}

func operatorName(ctx context.Context) string {
	if op, ok := auth.FromContext(ctx); ok {
		return op.Name
	}
	return "unknown"
}
