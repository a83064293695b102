package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase/interfaces"
	mock_interfaces "dischley_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCaseResultUseCase_SubmitResult(t *testing.T) {
	recipients := []string{"attorneys@dischleylaw.com"}

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		uc := NewCaseResultUseCase(repo, nil, recipients)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CaseResult{}, errors.New("db"))

		_, _, err := uc.SubmitResult(context.Background(), entities.CaseResultIntake{DefendantName: "John Doe"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("persist and single dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailSender(ctrl)
		uc := NewCaseResultUseCase(repo, mailer, recipients)

		in := entities.CaseResultIntake{
			DefendantName:   "John Doe",
			Court:           "Fairfax GDC",
			Offense:         "DUI",
			Disposition:     entities.DispositionGuilty,
			AmendedCharge:   "Reckless Driving",
			SendReviewLinks: true,
		}

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CaseResult{})).DoAndReturn(
			func(_ context.Context, r entities.CaseResult) (entities.CaseResult, error) {
				if r.DefendantName != "John Doe" || r.Disposition != entities.DispositionGuilty {
					t.Fatalf("unexpected case result: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				r.ID = "3"
				return r, nil
			},
		)
		mailer.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.OutboundMail{})).DoAndReturn(
			func(_ context.Context, m interfaces.OutboundMail) error {
				if m.Subject != "Case Results - John Doe" {
					t.Fatalf("unexpected subject: %q", m.Subject)
				}
				if !strings.Contains(m.Body, "found guilty of amended charge: Reckless Driving") {
					t.Fatalf("body missing disposition line:\n%s", m.Body)
				}
				if !strings.Contains(m.Body, "REVIEW REQUEST EMAIL") {
					t.Fatalf("body missing review addendum:\n%s", m.Body)
				}
				return nil
			},
		).Times(1)

		created, report, err := uc.SubmitResult(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "3" {
			t.Fatalf("expected persisted result, got %+v", created)
		}
		if !report.AttorneysNotified || len(report.Warnings) != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("mail failure keeps submission successful", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailSender(ctrl)
		uc := NewCaseResultUseCase(repo, mailer, recipients)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.CaseResult) (entities.CaseResult, error) {
				r.ID = "4"
				return r, nil
			},
		)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		created, report, err := uc.SubmitResult(context.Background(), entities.CaseResultIntake{DefendantName: "John Doe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "4" {
			t.Fatalf("expected persisted result, got %+v", created)
		}
		if report.AttorneysNotified || len(report.Warnings) != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("no mailer configured still persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		uc := NewCaseResultUseCase(repo, nil, recipients)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.CaseResult) (entities.CaseResult, error) {
				r.ID = "5"
				return r, nil
			},
		)

		created, report, err := uc.SubmitResult(context.Background(), entities.CaseResultIntake{DefendantName: "John Doe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "5" {
			t.Fatalf("expected persisted result, got %+v", created)
		}
		if len(report.Warnings) != 1 {
			t.Fatalf("expected one warning, got %v", report.Warnings)
		}
	})
}

func TestCaseResultUseCase_EditResult(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCaseResultUseCase(nil, nil, nil)
		_, err := uc.EditResult(context.Background(), "  ", entities.CaseResultUpdate{})
		if !errors.Is(err, ErrInvalidCaseResultID) {
			t.Fatalf("expected ErrInvalidCaseResultID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		uc := NewCaseResultUseCase(repo, nil, nil)

		repo.EXPECT().Update(gomock.Any(), "404", gomock.Any()).Return(entities.CaseResult{}, nil)

		_, err := uc.EditResult(context.Background(), "404", entities.CaseResultUpdate{})
		if !errors.Is(err, ErrCaseResultNotFound) {
			t.Fatalf("expected ErrCaseResultNotFound, got %v", err)
		}
	})

	t.Run("sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailSender(ctrl)
		uc := NewCaseResultUseCase(repo, mailer, []string{"attorneys@dischleylaw.com"})

		notes := "Amended on motion"
		repo.EXPECT().Update(gomock.Any(), "3", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd entities.CaseResultUpdate) (entities.CaseResult, error) {
				if upd.Notes == nil || *upd.Notes != notes {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.CaseResult{ID: "3", Notes: notes}, nil
			},
		)

		got, err := uc.EditResult(context.Background(), "3", entities.CaseResultUpdate{Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Notes != notes {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestCaseResultUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		uc := NewCaseResultUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "404").Return(entities.CaseResult{}, nil)

		_, err := uc.GetByID(context.Background(), "404")
		if !errors.Is(err, ErrCaseResultNotFound) {
			t.Fatalf("expected ErrCaseResultNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseResultRepository(ctrl)
		uc := NewCaseResultUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "3").Return(entities.CaseResult{ID: "3", DefendantName: "John Doe"}, nil)

		got, err := uc.GetByID(context.Background(), "3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "3" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
