package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLoan "loan-marketplace/internal/domain/loan"
	domainProduct "loan-marketplace/internal/domain/product"
	domainReview "loan-marketplace/internal/domain/review"
	"loan-marketplace/internal/domain/uow"
	domainUser "loan-marketplace/internal/domain/user"
	loanUsecase "loan-marketplace/internal/usecase/loan"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder receives one decision per successful review.
type Recorder interface {
	Review(decision string)
}

type nopRecorder struct{}

func (nopRecorder) Review(string) {}

type Usecase struct {
	uow       uow.UnitOfWork
	reads     uow.Repos
	txTimeout time.Duration
	log       *zap.Logger
	rec       Recorder
	now       func() time.Time
}

// NewUsecase: reads are pool-bound repos for listings; reviews go through tx.
func NewUsecase(tx uow.UnitOfWork, reads uow.Repos, txTimeout time.Duration, log *zap.Logger, rec Recorder) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Usecase{uow: tx, reads: reads, txTimeout: txTimeout, log: log, rec: rec, now: time.Now}
}

func (u *Usecase) Review(ctx context.Context, adminID uint64, in ReviewInput) (*ReviewDTO, error) {
	if !in.Decision.Valid() {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Invalid action")
	}
	if u.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.txTimeout)
		defer cancel()
	}

	var dto *ReviewDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainLoan.Application) error {
		// only pending -> approved | rejected
		if a.Status.Terminal() {
			return domainLoan.NewRuleError(domainLoan.ErrAlreadyProcessed, "Loan already processed")
		}

		reviewedAt := u.now().UTC()
		status := domainLoan.Status(in.Decision)
		if err := r.Loans.UpdateStatus(ctx, a.ID, status, reviewedAt); err != nil {
			return err
		}

		act := &domainReview.AdminAction{
			AdminID: adminID,
			LoanID:  a.ID,
			Action:  in.Decision,
			Comment: in.Comment,
		}
		if err := r.Actions.Create(ctx, act); err != nil {
			return err
		}

		dto = &ReviewDTO{
			ApplicationID: a.ID,
			Status:        string(status),
			ReviewedAt:    reviewedAt,
			ActionID:      act.ID,
			Message:       fmt.Sprintf("Loan %s successfully", in.Decision),
		}
		return nil
	})
	if err != nil {
		var re *domainLoan.RuleError
		if errors.As(err, &re) {
			return nil, err
		}
		u.log.Error("loan review failed",
			zap.Uint64("admin_id", adminID),
			zap.Uint64("application_id", in.ApplicationID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("review application %d: %w", in.ApplicationID, err)
	}

	u.rec.Review(string(in.Decision))
	u.log.Info("loan application reviewed",
		zap.Uint64("admin_id", adminID),
		zap.Uint64("application_id", dto.ApplicationID),
		zap.String("decision", dto.Status),
	)
	return dto, nil
}

// List returns applications newest first with the applicant's name and
// email; an empty status lists all.
func (u *Usecase) List(ctx context.Context, status domainLoan.Status) ([]AdminApplicationDTO, error) {
	switch status {
	case "", domainLoan.StatusPending, domainLoan.StatusApproved, domainLoan.StatusRejected:
	default:
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Invalid status filter %q", status)
	}
	apps, err := u.reads.Loans.List(ctx, status)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(apps))
	seen := make(map[uint64]bool, len(apps))
	for i := range apps {
		if !seen[apps[i].UserID] {
			seen[apps[i].UserID] = true
			ids = append(ids, apps[i].UserID)
		}
	}
	users, err := u.reads.Users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*domainUser.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	out := make([]AdminApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toAdminDTO(&apps[i], byID[apps[i].UserID]))
	}
	return out, nil
}

// Get returns one application with its applicant, the product it was
// submitted against (nil when none or since retired) and its audit trail.
func (u *Usecase) Get(ctx context.Context, id uint64) (*ApplicationDetail, error) {
	a, err := u.reads.Loans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.NewRuleError(domainLoan.ErrNotFound, "Loan not found")
		}
		return nil, err
	}

	var applicant *domainUser.User
	usr, err := u.reads.Users.GetByID(ctx, a.UserID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, err
	default:
		applicant = usr
	}

	var prod *domainProduct.Product
	if a.LoanProductID != nil {
		p, err := u.reads.Products.GetActiveByID(ctx, *a.LoanProductID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return nil, err
		default:
			prod = p
		}
	}

	acts, err := u.reads.Actions.ListByLoanID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if acts == nil {
		acts = []domainReview.AdminAction{}
	}

	return &ApplicationDetail{
		Application: toAdminDTO(a, applicant),
		Product:     prod,
		Actions:     acts,
	}, nil
}

func toAdminDTO(a *domainLoan.Application, applicant *domainUser.User) AdminApplicationDTO {
	out := AdminApplicationDTO{ApplicationDTO: loanUsecase.ToDTO(a)}
	if applicant != nil {
		out.FullName = applicant.FullName
		out.Email = applicant.Email
	}
	return out
}
