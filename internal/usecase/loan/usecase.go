package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const unemployed = "unemployed"

// Recorder receives one outcome per submission ("created" or an error code).
type Recorder interface {
	Submission(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Submission(string) {}

type Usecase struct {
	uow    uow.UnitOfWork
	reads  uow.Repos
	policy Policy
	log    *zap.Logger
	rec    Recorder
}

// NewUsecase wires the engine. reads must be bound to the connection pool, not a tx.
func NewUsecase(u uow.UnitOfWork, reads uow.Repos, p Policy, log *zap.Logger, rec Recorder) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Usecase{uow: u, reads: reads, policy: p, log: log, rec: rec}
}

func (u *Usecase) Submit(ctx context.Context, userID uint64, in SubmitInput) (*ApplicationDTO, error) {
	// id 0 means "not selected"
	in.LoanProductID = nonZero(in.LoanProductID)
	in.VendorID = nonZero(in.VendorID)
	if err := validateSubmit(in); err != nil {
		return nil, u.fail(userID, err)
	}

	if u.policy.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.policy.TxTimeout)
		defer cancel()
	}

	var created *loan.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// lock order: product, profile, active applications
		if err := u.checkProduct(ctx, r, in); err != nil {
			return err
		}
		if err := u.checkProfile(ctx, r, userID); err != nil {
			return err
		}
		if err := u.checkDocuments(ctx, r, userID); err != nil {
			return err
		}
		if err := checkExclusive(ctx, r, userID); err != nil {
			return err
		}
		if in.DeclaredEmploymentStatus == unemployed {
			return loan.NewRuleError(loan.ErrEmploymentRule, "Employment status must not be %q", unemployed)
		}
		maxAffordable := u.policy.MaxAffordable(in.DeclaredMonthlyIncome, in.RepaymentPeriodMonths)
		if in.Amount.GreaterThan(maxAffordable) {
			return loan.NewRuleError(loan.ErrAffordabilityExceeded,
				"Requested amount exceeds affordable limit of K%s", maxAffordable.StringFixed(2))
		}

		a := &loan.Application{
			UserID:                   userID,
			VendorID:                 in.VendorID,
			LoanProductID:            in.LoanProductID,
			LoanAmount:               in.Amount,
			LoanPurpose:              strings.TrimSpace(in.Purpose),
			RepaymentPeriodMonths:    in.RepaymentPeriodMonths,
			DeclaredEmploymentStatus: in.DeclaredEmploymentStatus,
			DeclaredMonthlyIncome:    in.DeclaredMonthlyIncome,
			TermsAccepted:            in.TermsAccepted,
			AffordabilityRatio:       u.policy.AffordabilityRatio,
			MaxAffordableAmount:      maxAffordable.Round(2),
			Status:                   loan.StatusPending,
		}
		if err := r.Loans.Create(ctx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, u.fail(userID, err)
	}

	u.rec.Submission("created")
	u.log.Info("loan application submitted",
		zap.Uint64("user_id", userID),
		zap.Uint64("application_id", created.ID),
		zap.String("amount", created.LoanAmount.StringFixed(2)),
	)
	dto := ToDTO(created)
	return &dto, nil
}

// fail passes rule errors through unchanged and wraps everything else.
func (u *Usecase) fail(userID uint64, err error) error {
	var re *loan.RuleError
	if errors.As(err, &re) {
		u.rec.Submission(loan.Code(err))
		u.log.Debug("loan application rejected", zap.Uint64("user_id", userID), zap.String("code", loan.Code(err)), zap.String("reason", re.Msg))
		return err
	}
	u.rec.Submission(loan.Code(err))
	u.log.Error("loan application failed", zap.Uint64("user_id", userID), zap.Error(err))
	return fmt.Errorf("submit application: %w", err)
}

// validateSubmit treats a zero amount or tenure as missing; a zero income is
// present but not positive.
func validateSubmit(in SubmitInput) error {
	if in.Amount.IsZero() || strings.TrimSpace(in.Purpose) == "" || in.RepaymentPeriodMonths == 0 ||
		strings.TrimSpace(in.DeclaredEmploymentStatus) == "" || !in.TermsAccepted {
		return loan.NewRuleError(loan.ErrValidation, "Missing required fields")
	}
	if in.Amount.IsNegative() || in.RepaymentPeriodMonths < 0 || !in.DeclaredMonthlyIncome.IsPositive() {
		return loan.NewRuleError(loan.ErrValidation, "Amount, repayment period, and income must be positive")
	}
	return nil
}

func nonZero(id *uint64) *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func (u *Usecase) checkProduct(ctx context.Context, r uow.Repos, in SubmitInput) error {
	if in.LoanProductID == nil {
		if in.Amount.LessThan(u.policy.MinAmount) || in.Amount.GreaterThan(u.policy.MaxAmount) {
			return loan.NewRuleError(loan.ErrGlobalRange, "Loan amount must be between K%s and K%s",
				u.policy.MinAmount.String(), u.policy.MaxAmount.String())
		}
		return nil
	}

	p, err := r.Products.GetActiveByIDForUpdate(ctx, *in.LoanProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.NewRuleError(loan.ErrInvalidProduct, "Selected loan product is invalid or inactive")
		}
		return err
	}
	if in.VendorID != nil && *in.VendorID != p.VendorID {
		return loan.NewRuleError(loan.ErrInvalidProduct, "Product does not belong to the selected vendor")
	}
	if in.Amount.LessThan(p.MinAmount) || in.Amount.GreaterThan(p.MaxAmount) {
		return loan.NewRuleError(loan.ErrProductConstraint, "Amount must be between %s and %s for this product",
			p.MinAmount.StringFixed(2), p.MaxAmount.StringFixed(2))
	}
	if in.RepaymentPeriodMonths < p.MinTenureMonths || in.RepaymentPeriodMonths > p.MaxTenureMonths {
		return loan.NewRuleError(loan.ErrProductConstraint, "Tenure must be between %d and %d months",
			p.MinTenureMonths, p.MaxTenureMonths)
	}
	if p.MinIncomeRequirement != nil && p.MinIncomeRequirement.IsPositive() &&
		in.DeclaredMonthlyIncome.LessThan(*p.MinIncomeRequirement) {
		return loan.NewRuleError(loan.ErrProductConstraint, "You do not meet the minimum income requirement of %s",
			p.MinIncomeRequirement.StringFixed(2))
	}
	return nil
}

func (u *Usecase) checkProfile(ctx context.Context, r uow.Repos, userID uint64) error {
	p, err := r.Profiles.GetByUserIDForUpdate(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = nil
	case err != nil:
		return err
	}
	if missing := p.MissingFields(); len(missing) > 0 {
		u.log.Debug("profile incomplete", zap.Uint64("user_id", userID), zap.Strings("missing", missing))
		return loan.NewRuleError(loan.ErrIncompleteProfile, "Complete your profile before applying for a loan")
	}
	return nil
}

func (u *Usecase) checkDocuments(ctx context.Context, r uow.Repos, userID uint64) error {
	types, err := r.Documents.ListDocTypes(ctx, userID)
	if err != nil {
		return err
	}
	missing := missingDocTypes(types, u.policy.RequiredDocTypes())
	if len(missing) == 0 {
		return nil
	}
	labels := make([]string, len(missing))
	for i, m := range missing {
		labels[i] = DocLabel(m)
	}
	return loan.NewRuleError(loan.ErrMissingDocuments, "Upload your %s before applying (missing: %s)",
		strings.Join(labels, " and "), strings.Join(missing, ", "))
}

func missingDocTypes(have, required []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	var out []string
	for _, t := range required {
		if _, ok := set[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func checkExclusive(ctx context.Context, r uow.Repos, userID uint64) error {
	active, err := r.Loans.ListActiveByUserIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return loan.NewRuleError(loan.ErrDuplicateApplication, "You already have an active loan application")
	}
	return nil
}

func (u *Usecase) ListMine(ctx context.Context, userID uint64) ([]ApplicationDTO, error) {
	apps, err := u.reads.Loans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, ToDTO(&apps[i]))
	}
	return out, nil
}
