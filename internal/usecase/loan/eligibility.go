package loan

import (
	"context"
	"errors"
	"fmt"

	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/profile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Preview evaluates the profile, document, exclusivity, employment and
// affordability checks without locks or writes. A failed read turns into a
// failed entry for its own check; it never aborts the preview.
func (u *Usecase) Preview(ctx context.Context, userID uint64) *Eligibility {
	var (
		prof      *profile.CustomerProfile
		profErr   error
		docTypes  []string
		docErr    error
		active    []loan.Application
		activeErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		p, err := u.reads.Profiles.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			profErr = err
		default:
			prof = p
		}
		return nil
	})
	g.Go(func() error {
		docTypes, docErr = u.reads.Documents.ListDocTypes(ctx, userID)
		return nil
	})
	g.Go(func() error {
		active, activeErr = u.reads.Loans.ListActiveByUserID(ctx, userID)
		return nil
	})
	_ = g.Wait()

	var checks []Check
	add := func(ok bool, format string, args ...any) {
		checks = append(checks, Check{OK: ok, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case profErr != nil:
		u.log.Warn("eligibility: profile read failed", zap.Uint64("user_id", userID), zap.Error(profErr))
		add(false, "Error checking profile completeness")
	case prof.Complete():
		add(true, "Profile complete")
	default:
		add(false, "Complete your profile to apply for a loan")
	}

	if docErr != nil {
		u.log.Warn("eligibility: documents read failed", zap.Uint64("user_id", userID), zap.Error(docErr))
		add(false, "Error checking document uploads")
	} else {
		missing := missingDocTypes(docTypes, u.policy.RequiredDocTypes())
		for _, t := range u.policy.RequiredDocTypes() {
			if contains(missing, t) {
				add(false, "Upload your %s before applying", DocLabel(t))
			} else {
				add(true, "%s uploaded", DocLabel(t))
			}
		}
	}

	switch {
	case activeErr != nil:
		u.log.Warn("eligibility: active applications read failed", zap.Uint64("user_id", userID), zap.Error(activeErr))
		add(false, "Error checking active loans")
	case len(active) == 0:
		add(true, "No active loans")
	case active[0].Status == loan.StatusApproved:
		add(false, "You already have an approved loan. View your loan status for details.")
	default:
		add(false, "You already have a loan application under review")
	}

	if prof != nil {
		switch {
		case prof.EmploymentStatus == unemployed:
			add(false, "Employment status must not be %q", unemployed)
		case prof.EmploymentStatus != "":
			add(true, "Employment status acceptable")
		}
		if prof.MonthlyIncome.IsPositive() {
			maxAffordable := u.policy.MaxAffordable(prof.MonthlyIncome, u.policy.PreviewMonths)
			add(true, "Maximum affordable amount: K%s", maxAffordable.StringFixed(2))
		}
	}

	eligible := len(checks) > 0
	for _, c := range checks {
		eligible = eligible && c.OK
	}
	return &Eligibility{
		Eligible: eligible,
		Checks:   checks,
		Limits:   Limits{Min: u.policy.MinAmount, Max: u.policy.MaxAmount},
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
