package vesting

import (
	"math/big"
)

// The accrual engine is side-effect free: it reads an allocation record,
// the round's configuration and the round's listing timestamp, and
// reports how much is claimable right now together with the new
// last-claimed period index. Persisting the index is the caller's job.
//
// All period arithmetic is integer floor division. Months are 30-day
// blocks; a started month counts as elapsed once at least one full month
// has passed (the round-up-partial-month rule), which is what makes the
// lock gate strict: nothing is claimable during the lock month itself.

// periodRate is the fixed per-period release for the given allocation,
// established by the round's configuration.
func periodRate(totalAllocations *big.Int, cfg *RoundConfig) *big.Int {
	if cfg.Granularity == ReleaseDaily {
		return new(big.Int).Div(totalAllocations, new(big.Int).SetUint64(cfg.ReleasePeriods))
	}
	return applyScaledPercent(totalAllocations, cfg.MonthlyPercent)
}

func elapsedMonths(elapsed uint64) uint64 {
	months := elapsed / monthLength
	partialDays := (elapsed / dayLength) % daysPerMonth
	if partialDays > 0 && months > 0 {
		months++
	}
	return months
}

func periodLength(cfg *RoundConfig) uint64 {
	if cfg.Granularity == ReleaseDaily {
		return dayLength
	}
	return monthLength
}

// computeClaimable returns the amount claimable at `now` for a periodic
// (non-TGE) claim, plus the period index the caller must persist on
// success. A zero amount with a nil error means nothing has accrued
// since the last claim; the caller surfaces that as NothingToClaim.
func computeClaimable(allocation *Allocation, cfg *RoundConfig, listingTimestamp, now uint64) (*big.Int, uint64, error) {
	totalAllocations, err := parseAmount("totalAllocations", allocation.TotalAllocations)
	if err != nil {
		return nil, 0, err
	}
	claimedAmount, err := parseAmount("claimedAmount", allocation.ClaimedAmount)
	if err != nil {
		return nil, 0, err
	}

	remaining := new(big.Int).Sub(totalAllocations, claimedAmount)
	if remaining.Sign() <= 0 {
		return big.NewInt(0), allocation.LastClaimedPeriod, nil
	}

	if now <= listingTimestamp {
		return nil, 0, ErrLockPeriodActive
	}
	elapsed := now - listingTimestamp

	months := elapsedMonths(elapsed)
	if months <= cfg.LockMonths {
		return nil, 0, ErrLockPeriodActive
	}

	// Periods are counted from the end of the lock window, so the first
	// claimable day after a 1-month lock is period 1, not period 31.
	vestedElapsed := elapsed - cfg.LockMonths*monthLength
	periods := vestedElapsed / periodLength(cfg)

	// Fully matured: pay the exact remainder instead of rate*periods so
	// truncation dust is never stranded.
	if months > cfg.LockMonths+cfg.VestingMonths {
		return remaining, periods, nil
	}

	if periods <= allocation.LastClaimedPeriod {
		return big.NewInt(0), allocation.LastClaimedPeriod, nil
	}

	delta := new(big.Int).SetUint64(periods - allocation.LastClaimedPeriod)
	claimable := new(big.Int).Mul(periodRate(totalAllocations, cfg), delta)
	if claimable.Cmp(remaining) > 0 {
		claimable = remaining
	}

	return claimable, periods, nil
}

// computeTGEAmount fixes the TGE unlock at grant time.
func computeTGEAmount(totalAllocations *big.Int, cfg *RoundConfig) *big.Int {
	return applyScaledPercent(totalAllocations, cfg.TGEPercent)
}
