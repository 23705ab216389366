package vesting

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testDay   = uint64(24 * 60 * 60)
	testMonth = 30 * testDay

	// 10,000 whole tokens in wei.
	testTotal = "10000000000000000000000"
)

func testAllocation(total, claimed string, lastPeriod uint64) *Allocation {
	return &Allocation{
		DocType:           allocationDocType,
		Round:             Seed.String(),
		Beneficiary:       "2da4c4908a393a387b728206b18388bc529fa8d7",
		TotalAllocations:  total,
		TGEAmount:         "0",
		ClaimedAmount:     claimed,
		IsActive:          true,
		LastClaimedPeriod: lastPeriod,
	}
}

func TestElapsedMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elapsed  uint64
		expected uint64
	}{
		{"zero", 0, 0},
		{"ten days stays in month zero", 10 * testDay, 0},
		{"exactly one month", testMonth, 1},
		{"one month plus a day rounds up", testMonth + testDay, 2},
		{"one month plus 29 days rounds up", testMonth + 29*testDay, 2},
		{"exactly two months", 2 * testMonth, 2},
		{"64 days", 64 * testDay, 3},
		{"395 days", 395 * testDay, 14},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, elapsedMonths(tt.elapsed))
		})
	}
}

func TestPeriodRate(t *testing.T) {
	t.Parallel()

	total, ok := new(big.Int).SetString(testTotal, 10)
	require.True(t, ok)

	tests := []struct {
		name     string
		round    Round
		expected string
	}{
		{"daily seed round", Seed, "27397260273972602739"},
		{"daily private round", Private, "37037037037037037037"},
		{"monthly marketing round", Marketing, "375000000000000000000"},
		{"monthly advisors round", Advisors, "833330000000000000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := GetRoundConfig(tt.round.String())
			require.NoError(t, err)
			require.Equal(t, tt.expected, periodRate(total, cfg).String())
		})
	}
}

func TestComputeClaimableLockGate(t *testing.T) {
	t.Parallel()

	seedCfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)
	advisorsCfg, err := GetRoundConfig(Advisors.String())
	require.NoError(t, err)

	listing := uint64(1_700_000_000)

	tests := []struct {
		name string
		cfg  *RoundConfig
		now  uint64
	}{
		{"at listing instant", seedCfg, listing},
		{"before listing", seedCfg, listing - testDay},
		{"ten days into one month lock", seedCfg, listing + 10*testDay},
		{"exactly at lock month end", seedCfg, listing + testMonth},
		{"advisors at six month lock end", advisorsCfg, listing + 6*testMonth},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := computeClaimable(testAllocation(testTotal, "0", 0), tt.cfg, listing, tt.now)
			require.ErrorIs(t, err, ErrLockPeriodActive)
		})
	}
}

func TestComputeClaimableDailyAccrual(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)
	listing := uint64(1_700_000_000)

	// Day after the lock month ends: exactly one daily period has vested.
	claimable, newIndex, err := computeClaimable(testAllocation(testTotal, "0", 0), cfg, listing, listing+31*testDay)
	require.NoError(t, err)
	require.Equal(t, "27397260273972602739", claimable.String())
	require.Equal(t, uint64(1), newIndex)

	// 34 days past the lock month: 34 periods at totalAllocations/365.
	claimable, newIndex, err = computeClaimable(testAllocation(testTotal, "0", 0), cfg, listing, listing+64*testDay)
	require.NoError(t, err)
	require.Equal(t, "931506849315068493126", claimable.String())
	require.Equal(t, uint64(34), newIndex)

	// Same instant with period 34 already claimed: nothing new.
	claimable, newIndex, err = computeClaimable(testAllocation(testTotal, "931506849315068493126", 34), cfg, listing, listing+64*testDay)
	require.NoError(t, err)
	require.Zero(t, claimable.Sign())
	require.Equal(t, uint64(34), newIndex)

	// Ten more days accrue exactly ten more periods.
	claimable, newIndex, err = computeClaimable(testAllocation(testTotal, "931506849315068493126", 34), cfg, listing, listing+74*testDay)
	require.NoError(t, err)
	require.Equal(t, "273972602739726027390", claimable.String())
	require.Equal(t, uint64(44), newIndex)
}

func TestComputeClaimableMonthlyAccrual(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Marketing.String())
	require.NoError(t, err)
	listing := uint64(1_700_000_000)

	// Two full months plus a day: two monthly periods at 3.75%.
	claimable, newIndex, err := computeClaimable(testAllocation(testTotal, "0", 0), cfg, listing, listing+61*testDay)
	require.NoError(t, err)
	require.Equal(t, "750000000000000000000", claimable.String())
	require.Equal(t, uint64(2), newIndex)

	// Advisors past the lock gate but short of the first monthly period.
	advisorsCfg, err := GetRoundConfig(Advisors.String())
	require.NoError(t, err)
	claimable, newIndex, err = computeClaimable(testAllocation(testTotal, "0", 0), advisorsCfg, listing, listing+6*testMonth+testDay)
	require.NoError(t, err)
	require.Zero(t, claimable.Sign())
	require.Equal(t, uint64(0), newIndex)
}

func TestComputeClaimableMaturity(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)
	listing := uint64(1_700_000_000)

	// 395 days is past lock + vesting; the exact remainder is paid out so
	// integer-division dust never strands.
	allocation := testAllocation(testTotal, "1205479452054794520516", 44)
	claimable, newIndex, err := computeClaimable(allocation, cfg, listing, listing+395*testDay)
	require.NoError(t, err)
	require.Equal(t, "8794520547945205479484", claimable.String())
	require.Equal(t, uint64(365), newIndex)
}

func TestComputeClaimableCappedAtRemaining(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)
	listing := uint64(1_700_000_000)

	allocation := testAllocation(testTotal, "9990000000000000000000", 0)
	claimable, newIndex, err := computeClaimable(allocation, cfg, listing, listing+64*testDay)
	require.NoError(t, err)
	require.Equal(t, "10000000000000000000", claimable.String())
	require.Equal(t, uint64(34), newIndex)
}

func TestComputeClaimableExhausted(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)
	listing := uint64(1_700_000_000)

	// A fully claimed allocation reports zero without touching the clock,
	// even before listing.
	allocation := testAllocation(testTotal, testTotal, 365)
	claimable, newIndex, err := computeClaimable(allocation, cfg, listing, listing-testDay)
	require.NoError(t, err)
	require.Zero(t, claimable.Sign())
	require.Equal(t, uint64(365), newIndex)
}

func TestComputeClaimableBadAmount(t *testing.T) {
	t.Parallel()

	cfg, err := GetRoundConfig(Seed.String())
	require.NoError(t, err)

	_, _, err = computeClaimable(testAllocation("not-a-number", "0", 0), cfg, 1, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAmount")
}

func TestComputeTGEAmount(t *testing.T) {
	t.Parallel()

	total, ok := new(big.Int).SetString(testTotal, 10)
	require.True(t, ok)

	tests := []struct {
		name     string
		round    Round
		expected string
	}{
		{"seed unlocks 5 percent", Seed, "500000000000000000000"},
		{"strategic unlocks 7.5 percent", Strategic, "750000000000000000000"},
		{"private unlocks 10 percent", Private, "1000000000000000000000"},
		{"team has no unlock", Team, "0"},
		{"reserve unlocks 2 percent", Reserve, "200000000000000000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := GetRoundConfig(tt.round.String())
			require.NoError(t, err)
			require.Equal(t, tt.expected, computeTGEAmount(total, cfg).String())
		})
	}
}
