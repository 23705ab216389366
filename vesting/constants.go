package vesting

// Round is the closed set of allocation rounds this contract vests for.
// Economic parameters per round are literal configuration data and never
// change after deployment; only the listing timestamp of a round is
// admin-settable (see SetListingTimestamp).
type Round int

const (
	solhubFoundation = "6f1a8e9b3c24d07f5a8e102bd4c6937fe0a4b851"

	// The vesting contract's own address on the network. Token custody
	// pulled from the foundation at grant time is held under this address
	// in the SOLHUB token chaincode.
	vestingContractAddress = "klp-736f6c68756276657374696e67-cc"

	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`

	tokenAddressKey      = "solhubToken"
	pausedKey            = "contract_paused"
	custodyKey           = "custody_balance"
	totalClaimsForAllKey = "total_claims_for_all"

	allocationKeyPrefix  = "allocations"
	userRoundsKeyPrefix  = "userrounds"
	totalClaimsKeyPrefix = "totalclaims"
	totalGrantsKeyPrefix = "totalgrants"
	listingKeyPrefix     = "listing"

	allocationDocType = "solhub-allocation"

	tokenBalanceOfFn    = "BalanceOf"
	tokenTransferFn     = "Transfer"
	tokenTransferFromFn = "TransferFrom"

	dayLength    = uint64(24 * 60 * 60)
	monthLength  = uint64(30 * 24 * 60 * 60)
	daysPerMonth = uint64(30)

	// Percentages are carried scaled by 10_000 against a 1_000_000
	// denominator, so 5% is 50_000 and 8.3333% is 83_333.
	percentScale = uint64(1_000_000)
)

const (
	Seed Round = iota
	Strategic
	Private
	Marketing
	Advisors
	Team
	Reserve
)

func (r Round) String() string {
	return [...]string{
		"Seed",
		"Strategic",
		"Private",
		"Marketing",
		"Advisors",
		"Team",
		"Reserve",
	}[r]
}

// ReleaseGranularity selects how a round's linear accrual is metered.
type ReleaseGranularity int

const (
	ReleaseDaily ReleaseGranularity = iota
	ReleaseMonthly
)

// RoundConfig holds the economic parameters of one round. Daily rounds
// release totalAllocations/ReleasePeriods tokens per day, monthly rounds
// release totalAllocations*MonthlyPercent/percentScale per month. The
// supply cap is expressed in whole tokens.
type RoundConfig struct {
	Round          Round              `json:"round"`
	LockMonths     uint64             `json:"lockMonths"`
	VestingMonths  uint64             `json:"vestingMonths"`
	TGEPercent     uint64             `json:"tgePercent"`
	Granularity    ReleaseGranularity `json:"granularity"`
	ReleasePeriods uint64             `json:"releasePeriods"`
	MonthlyPercent uint64             `json:"monthlyPercent"`
	SupplyCap      uint64             `json:"supplyCap"`
}

var allRounds = []Round{
	Seed,
	Strategic,
	Private,
	Marketing,
	Advisors,
	Team,
	Reserve,
}

var roundCatalog = map[string]*RoundConfig{
	Seed.String():      {Round: Seed, LockMonths: 1, VestingMonths: 12, TGEPercent: 50_000, Granularity: ReleaseDaily, ReleasePeriods: 365, SupplyCap: 400_000_000},
	Strategic.String(): {Round: Strategic, LockMonths: 1, VestingMonths: 10, TGEPercent: 75_000, Granularity: ReleaseDaily, ReleasePeriods: 300, SupplyCap: 300_000_000},
	Private.String():   {Round: Private, LockMonths: 0, VestingMonths: 9, TGEPercent: 100_000, Granularity: ReleaseDaily, ReleasePeriods: 270, SupplyCap: 350_000_000},
	Marketing.String(): {Round: Marketing, LockMonths: 0, VestingMonths: 24, TGEPercent: 100_000, Granularity: ReleaseMonthly, MonthlyPercent: 37_500, SupplyCap: 200_000_000},
	Advisors.String():  {Round: Advisors, LockMonths: 6, VestingMonths: 12, TGEPercent: 0, Granularity: ReleaseMonthly, MonthlyPercent: 83_333, SupplyCap: 100_000_000},
	Team.String():      {Round: Team, LockMonths: 12, VestingMonths: 24, TGEPercent: 0, Granularity: ReleaseMonthly, MonthlyPercent: 41_666, SupplyCap: 450_000_000},
	Reserve.String():   {Round: Reserve, LockMonths: 3, VestingMonths: 36, TGEPercent: 20_000, Granularity: ReleaseMonthly, MonthlyPercent: 27_777, SupplyCap: 700_000_000},
}

// GetRoundConfig looks a round up in the catalog.
func GetRoundConfig(roundID string) (*RoundConfig, error) {
	cfg, ok := roundCatalog[roundID]
	if !ok {
		return nil, ErrInvalidRound(roundID)
	}
	return cfg, nil
}

func isValidRound(roundID string) bool {
	_, ok := roundCatalog[roundID]
	return ok
}
