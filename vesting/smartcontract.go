package vesting

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type SmartContract struct {
	kalpsdk.Contract
}

// Initialize stamps every round in the catalog with the global listing
// (TGE) timestamp. Callable once, by the foundation only.
func (s *SmartContract) Initialize(ctx kalpsdk.TransactionContextInterface, startTimestamp uint64) error {
	if startTimestamp == 0 {
		return NewCustomError(http.StatusBadRequest, "listing timestamp cannot be zero", ErrCannotBeZero)
	}

	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}

	initialized, err := ctx.GetState(fmt.Sprintf("%s_%s", listingKeyPrefix, Seed.String()))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to check initialization state", err)
	}
	if initialized != nil {
		return NewCustomError(http.StatusConflict, "rounds are already initialized", ErrAlreadyInitialized)
	}

	for _, round := range allRounds {
		cfg := roundCatalog[round.String()]

		if err := setListingTimestamp(ctx, round.String(), startTimestamp); err != nil {
			return err
		}
		if err := EmitRoundInitialized(ctx, cfg, startTimestamp); err != nil {
			return err
		}
	}

	if err := setPaused(ctx, false); err != nil {
		return err
	}

	return nil
}

// SetTokenAddress wires in the SOLHUB token chaincode. Write-once.
func (s *SmartContract) SetTokenAddress(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}

	if !IsContractAddressValid(tokenAddress) {
		return NewCustomError(http.StatusBadRequest, "token address is not a contract address", ErrInvalidContractAddress(tokenAddress))
	}

	existingAddress, err := ctx.GetState(tokenAddressKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get token address state", err)
	}
	if existingAddress != nil && string(existingAddress) != "" {
		return NewCustomError(http.StatusConflict, "solhub token address is already set", ErrTokenAlreadySet)
	}

	if err := ctx.PutStateWithoutKYC(tokenAddressKey, []byte(tokenAddress)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set token address", err)
	}

	return EmitTokenAddressSet(ctx, tokenAddress)
}

// SetListingTimestamp moves one round's TGE instant. Only allowed while
// the round's current TGE still lies in the future.
func (s *SmartContract) SetListingTimestamp(ctx kalpsdk.TransactionContextInterface, roundID string, listingTimestamp uint64) error {
	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}
	if listingTimestamp == 0 {
		return NewCustomError(http.StatusBadRequest, "listing timestamp cannot be zero", ErrCannotBeZero)
	}
	if !isValidRound(roundID) {
		return NewCustomError(http.StatusBadRequest, "unknown round", ErrInvalidRound(roundID))
	}

	current, err := getListingTimestamp(ctx, roundID)
	if err != nil {
		return err
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}
	if now >= current {
		return NewCustomError(http.StatusConflict, fmt.Sprintf("TGE for round %s has already passed", roundID), nil)
	}

	if err := setListingTimestamp(ctx, roundID, listingTimestamp); err != nil {
		return err
	}

	return EmitListingTimestampSet(ctx, roundID, listingTimestamp)
}

// Pause suspends all claim flows.
func (s *SmartContract) Pause(ctx kalpsdk.TransactionContextInterface) error {
	return s.togglePause(ctx, true)
}

// Unpause resumes claim flows.
func (s *SmartContract) Unpause(ctx kalpsdk.TransactionContextInterface) error {
	return s.togglePause(ctx, false)
}

func (s *SmartContract) togglePause(ctx kalpsdk.TransactionContextInterface, paused bool) error {
	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if err := setPaused(ctx, paused); err != nil {
		return err
	}

	return EmitPauseToggled(ctx, paused, signer)
}

// AddBeneficiary grants a single allocation.
func (s *SmartContract) AddBeneficiary(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary, amount string) error {
	return s.AddBeneficiaries(ctx, roundID, []string{beneficiary}, []string{amount})
}

// AddBeneficiaries grants a batch of allocations bound to one round. The
// whole batch is validated before the first write, the foundation
// balance is checked against the summed amount, and the sum is pulled
// into contract custody with a single TransferFrom.
func (s *SmartContract) AddBeneficiaries(ctx kalpsdk.TransactionContextInterface, roundID string, beneficiaries []string, amounts []string) error {
	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}

	cfg, err := GetRoundConfig(roundID)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "unknown round", err)
	}

	if len(beneficiaries) == 0 {
		return NewCustomError(http.StatusBadRequest, "empty grant batch", ErrNoBeneficiaries)
	}
	if len(beneficiaries) != len(amounts) {
		return NewCustomError(http.StatusBadRequest, "grant batch shape", ErrLengthMismatch(len(beneficiaries), len(amounts)))
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	// Validation pass. Nothing is written until the whole batch and the
	// foundation's funding both check out.
	parsedAmounts := make([]*big.Int, len(beneficiaries))
	totalAllocations := big.NewInt(0)
	seen := make(map[string]bool, len(beneficiaries))
	for i, beneficiary := range beneficiaries {
		if !IsUserAddressValid(beneficiary) {
			return NewCustomError(http.StatusBadRequest, "bad beneficiary address", ErrInvalidBeneficiary(beneficiary))
		}
		if seen[beneficiary] {
			return NewCustomError(http.StatusConflict, "duplicate beneficiary in batch", ErrAlreadyGranted(roundID, beneficiary))
		}
		seen[beneficiary] = true

		amount, err := parseAmount(fmt.Sprintf("beneficiary %s", beneficiary), amounts[i])
		if err != nil {
			return NewCustomError(http.StatusBadRequest, "bad grant amount", err)
		}
		if amount.Sign() <= 0 {
			return NewCustomError(http.StatusBadRequest, "bad grant amount", ErrZeroGrantAmount(beneficiary))
		}

		exists, err := hasAllocation(ctx, roundID, beneficiary)
		if err != nil {
			return err
		}
		if exists {
			return NewCustomError(http.StatusConflict, "beneficiary already granted", ErrAlreadyGranted(roundID, beneficiary))
		}

		parsedAmounts[i] = amount
		totalAllocations.Add(totalAllocations, amount)
	}

	granted, err := getCounter(ctx, totalGrantsKey(roundID))
	if err != nil {
		return err
	}
	supplyCap, err := parseAmount("supplyCap", ConvertSolhubToWei(cfg.SupplyCap))
	if err != nil {
		return err
	}
	if new(big.Int).Add(granted, totalAllocations).Cmp(supplyCap) > 0 {
		return NewCustomError(http.StatusConflict, "grant batch exceeds round supply", ErrRoundSupplyReached(roundID))
	}

	foundationBalance, err := tokenBalanceOf(ctx, solhubFoundation)
	if err != nil {
		return err
	}
	if foundationBalance.Cmp(totalAllocations) < 0 {
		return NewCustomError(http.StatusConflict,
			fmt.Sprintf("foundation balance %s is short of batch total %s", foundationBalance.String(), totalAllocations.String()),
			ErrInsufficientFunds)
	}

	for i, beneficiary := range beneficiaries {
		if err := grantAllocation(ctx, cfg, roundID, beneficiary, parsedAmounts[i], now); err != nil {
			return err
		}
	}

	if err := setCounter(ctx, totalGrantsKey(roundID), granted.Add(granted, totalAllocations)); err != nil {
		return err
	}
	if err := creditCustody(ctx, totalAllocations); err != nil {
		return err
	}

	if err := tokenTransferFrom(ctx, solhubFoundation, vestingContractAddress, totalAllocations); err != nil {
		return err
	}

	return EmitBeneficiariesAdded(ctx, roundID, uint64(len(beneficiaries)), totalAllocations.String())
}

func grantAllocation(ctx kalpsdk.TransactionContextInterface, cfg *RoundConfig, roundID, beneficiary string, amount *big.Int, now uint64) error {
	allocation := &Allocation{
		DocType:          allocationDocType,
		Round:            roundID,
		Beneficiary:      beneficiary,
		TotalAllocations: amount.String(),
		TGEAmount:        computeTGEAmount(amount, cfg).String(),
		ClaimedAmount:    "0",
		IsTGEClaimed:     false,
		IsActive:         true,
		GrantTimestamp:   now,
	}

	if err := setAllocation(ctx, allocation); err != nil {
		return err
	}

	userRoundsList, err := getUserRounds(ctx, beneficiary)
	if err != nil {
		return err
	}

	return setUserRounds(ctx, beneficiary, append(userRoundsList, roundID))
}

// checkTGEEligibility reports the TGE amount the allocation can claim at
// `now`, or the reason it cannot.
func checkTGEEligibility(allocation *Allocation, listingTimestamp, now uint64) (*big.Int, error) {
	if now < listingTimestamp {
		return nil, NewCustomError(http.StatusConflict, fmt.Sprintf("TGE for round %s has not started", allocation.Round), ErrTGENotStarted)
	}

	totalAllocations, err := parseAmount("totalAllocations", allocation.TotalAllocations)
	if err != nil {
		return nil, err
	}
	if totalAllocations.Sign() == 0 {
		return nil, NewCustomError(http.StatusNotFound, fmt.Sprintf("no allocation for round %s", allocation.Round), ErrNothingToClaim)
	}
	if !allocation.IsActive || allocation.IsTGEClaimed {
		return nil, NewCustomError(http.StatusConflict, fmt.Sprintf("TGE for round %s is already settled", allocation.Round), ErrNothingToClaim)
	}

	tgeAmount, err := parseAmount("tgeAmount", allocation.TGEAmount)
	if err != nil {
		return nil, err
	}
	if tgeAmount.Sign() == 0 {
		return nil, NewCustomError(http.StatusConflict, fmt.Sprintf("round %s has no TGE unlock", allocation.Round), ErrNothingToClaim)
	}

	return tgeAmount, nil
}

// commitTGEClaim credits the TGE amount, flips the one-way flag and
// zeroes the stored unlock so it can never be re-read.
func commitTGEClaim(ctx kalpsdk.TransactionContextInterface, allocation *Allocation, tgeAmount *big.Int) error {
	totalAllocations, err := parseAmount("totalAllocations", allocation.TotalAllocations)
	if err != nil {
		return err
	}
	claimedAmount, err := parseAmount("claimedAmount", allocation.ClaimedAmount)
	if err != nil {
		return err
	}

	claimedAmount.Add(claimedAmount, tgeAmount)
	if claimedAmount.Cmp(totalAllocations) > 0 {
		return NewCustomError(http.StatusConflict, "TGE claim overflows allocation",
			ErrExceedsAllocation(allocation.Round, allocation.Beneficiary, claimedAmount.String(), allocation.TotalAllocations))
	}

	allocation.ClaimedAmount = claimedAmount.String()
	allocation.IsTGEClaimed = true
	allocation.TGEAmount = "0"
	if claimedAmount.Cmp(totalAllocations) == 0 {
		allocation.IsActive = false
	}

	if err := setAllocation(ctx, allocation); err != nil {
		return err
	}

	return bumpClaimCounters(ctx, allocation.Round, tgeAmount)
}

func bumpClaimCounters(ctx kalpsdk.TransactionContextInterface, roundID string, amount *big.Int) error {
	roundClaims, err := getCounter(ctx, totalClaimsKey(roundID))
	if err != nil {
		return err
	}
	if err := setCounter(ctx, totalClaimsKey(roundID), roundClaims.Add(roundClaims, amount)); err != nil {
		return err
	}

	allClaims, err := getCounter(ctx, totalClaimsForAllKey)
	if err != nil {
		return err
	}
	return setCounter(ctx, totalClaimsForAllKey, allClaims.Add(allClaims, amount))
}

// ClaimTGE pays out the signer's TGE unlock for one round.
func (s *SmartContract) ClaimTGE(ctx kalpsdk.TransactionContextInterface, roundID string) error {
	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}
	if err := requireKYC(ctx, signer); err != nil {
		return err
	}

	if !isValidRound(roundID) {
		return NewCustomError(http.StatusBadRequest, "unknown round", ErrInvalidRound(roundID))
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}
	listing, err := getListingTimestamp(ctx, roundID)
	if err != nil {
		return err
	}

	allocation, err := GetAllocation(ctx, roundID, signer)
	if err != nil {
		return err
	}

	tgeAmount, err := checkTGEEligibility(allocation, listing, now)
	if err != nil {
		return err
	}

	if err := commitTGEClaim(ctx, allocation, tgeAmount); err != nil {
		return err
	}
	if err := debitCustody(ctx, tgeAmount); err != nil {
		return err
	}

	// State is committed before the outbound invoke; a re-entrant call
	// now sees isTGEClaimed and gets rejected.
	if err := tokenTransfer(ctx, signer, tgeAmount); err != nil {
		return err
	}

	return EmitTGEClaimed(ctx, signer, []string{roundID}, tgeAmount.String())
}

// ClaimAllTGE settles the TGE unlock of every eligible round the signer
// participates in with a single outbound transfer. Rounds that are not
// yet eligible are skipped, not fatal.
func (s *SmartContract) ClaimAllTGE(ctx kalpsdk.TransactionContextInterface) error {
	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}
	if err := requireKYC(ctx, signer); err != nil {
		return err
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	userRoundsList, err := getUserRounds(ctx, signer)
	if err != nil {
		return err
	}

	totalAmount := big.NewInt(0)
	var claimedRounds []string
	for _, roundID := range userRoundsList {
		listing, err := getListingTimestamp(ctx, roundID)
		if err != nil {
			return err
		}

		allocation, err := GetAllocation(ctx, roundID, signer)
		if err != nil {
			return err
		}

		tgeAmount, eligErr := checkTGEEligibility(allocation, listing, now)
		if eligErr != nil {
			continue
		}

		if err := commitTGEClaim(ctx, allocation, tgeAmount); err != nil {
			return err
		}

		totalAmount.Add(totalAmount, tgeAmount)
		claimedRounds = append(claimedRounds, roundID)
	}

	if totalAmount.Sign() == 0 {
		return NewCustomError(http.StatusConflict, "no TGE unlock is claimable", ErrNothingToClaim)
	}

	if err := debitCustody(ctx, totalAmount); err != nil {
		return err
	}
	if err := tokenTransfer(ctx, signer, totalAmount); err != nil {
		return err
	}

	return EmitTGEClaimed(ctx, signer, claimedRounds, totalAmount.String())
}

// Claim pays out the signer's accrued periodic release for one round.
func (s *SmartContract) Claim(ctx kalpsdk.TransactionContextInterface, roundID string) error {
	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}
	if err := requireKYC(ctx, signer); err != nil {
		return err
	}

	cfg, err := GetRoundConfig(roundID)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "unknown round", err)
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}
	listing, err := getListingTimestamp(ctx, roundID)
	if err != nil {
		return err
	}

	allocation, err := GetAllocation(ctx, roundID, signer)
	if err != nil {
		return err
	}

	totalAllocations, err := parseAmount("totalAllocations", allocation.TotalAllocations)
	if err != nil {
		return err
	}
	if totalAllocations.Sign() == 0 {
		return NewCustomError(http.StatusNotFound, fmt.Sprintf("no allocation for round %s", roundID), ErrNothingToClaim)
	}
	if !allocation.IsActive {
		return NewCustomError(http.StatusConflict, fmt.Sprintf("allocation for round %s is exhausted", roundID), ErrNothingToClaim)
	}

	claimable, newPeriodIndex, err := computeClaimable(allocation, cfg, listing, now)
	if err != nil {
		if err == ErrLockPeriodActive {
			return NewCustomError(http.StatusConflict, fmt.Sprintf("round %s is still locked", roundID), err)
		}
		return err
	}
	if claimable.Sign() == 0 {
		return NewCustomError(http.StatusConflict, "no tokens to transfer", ErrNothingToClaim)
	}

	claimedAmount, err := parseAmount("claimedAmount", allocation.ClaimedAmount)
	if err != nil {
		return err
	}
	claimedAmount.Add(claimedAmount, claimable)
	if claimedAmount.Cmp(totalAllocations) > 0 {
		return NewCustomError(http.StatusConflict, "claim overflows allocation",
			ErrExceedsAllocation(roundID, signer, claimedAmount.String(), allocation.TotalAllocations))
	}

	allocation.ClaimedAmount = claimedAmount.String()
	allocation.LastClaimedPeriod = newPeriodIndex
	if claimedAmount.Cmp(totalAllocations) == 0 {
		allocation.IsActive = false
	}

	if err := setAllocation(ctx, allocation); err != nil {
		return err
	}
	if err := bumpClaimCounters(ctx, roundID, claimable); err != nil {
		return err
	}
	if err := debitCustody(ctx, claimable); err != nil {
		return err
	}

	if err := tokenTransfer(ctx, signer, claimable); err != nil {
		return err
	}

	return EmitTokensClaimed(ctx, signer, roundID, claimable.String(), newPeriodIndex)
}

// GetRound returns the round's configuration plus its mutable state.
func (s *SmartContract) GetRound(ctx kalpsdk.TransactionContextInterface, roundID string) (*RoundState, error) {
	cfg, err := GetRoundConfig(roundID)
	if err != nil {
		return nil, err
	}

	listing, err := getListingTimestamp(ctx, roundID)
	if err != nil {
		return nil, err
	}
	granted, err := getCounter(ctx, totalGrantsKey(roundID))
	if err != nil {
		return nil, err
	}
	claimed, err := getCounter(ctx, totalClaimsKey(roundID))
	if err != nil {
		return nil, err
	}

	return &RoundState{
		Config:           cfg,
		ListingTimestamp: listing,
		TotalGranted:     granted.String(),
		TotalClaimed:     claimed.String(),
	}, nil
}

// GetBeneficiaryAllocation is the public allocation lookup; it returns a
// zero-valued record for an unknown (round, beneficiary) pair.
func (s *SmartContract) GetBeneficiaryAllocation(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary string) (*Allocation, error) {
	if !isValidRound(roundID) {
		return nil, ErrInvalidRound(roundID)
	}
	if !IsUserAddressValid(beneficiary) {
		return nil, ErrInvalidBeneficiary(beneficiary)
	}

	return GetAllocation(ctx, roundID, beneficiary)
}

// GetClaimableAmount reports everything the beneficiary could withdraw
// right now: the unclaimed TGE unlock plus accrued periodic release.
// Locked or not-yet-listed rounds report zero rather than erroring.
func (s *SmartContract) GetClaimableAmount(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary string) (string, error) {
	cfg, err := GetRoundConfig(roundID)
	if err != nil {
		return "0", err
	}

	allocation, err := GetAllocation(ctx, roundID, beneficiary)
	if err != nil {
		return "0", err
	}

	totalAllocations, err := parseAmount("totalAllocations", allocation.TotalAllocations)
	if err != nil {
		return "0", err
	}
	if totalAllocations.Sign() == 0 || !allocation.IsActive {
		return "0", nil
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return "0", err
	}
	listing, err := getListingTimestamp(ctx, roundID)
	if err != nil {
		return "0", err
	}

	claimable := big.NewInt(0)
	if tgeAmount, eligErr := checkTGEEligibility(allocation, listing, now); eligErr == nil {
		claimable.Add(claimable, tgeAmount)
	}

	accrued, _, err := computeClaimable(allocation, cfg, listing, now)
	if err == nil {
		claimable.Add(claimable, accrued)
	} else if err != ErrLockPeriodActive {
		return "0", err
	}

	claimedAmount, err := parseAmount("claimedAmount", allocation.ClaimedAmount)
	if err != nil {
		return "0", err
	}
	remaining := new(big.Int).Sub(totalAllocations, claimedAmount)
	if claimable.Cmp(remaining) > 0 {
		claimable = remaining
	}

	return claimable.String(), nil
}

// GetClaimsAmountForAllRounds aggregates GetClaimableAmount over every
// round the beneficiary participates in.
func (s *SmartContract) GetClaimsAmountForAllRounds(ctx kalpsdk.TransactionContextInterface, beneficiary string) (*ClaimsForAllRounds, error) {
	userRoundsList, err := getUserRounds(ctx, beneficiary)
	if err != nil {
		return nil, err
	}

	totalAmount := big.NewInt(0)
	amounts := make([]string, len(userRoundsList))
	for i, roundID := range userRoundsList {
		claimable, err := s.GetClaimableAmount(ctx, roundID, beneficiary)
		if err != nil {
			return nil, err
		}

		amount, err := parseAmount(fmt.Sprintf("round %s", roundID), claimable)
		if err != nil {
			return nil, err
		}

		totalAmount.Add(totalAmount, amount)
		amounts[i] = claimable
	}

	return &ClaimsForAllRounds{
		TotalAmount: totalAmount.String(),
		Rounds:      userRoundsList,
		Amounts:     amounts,
	}, nil
}

// GetUserRounds lists the rounds a beneficiary has allocations in.
func (s *SmartContract) GetUserRounds(ctx kalpsdk.TransactionContextInterface, beneficiary string) (UserRounds, error) {
	return getUserRounds(ctx, beneficiary)
}

// GetTotalClaims returns the aggregate claimed-to-date for one round.
func (s *SmartContract) GetTotalClaims(ctx kalpsdk.TransactionContextInterface, roundID string) (string, error) {
	if !isValidRound(roundID) {
		return "0", ErrInvalidRound(roundID)
	}

	totalClaims, err := getCounter(ctx, totalClaimsKey(roundID))
	if err != nil {
		return "0", err
	}

	return totalClaims.String(), nil
}

// GetTotalClaimsForAll returns the aggregate claimed-to-date across all
// rounds.
func (s *SmartContract) GetTotalClaimsForAll(ctx kalpsdk.TransactionContextInterface) (string, error) {
	totalClaims, err := getCounter(ctx, totalClaimsForAllKey)
	if err != nil {
		return "0", err
	}

	return totalClaims.String(), nil
}

// GetRoundBeneficiaries lists every allocation record in a round via a
// rich query on the allocation docType.
func (s *SmartContract) GetRoundBeneficiaries(ctx kalpsdk.TransactionContextInterface, roundID string) (*RoundBeneficiaries, error) {
	if !isValidRound(roundID) {
		return nil, ErrInvalidRound(roundID)
	}

	query := fmt.Sprintf(`{"selector":{"docType":"%s","round":"%s"}}`, allocationDocType, roundID)
	iterator, err := ctx.GetQueryResult(query)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to query allocations for round %s", roundID), err)
	}
	defer iterator.Close()

	result := &RoundBeneficiaries{Round: roundID, Allocations: []*Allocation{}}
	for iterator.HasNext() {
		kv, err := iterator.Next()
		if err != nil {
			return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to iterate allocations for round %s", roundID), err)
		}

		var allocation Allocation
		if err := json.Unmarshal(kv.Value, &allocation); err != nil {
			return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal allocation", err)
		}

		result.Allocations = append(result.Allocations, &allocation)
	}

	return result, nil
}

// GetTokenAddress returns the wired SOLHUB token chaincode address.
func (s *SmartContract) GetTokenAddress(ctx kalpsdk.TransactionContextInterface) (string, error) {
	return getTokenAddress(ctx)
}

// GetCustodyBalance returns the contract's internal custody counter.
func (s *SmartContract) GetCustodyBalance(ctx kalpsdk.TransactionContextInterface) (string, error) {
	custody, err := getCustodyBalance(ctx)
	if err != nil {
		return "0", err
	}

	return custody.String(), nil
}

// IsPaused reports whether claim flows are suspended.
func (s *SmartContract) IsPaused(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	return isPaused(ctx)
}
