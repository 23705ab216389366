package vesting

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// Allocation is the per-(round, beneficiary) vesting record. Amounts are
// base-10 wei strings. ClaimedAmount and LastClaimedPeriod only ever
// grow; IsTGEClaimed flips false->true once; IsActive flips true->false
// exactly when ClaimedAmount reaches TotalAllocations.
type Allocation struct {
	DocType           string `json:"docType"`
	Round             string `json:"round"`
	Beneficiary       string `json:"beneficiary"`
	TotalAllocations  string `json:"totalAllocations"`
	TGEAmount         string `json:"tgeAmount"`
	ClaimedAmount     string `json:"claimedAmount"`
	IsTGEClaimed      bool   `json:"isTGEClaimed"`
	IsActive          bool   `json:"isActive"`
	GrantTimestamp    uint64 `json:"grantTimestamp"`
	LastClaimedPeriod uint64 `json:"lastClaimedPeriod"`
}

type UserRounds []string

type RoundState struct {
	Config           *RoundConfig `json:"config"`
	ListingTimestamp uint64       `json:"listingTimestamp"`
	TotalGranted     string       `json:"totalGranted"`
	TotalClaimed     string       `json:"totalClaimed"`
}

type ClaimsForAllRounds struct {
	TotalAmount string   `json:"totalAmount"`
	Rounds      []string `json:"rounds"`
	Amounts     []string `json:"amounts"`
}

type RoundBeneficiaries struct {
	Round       string        `json:"round"`
	Allocations []*Allocation `json:"allocations"`
}

func allocationKey(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary string) (string, error) {
	key, err := ctx.CreateCompositeKey(allocationKeyPrefix, []string{roundID, beneficiary})
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to create allocation key for round %s and beneficiary %s", roundID, beneficiary), err)
	}
	return key, nil
}

// GetAllocation returns the stored record, or a zero-valued record when
// the beneficiary has never been granted in this round.
func GetAllocation(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary string) (*Allocation, error) {
	key, err := allocationKey(ctx, roundID, beneficiary)
	if err != nil {
		return nil, err
	}

	allocationAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get allocation with key %s", key), err)
	}
	if allocationAsBytes == nil {
		return &Allocation{
			DocType:          allocationDocType,
			Round:            roundID,
			Beneficiary:      beneficiary,
			TotalAllocations: "0",
			TGEAmount:        "0",
			ClaimedAmount:    "0",
		}, nil
	}

	var allocation Allocation
	err = json.Unmarshal(allocationAsBytes, &allocation)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal allocation", err)
	}

	return &allocation, nil
}

func setAllocation(ctx kalpsdk.TransactionContextInterface, allocation *Allocation) error {
	key, err := allocationKey(ctx, allocation.Round, allocation.Beneficiary)
	if err != nil {
		return err
	}

	allocationAsBytes, err := json.Marshal(allocation)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal allocation", err)
	}

	err = ctx.PutStateWithoutKYC(key, allocationAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set allocation", err)
	}

	return nil
}

func hasAllocation(ctx kalpsdk.TransactionContextInterface, roundID, beneficiary string) (bool, error) {
	key, err := allocationKey(ctx, roundID, beneficiary)
	if err != nil {
		return false, err
	}

	allocationAsBytes, err := ctx.GetState(key)
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get allocation with key %s", key), err)
	}

	return allocationAsBytes != nil, nil
}

func getUserRounds(ctx kalpsdk.TransactionContextInterface, beneficiary string) (UserRounds, error) {
	key, err := ctx.CreateCompositeKey(userRoundsKeyPrefix, []string{beneficiary})
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to create user rounds key for %s", beneficiary), err)
	}

	userRoundsJSON, err := ctx.GetState(key)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get user rounds for %s", beneficiary), err)
	}
	if userRoundsJSON == nil {
		return UserRounds{}, nil
	}

	var userRoundsList UserRounds
	err = json.Unmarshal(userRoundsJSON, &userRoundsList)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal user rounds for %s", beneficiary), err)
	}

	return userRoundsList, nil
}

func setUserRounds(ctx kalpsdk.TransactionContextInterface, beneficiary string, userRoundsList UserRounds) error {
	key, err := ctx.CreateCompositeKey(userRoundsKeyPrefix, []string{beneficiary})
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to create user rounds key for %s", beneficiary), err)
	}

	updatedUserRoundsJSON, err := json.Marshal(userRoundsList)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to marshal user rounds for %s", beneficiary), err)
	}

	err = ctx.PutStateWithoutKYC(key, updatedUserRoundsJSON)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set user rounds for %s", beneficiary), err)
	}

	return nil
}

func getCounter(ctx kalpsdk.TransactionContextInterface, key string) (*big.Int, error) {
	counterAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get counter with key %s", key), err)
	}

	counter := big.NewInt(0)
	if counterAsBytes != nil {
		_, success := counter.SetString(string(counterAsBytes), 10)
		if !success {
			return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse counter with key %s", key), nil)
		}
	}

	return counter, nil
}

func setCounter(ctx kalpsdk.TransactionContextInterface, key string, counter *big.Int) error {
	counterAsBytes, err := counter.MarshalText()
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to marshal counter with key %s", key), err)
	}

	err = ctx.PutStateWithoutKYC(key, counterAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set counter with key %s", key), err)
	}

	return nil
}

func totalClaimsKey(roundID string) string {
	return fmt.Sprintf("%s_%s", totalClaimsKeyPrefix, roundID)
}

func totalGrantsKey(roundID string) string {
	return fmt.Sprintf("%s_%s", totalGrantsKeyPrefix, roundID)
}

func getListingTimestamp(ctx kalpsdk.TransactionContextInterface, roundID string) (uint64, error) {
	listingAsBytes, err := ctx.GetState(fmt.Sprintf("%s_%s", listingKeyPrefix, roundID))
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get listing timestamp for round %s", roundID), err)
	}
	if listingAsBytes == nil {
		return 0, NewCustomError(http.StatusConflict, fmt.Sprintf("round %s has no listing timestamp", roundID), ErrNotInitialized)
	}

	listing, err := strconv.ParseUint(string(listingAsBytes), 10, 64)
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse listing timestamp for round %s", roundID), err)
	}

	return listing, nil
}

func setListingTimestamp(ctx kalpsdk.TransactionContextInterface, roundID string, listing uint64) error {
	err := ctx.PutStateWithoutKYC(fmt.Sprintf("%s_%s", listingKeyPrefix, roundID), []byte(strconv.FormatUint(listing, 10)))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set listing timestamp for round %s", roundID), err)
	}
	return nil
}

func isPaused(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, "failed to get paused flag", err)
	}
	return string(pausedAsBytes) == "true", nil
}

func setPaused(ctx kalpsdk.TransactionContextInterface, paused bool) error {
	err := ctx.PutStateWithoutKYC(pausedKey, []byte(strconv.FormatBool(paused)))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set paused flag", err)
	}
	return nil
}
