package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type RoundInitializedEvent struct {
	Round            string `json:"round"`
	LockMonths       uint64 `json:"lockMonths"`
	VestingMonths    uint64 `json:"vestingMonths"`
	TGEPercent       uint64 `json:"tgePercent"`
	ListingTimestamp uint64 `json:"listingTimestamp"`
	SupplyCap        string `json:"supplyCap"`
}

type ListingTimestampSetEvent struct {
	Round            string `json:"round"`
	ListingTimestamp uint64 `json:"listingTimestamp"`
}

type TokenAddressSetEvent struct {
	Token string `json:"token"`
}

type BeneficiariesAddedEvent struct {
	Round            string `json:"round"`
	Beneficiaries    uint64 `json:"beneficiaries"`
	TotalAllocations string `json:"totalAllocations"`
}

type TGEClaimedEvent struct {
	Beneficiary string   `json:"beneficiary"`
	Rounds      []string `json:"rounds"`
	Amount      string   `json:"amount"`
}

type TokensClaimedEvent struct {
	Beneficiary string `json:"beneficiary"`
	Round       string `json:"round"`
	Amount      string `json:"amount"`
	PeriodIndex uint64 `json:"periodIndex"`
}

type PauseToggledEvent struct {
	Paused bool   `json:"paused"`
	By     string `json:"by"`
}

func emitEvent(ctx kalpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding for %s event: %v", name, err)
	}

	err = ctx.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set %s event: %v", name, err)
	}

	return nil
}

func EmitRoundInitialized(ctx kalpsdk.TransactionContextInterface, cfg *RoundConfig, listingTimestamp uint64) error {
	return emitEvent(ctx, "RoundInitialized", RoundInitializedEvent{
		Round:            cfg.Round.String(),
		LockMonths:       cfg.LockMonths,
		VestingMonths:    cfg.VestingMonths,
		TGEPercent:       cfg.TGEPercent,
		ListingTimestamp: listingTimestamp,
		SupplyCap:        ConvertSolhubToWei(cfg.SupplyCap),
	})
}

func EmitListingTimestampSet(ctx kalpsdk.TransactionContextInterface, roundID string, listingTimestamp uint64) error {
	return emitEvent(ctx, "ListingTimestampSet", ListingTimestampSetEvent{
		Round:            roundID,
		ListingTimestamp: listingTimestamp,
	})
}

func EmitTokenAddressSet(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	return emitEvent(ctx, "TokenAddressSet", TokenAddressSetEvent{Token: tokenAddress})
}

func EmitBeneficiariesAdded(ctx kalpsdk.TransactionContextInterface, roundID string, count uint64, totalAllocations string) error {
	return emitEvent(ctx, "BeneficiariesAdded", BeneficiariesAddedEvent{
		Round:            roundID,
		Beneficiaries:    count,
		TotalAllocations: totalAllocations,
	})
}

func EmitTGEClaimed(ctx kalpsdk.TransactionContextInterface, beneficiary string, rounds []string, amount string) error {
	return emitEvent(ctx, "TGEClaimed", TGEClaimedEvent{
		Beneficiary: beneficiary,
		Rounds:      rounds,
		Amount:      amount,
	})
}

func EmitTokensClaimed(ctx kalpsdk.TransactionContextInterface, beneficiary, roundID, amount string, periodIndex uint64) error {
	return emitEvent(ctx, "TokensClaimed", TokensClaimedEvent{
		Beneficiary: beneficiary,
		Round:       roundID,
		Amount:      amount,
		PeriodIndex: periodIndex,
	})
}

func EmitPauseToggled(ctx kalpsdk.TransactionContextInterface, paused bool, by string) error {
	return emitEvent(ctx, "PauseToggled", PauseToggledEvent{Paused: paused, By: by})
}
