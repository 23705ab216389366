package vesting

import (
	"errors"
	"fmt"
)

var (
	ErrCannotBeZero        = errors.New("CannotBeZero")
	ErrNoBeneficiaries     = errors.New("NoBeneficiaries")
	ErrInvalidUserAddress  = errors.New("InvalidUserAddress")
	ErrUnauthorized        = errors.New("Unauthorized")
	ErrContractPaused      = errors.New("ContractPaused")
	ErrTokenAlreadySet     = errors.New("TokenAlreadySet")
	ErrTokenNotSet         = errors.New("TokenNotSet")
	ErrAlreadyInitialized  = errors.New("AlreadyInitialized")
	ErrNotInitialized      = errors.New("NotInitialized")
	ErrNothingToClaim      = errors.New("NothingToClaim")
	ErrTGENotStarted       = errors.New("TGENotStarted")
	ErrLockPeriodActive    = errors.New("LockPeriodActive")
	ErrInsufficientFunds   = errors.New("InsufficientFunds")
	ErrInsufficientCustody = errors.New("InsufficientContractBalance")
)

func ErrInvalidRound(roundID string) error {
	return fmt.Errorf("InvalidRound: %s", roundID)
}

func ErrInvalidBeneficiary(beneficiary string) error {
	return fmt.Errorf("InvalidBeneficiary: %q", beneficiary)
}

func ErrAlreadyGranted(roundID, beneficiary string) error {
	return fmt.Errorf("AlreadyGranted for round %s and beneficiary %s", roundID, beneficiary)
}

func ErrLengthMismatch(beneficiaries, amounts int) error {
	return fmt.Errorf("LengthMismatch: %d beneficiaries != %d amounts", beneficiaries, amounts)
}

func ErrZeroGrantAmount(beneficiary string) error {
	return fmt.Errorf("ZeroGrantAmount for beneficiary: %s", beneficiary)
}

func ErrRoundSupplyReached(roundID string) error {
	return fmt.Errorf("RoundSupplyReached for round: %s", roundID)
}

func ErrExceedsAllocation(roundID, beneficiary, claimAmount, totalAllocations string) error {
	return fmt.Errorf("ExceedsAllocation for round %s and beneficiary %s: claimAmount=%s, totalAllocations=%s",
		roundID, beneficiary, claimAmount, totalAllocations)
}

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

func ErrInvalidContractAddress(contractAddress string) error {
	return fmt.Errorf("InvalidContractAddress for address %s", contractAddress)
}

// CustomError carries an HTTP-style status code alongside the failure so
// client tooling can branch on cause.
type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
