package vesting

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// GetUserId extracts the signer's address from the CN field of the
// enrolment certificate identity.
func GetUserId(ctx kalpsdk.TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeId := string(decodeID)
	userId := completeId[(strings.Index(completeId, "x509::CN=") + 9):strings.Index(completeId, ",")]

	if !IsUserAddressValid(userId) {
		return "", ErrInvalidBeneficiary(userId)
	}

	return userId, nil
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

func IsSignerFoundation(ctx kalpsdk.TransactionContextInterface) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get client id", err)
	}

	if signer != solhubFoundation {
		return NewCustomError(http.StatusForbidden, "signer is not the solhub foundation", ErrUnauthorized)
	}

	return nil
}

func requireKYC(ctx kalpsdk.TransactionContextInterface, signer string) error {
	kyced, err := ctx.GetKYC(signer)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to check KYC for %s", signer), err)
	}
	if !kyced {
		return NewCustomError(http.StatusForbidden, fmt.Sprintf("signer %s is not KYC'd", signer), ErrUnauthorized)
	}

	return nil
}

func requireNotPaused(ctx kalpsdk.TransactionContextInterface) error {
	paused, err := isPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return NewCustomError(http.StatusConflict, "claims are suspended", ErrContractPaused)
	}

	return nil
}

func txTimestamp(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "failed to get transaction timestamp", err)
	}

	return uint64(ts.Seconds), nil
}

func Decimals() uint64 {
	return 18
}

// ConvertSolhubToWei scales a whole-token amount by the token decimals.
func ConvertSolhubToWei(solhubAmount uint64) string {
	decimals := Decimals()

	solhubAmountBigInt := new(big.Int).SetUint64(solhubAmount)

	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	weiAmount := new(big.Int).Mul(solhubAmountBigInt, multiplier)

	return weiAmount.String()
}

func parseAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, ErrInvalidAmount(entity, value)
	}
	return amount, nil
}

// applyScaledPercent multiplies before dividing so fixed-point rounding
// matches the published schedule.
func applyScaledPercent(amount *big.Int, scaledPercent uint64) *big.Int {
	if scaledPercent == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Mul(amount, new(big.Int).SetUint64(scaledPercent))
	return result.Div(result, new(big.Int).SetUint64(percentScale))
}
