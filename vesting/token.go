package vesting

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// The SOLHUB token ledger is a separate chaincode. All balance reads and
// transfers go through cross-chaincode invokes against the address the
// foundation wires in with SetTokenAddress. The vesting contract also
// keeps its own custody counter so claim sufficiency is checked before
// any state is committed.

func getTokenAddress(ctx kalpsdk.TransactionContextInterface) (string, error) {
	tokenAddressBytes, err := ctx.GetState(tokenAddressKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get token address with key %s", tokenAddressKey), err)
	}
	if tokenAddressBytes == nil || string(tokenAddressBytes) == "" {
		return "", NewCustomError(http.StatusConflict, "solhub token address is not set", ErrTokenNotSet)
	}

	return string(tokenAddressBytes), nil
}

func tokenBalanceOf(ctx kalpsdk.TransactionContextInterface, account string) (*big.Int, error) {
	tokenAddress, err := getTokenAddress(ctx)
	if err != nil {
		return nil, err
	}

	resp := ctx.InvokeChaincode(tokenAddress, [][]byte{
		[]byte(tokenBalanceOfFn),
		[]byte(account),
	}, ctx.GetChannelID())
	if resp.Response.Status != http.StatusOK {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("token BalanceOf failed for %s: %s", account, resp.Response.Message), nil)
	}

	balance, ok := new(big.Int).SetString(string(resp.Response.Payload), 10)
	if !ok {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("token BalanceOf returned a non-numeric payload for %s", account), nil)
	}

	return balance, nil
}

func tokenTransfer(ctx kalpsdk.TransactionContextInterface, to string, amount *big.Int) error {
	tokenAddress, err := getTokenAddress(ctx)
	if err != nil {
		return err
	}

	resp := ctx.InvokeChaincode(tokenAddress, [][]byte{
		[]byte(tokenTransferFn),
		[]byte(to),
		[]byte(amount.String()),
	}, ctx.GetChannelID())
	if resp.Response.Status != http.StatusOK || string(resp.Response.Payload) != "true" {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("token Transfer of %s to %s failed: %s", amount.String(), to, resp.Response.Message), nil)
	}

	return nil
}

func tokenTransferFrom(ctx kalpsdk.TransactionContextInterface, from, to string, amount *big.Int) error {
	tokenAddress, err := getTokenAddress(ctx)
	if err != nil {
		return err
	}

	resp := ctx.InvokeChaincode(tokenAddress, [][]byte{
		[]byte(tokenTransferFromFn),
		[]byte(from),
		[]byte(to),
		[]byte(amount.String()),
	}, ctx.GetChannelID())
	if resp.Response.Status != http.StatusOK || string(resp.Response.Payload) != "true" {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("token TransferFrom of %s from %s failed: %s", amount.String(), from, resp.Response.Message), nil)
	}

	return nil
}

func getCustodyBalance(ctx kalpsdk.TransactionContextInterface) (*big.Int, error) {
	return getCounter(ctx, custodyKey)
}

func creditCustody(ctx kalpsdk.TransactionContextInterface, amount *big.Int) error {
	custody, err := getCustodyBalance(ctx)
	if err != nil {
		return err
	}
	return setCounter(ctx, custodyKey, custody.Add(custody, amount))
}

// debitCustody fails with InsufficientContractBalance when the contract
// does not hold enough tokens to honour an outbound transfer.
func debitCustody(ctx kalpsdk.TransactionContextInterface, amount *big.Int) error {
	custody, err := getCustodyBalance(ctx)
	if err != nil {
		return err
	}

	if custody.Cmp(amount) < 0 {
		return NewCustomError(http.StatusConflict, fmt.Sprintf("custody balance %s is short of claim %s", custody.String(), amount.String()), ErrInsufficientCustody)
	}

	return setCounter(ctx, custodyKey, custody.Sub(custody, amount))
}
