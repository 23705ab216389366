package main

import (
	"log"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/solhub-finance/ico-contracts/vesting"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: false}
	contract.Logger = kalpsdk.NewLogger()

	chaincode, err := kalpsdk.NewChaincode(&vesting.SmartContract{Contract: contract})
	if err != nil {
		log.Panicf("Error creating vesting chaincode: %v", err)
	}

	if err := chaincode.Start(); err != nil {
		log.Panicf("Error starting vesting chaincode: %v", err)
	}
}
