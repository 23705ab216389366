package vesting_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
	"github.com/p2eengineering/kalp-sdk-public/response"
	"github.com/solhub-finance/ico-contracts/vesting"
	"github.com/solhub-finance/ico-contracts/vesting/mocks"
	"github.com/stretchr/testify/require"
)

const (
	foundationAddress = "6f1a8e9b3c24d07f5a8e102bd4c6937fe0a4b851"
	contractAddress   = "klp-736f6c68756276657374696e67-cc"
	tokenAddress      = "klp-736f6c687562746f6b656e-cc"
	user1             = "2da4c4908a393a387b728206b18388bc529fa8d7"
	user2             = "0b87970433b22494faff1cc7a819e71bddc7880c"

	listingTS = uint64(1_700_000_000)
	day       = uint64(24 * 60 * 60)

	// 10,000 whole tokens in wei, and derived schedule amounts.
	grant10k    = "10000000000000000000000"
	seedTGE     = "500000000000000000000"
	seedDaily34 = "931506849315068493126"
	seedDaily10 = "273972602739726027390"
)

//go:generate counterfeiter -o mocks/transactioncontext.go -fake-name TransactionContext . transactionContext
type transactionContext interface {
	kalpsdk.TransactionContextInterface
}

//go:generate counterfeiter -o mocks/statequeryiterator.go -fake-name StateQueryIterator . stateQueryIterator
type stateQueryIterator interface {
	kalpsdk.StateQueryIteratorInterface
}

//go:generate counterfeiter -o mocks/clientidentity.go -fake-name ClientIdentity . clientIdentity
type clientIdentity interface {
	cid.ClientIdentity
}

type testEnv struct {
	ctx        *mocks.TransactionContext
	worldState map[string][]byte
	now        uint64
	balance    string
}

func newTestEnv() *testEnv {
	env := &testEnv{
		ctx:        &mocks.TransactionContext{},
		worldState: map[string][]byte{},
		balance:    "1000000000000000000000000000",
	}

	env.ctx.CreateCompositeKeyStub = func(prefix string, attrs []string) (string, error) {
		return fmt.Sprintf("%s_%s", prefix, strings.Join(attrs, "_")), nil
	}
	env.ctx.PutStateWithoutKYCStub = func(key string, value []byte) error {
		env.worldState[key] = value
		return nil
	}
	env.ctx.GetStateStub = func(key string) ([]byte, error) {
		if data, found := env.worldState[key]; found {
			return data, nil
		}
		return nil, nil
	}
	env.ctx.DelStateWithoutKYCStub = func(key string) error {
		delete(env.worldState, key)
		return nil
	}
	env.ctx.GetTxTimestampStub = func() (*timestamp.Timestamp, error) {
		return &timestamp.Timestamp{Seconds: int64(env.now)}, nil
	}
	env.ctx.GetChannelIDStub = func() string {
		return "kalptantra"
	}
	env.ctx.GetKYCReturns(true, nil)
	env.ctx.InvokeChaincodeStub = func(name string, args [][]byte, channel string) response.Response {
		if string(args[0]) == "BalanceOf" {
			return response.Response{Response: peer.Response{Status: http.StatusOK, Payload: []byte(env.balance)}}
		}
		return response.Response{Response: peer.Response{Status: http.StatusOK, Payload: []byte("true")}}
	}
	env.ctx.GetQueryResultStub = func(query string) (kalpsdk.StateQueryIteratorInterface, error) {
		var docType string
		re := regexp.MustCompile(`"docType"\s*:\s*"([^"]+)"`)
		if match := re.FindStringSubmatch(query); len(match) > 1 {
			docType = match[1]
		}

		var round string
		re = regexp.MustCompile(`"round"\s*:\s*"([^"]+)"`)
		if match := re.FindStringSubmatch(query); len(match) > 1 {
			round = match[1]
		}

		iteratorData := struct {
			index int
			data  []queryresult.KV
		}{}
		for key, val := range env.worldState {
			if strings.Contains(string(val), fmt.Sprintf("%q:%q", "docType", docType)) &&
				strings.Contains(string(val), fmt.Sprintf("%q:%q", "round", round)) {
				iteratorData.data = append(iteratorData.data, queryresult.KV{Key: key, Value: val})
			}
		}

		iterator := &mocks.StateQueryIterator{}
		iterator.HasNextStub = func() bool {
			return iteratorData.index < len(iteratorData.data)
		}
		iterator.NextStub = func() (*queryresult.KV, error) {
			if iteratorData.index < len(iteratorData.data) {
				iteratorData.index++
				return &iteratorData.data[iteratorData.index-1], nil
			}
			return nil, fmt.Errorf("iterator out of bounds")
		}
		return iterator, nil
	}

	return env
}

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	completeID := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeID))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

func bootstrap(t *testing.T, env *testEnv, contract *vesting.SmartContract) {
	t.Helper()

	env.now = listingTS - day
	SetUserID(env.ctx, foundationAddress)
	require.NoError(t, contract.Initialize(env.ctx, listingTS))
	require.NoError(t, contract.SetTokenAddress(env.ctx, tokenAddress))
}

func readAllocation(t *testing.T, env *testEnv, roundID, beneficiary string) *vesting.Allocation {
	t.Helper()

	raw, found := env.worldState[fmt.Sprintf("allocations_%s_%s", roundID, beneficiary)]
	require.True(t, found, "allocation for %s/%s not in state", roundID, beneficiary)

	var allocation vesting.Allocation
	require.NoError(t, json.Unmarshal(raw, &allocation))
	return &allocation
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	env.now = listingTS - day
	SetUserID(env.ctx, foundationAddress)

	err := vestingContract.Initialize(env.ctx, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CannotBeZero")

	SetUserID(env.ctx, user1)
	err = vestingContract.Initialize(env.ctx, listingTS)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(env.ctx, foundationAddress)
	require.NoError(t, vestingContract.Initialize(env.ctx, listingTS))

	for _, round := range []string{"Seed", "Strategic", "Private", "Marketing", "Advisors", "Team", "Reserve"} {
		require.Equal(t, []byte("1700000000"), env.worldState["listing_"+round])
	}
	require.Equal(t, []byte("false"), env.worldState["contract_paused"])
	require.GreaterOrEqual(t, env.ctx.SetEventCallCount(), 7)

	err = vestingContract.Initialize(env.ctx, listingTS)
	require.Error(t, err)
	require.Contains(t, err.Error(), "AlreadyInitialized")
}

func TestSetTokenAddress(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	env.now = listingTS - day

	SetUserID(env.ctx, user1)
	err := vestingContract.SetTokenAddress(env.ctx, tokenAddress)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(env.ctx, foundationAddress)
	err = vestingContract.SetTokenAddress(env.ctx, "0xdeadbeef")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidContractAddress")

	require.NoError(t, vestingContract.SetTokenAddress(env.ctx, tokenAddress))
	require.Equal(t, []byte(tokenAddress), env.worldState["solhubToken"])

	err = vestingContract.SetTokenAddress(env.ctx, tokenAddress)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TokenAlreadySet")
}

func TestSetListingTimestamp(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)

	SetUserID(env.ctx, user1)
	err := vestingContract.SetListingTimestamp(env.ctx, "Seed", listingTS+day)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(env.ctx, foundationAddress)
	err = vestingContract.SetListingTimestamp(env.ctx, "Seed", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CannotBeZero")

	err = vestingContract.SetListingTimestamp(env.ctx, "Public", listingTS+day)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidRound")

	require.NoError(t, vestingContract.SetListingTimestamp(env.ctx, "Seed", listingTS+day))
	require.Equal(t, []byte("1700086400"), env.worldState["listing_Seed"])

	// The move window closes once the round's TGE has passed.
	env.now = listingTS + 2*day
	err = vestingContract.SetListingTimestamp(env.ctx, "Seed", listingTS+30*day)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already passed")
}

func TestPauseAndUnpause(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)

	SetUserID(env.ctx, user1)
	err := vestingContract.Pause(env.ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(env.ctx, foundationAddress)
	require.NoError(t, vestingContract.Pause(env.ctx))

	paused, err := vestingContract.IsPaused(env.ctx)
	require.NoError(t, err)
	require.True(t, paused)

	env.now = listingTS + day
	SetUserID(env.ctx, user1)
	err = vestingContract.ClaimTGE(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ContractPaused")

	err = vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ContractPaused")

	SetUserID(env.ctx, foundationAddress)
	require.NoError(t, vestingContract.Unpause(env.ctx))

	paused, err = vestingContract.IsPaused(env.ctx)
	require.NoError(t, err)
	require.False(t, paused)
}

func TestAddBeneficiaries(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)

	SetUserID(env.ctx, user1)
	err := vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(env.ctx, foundationAddress)

	err = vestingContract.AddBeneficiaries(env.ctx, "Public", []string{user1}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidRound")

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NoBeneficiaries")

	// A shape mismatch rejects the whole batch without touching state.
	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1, user2}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "LengthMismatch")
	for key := range env.worldState {
		require.False(t, strings.HasPrefix(key, "allocations_"), "unexpected allocation write: %s", key)
	}
	_, found := env.worldState["custody_balance"]
	require.False(t, found)

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{"not-an-address"}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidBeneficiary")

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{"0"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ZeroGrantAmount")

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{"ten"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAmount")

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1, user1}, []string{grant10k, grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "AlreadyGranted")

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{"400000001000000000000000000"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "RoundSupplyReached")

	env.balance = "1"
	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "InsufficientFunds")
	env.balance = "1000000000000000000000000000"

	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1, user2}, []string{grant10k, grant10k}))

	allocation := readAllocation(t, env, "Seed", user1)
	require.Equal(t, grant10k, allocation.TotalAllocations)
	require.Equal(t, seedTGE, allocation.TGEAmount)
	require.Equal(t, "0", allocation.ClaimedAmount)
	require.False(t, allocation.IsTGEClaimed)
	require.True(t, allocation.IsActive)
	require.Equal(t, env.now, allocation.GrantTimestamp)

	require.JSONEq(t, `["Seed"]`, string(env.worldState["userrounds_"+user1]))
	require.Equal(t, []byte("20000000000000000000000"), env.worldState["custody_balance"])
	require.Equal(t, []byte("20000000000000000000000"), env.worldState["totalgrants_Seed"])

	// The batch total is pulled from the foundation in one TransferFrom.
	name, args, channel := env.ctx.InvokeChaincodeArgsForCall(env.ctx.InvokeChaincodeCallCount() - 1)
	require.Equal(t, tokenAddress, name)
	require.Equal(t, "kalptantra", channel)
	require.Equal(t, "TransferFrom", string(args[0]))
	require.Equal(t, foundationAddress, string(args[1]))
	require.Equal(t, contractAddress, string(args[2]))
	require.Equal(t, "20000000000000000000000", string(args[3]))

	err = vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "AlreadyGranted")
}

func TestAddBeneficiary(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)

	require.NoError(t, vestingContract.AddBeneficiary(env.ctx, "Private", user1, grant10k))

	allocation := readAllocation(t, env, "Private", user1)
	require.Equal(t, grant10k, allocation.TotalAllocations)
	require.Equal(t, "1000000000000000000000", allocation.TGEAmount)
}

func TestClaimTGE(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k}))
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Team", []string{user2}, []string{grant10k}))

	SetUserID(env.ctx, user1)

	env.now = listingTS - 10
	err := vestingContract.ClaimTGE(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "TGENotStarted")

	env.now = listingTS + 1

	err = vestingContract.ClaimTGE(env.ctx, "Unknown")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidRound")

	env.ctx.GetKYCReturns(false, nil)
	err = vestingContract.ClaimTGE(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")
	env.ctx.GetKYCReturns(true, nil)

	require.NoError(t, vestingContract.ClaimTGE(env.ctx, "Seed"))

	allocation := readAllocation(t, env, "Seed", user1)
	require.Equal(t, seedTGE, allocation.ClaimedAmount)
	require.True(t, allocation.IsTGEClaimed)
	require.Equal(t, "0", allocation.TGEAmount)
	require.True(t, allocation.IsActive)

	require.Equal(t, []byte(seedTGE), env.worldState["totalclaims_Seed"])
	require.Equal(t, []byte(seedTGE), env.worldState["total_claims_for_all"])
	require.Equal(t, []byte("19500000000000000000000"), env.worldState["custody_balance"])

	name, args, _ := env.ctx.InvokeChaincodeArgsForCall(env.ctx.InvokeChaincodeCallCount() - 1)
	require.Equal(t, tokenAddress, name)
	require.Equal(t, "Transfer", string(args[0]))
	require.Equal(t, user1, string(args[1]))
	require.Equal(t, seedTGE, string(args[2]))

	err = vestingContract.ClaimTGE(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	// No grant in this round at all.
	err = vestingContract.ClaimTGE(env.ctx, "Private")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	// Team vests with no TGE unlock.
	SetUserID(env.ctx, user2)
	err = vestingContract.ClaimTGE(env.ctx, "Team")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")
}

func TestClaimAllTGE(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k}))
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Team", []string{user1}, []string{grant10k}))

	env.now = listingTS + 1
	SetUserID(env.ctx, user1)

	require.NoError(t, vestingContract.ClaimAllTGE(env.ctx))

	seedAllocation := readAllocation(t, env, "Seed", user1)
	require.True(t, seedAllocation.IsTGEClaimed)
	require.Equal(t, seedTGE, seedAllocation.ClaimedAmount)

	// Team has no unlock and is skipped, not settled.
	teamAllocation := readAllocation(t, env, "Team", user1)
	require.False(t, teamAllocation.IsTGEClaimed)
	require.Equal(t, "0", teamAllocation.ClaimedAmount)

	require.Equal(t, []byte("19500000000000000000000"), env.worldState["custody_balance"])

	name, args, _ := env.ctx.InvokeChaincodeArgsForCall(env.ctx.InvokeChaincodeCallCount() - 1)
	require.Equal(t, tokenAddress, name)
	require.Equal(t, "Transfer", string(args[0]))
	require.Equal(t, user1, string(args[1]))
	require.Equal(t, seedTGE, string(args[2]))

	err := vestingContract.ClaimAllTGE(env.ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	SetUserID(env.ctx, user2)
	err = vestingContract.ClaimAllTGE(env.ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")
}

func TestClaim(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k}))

	SetUserID(env.ctx, user1)

	// Ten days after TGE the one month lock is still running.
	env.now = listingTS + 10*day
	err := vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "LockPeriodActive")

	// 34 days past the lock month: 34 daily periods at total/365.
	env.now = listingTS + 64*day
	require.NoError(t, vestingContract.Claim(env.ctx, "Seed"))

	allocation := readAllocation(t, env, "Seed", user1)
	require.Equal(t, seedDaily34, allocation.ClaimedAmount)
	require.Equal(t, uint64(34), allocation.LastClaimedPeriod)
	require.True(t, allocation.IsActive)

	name, args, _ := env.ctx.InvokeChaincodeArgsForCall(env.ctx.InvokeChaincodeCallCount() - 1)
	require.Equal(t, tokenAddress, name)
	require.Equal(t, "Transfer", string(args[0]))
	require.Equal(t, user1, string(args[1]))
	require.Equal(t, seedDaily34, string(args[2]))

	// A repeat claim in the same period pays nothing and changes nothing.
	putCount := env.ctx.PutStateWithoutKYCCallCount()
	err = vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")
	require.Equal(t, putCount, env.ctx.PutStateWithoutKYCCallCount())

	allocation = readAllocation(t, env, "Seed", user1)
	require.Equal(t, uint64(34), allocation.LastClaimedPeriod)

	// Ten more days accrue exactly ten more periods.
	env.now = listingTS + 74*day
	require.NoError(t, vestingContract.Claim(env.ctx, "Seed"))

	allocation = readAllocation(t, env, "Seed", user1)
	require.Equal(t, "1205479452054794520516", allocation.ClaimedAmount)
	require.Equal(t, uint64(44), allocation.LastClaimedPeriod)

	// Past lock + vesting the exact remainder is paid and the record is
	// exhausted.
	env.now = listingTS + 395*day
	require.NoError(t, vestingContract.Claim(env.ctx, "Seed"))

	allocation = readAllocation(t, env, "Seed", user1)
	require.Equal(t, grant10k, allocation.ClaimedAmount)
	require.Equal(t, uint64(365), allocation.LastClaimedPeriod)
	require.False(t, allocation.IsActive)

	require.Equal(t, []byte(grant10k), env.worldState["totalclaims_Seed"])
	require.Equal(t, []byte(grant10k), env.worldState["total_claims_for_all"])
	require.Equal(t, []byte("0"), env.worldState["custody_balance"])

	err = vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	// No grant for this signer in the round.
	SetUserID(env.ctx, user2)
	err = vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")
}

func TestClaimMonthlyRound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Marketing", []string{user1}, []string{grant10k}))

	SetUserID(env.ctx, user1)

	// No lock, but the first 30-day month must still complete.
	env.now = listingTS + 10*day
	err := vestingContract.Claim(env.ctx, "Marketing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "LockPeriodActive")

	// Two full months plus a day: two monthly periods at 3.75%.
	env.now = listingTS + 61*day
	require.NoError(t, vestingContract.Claim(env.ctx, "Marketing"))

	allocation := readAllocation(t, env, "Marketing", user1)
	require.Equal(t, "750000000000000000000", allocation.ClaimedAmount)
	require.Equal(t, uint64(2), allocation.LastClaimedPeriod)
}

func TestClaimCustodyShortfall(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k}))

	env.worldState["custody_balance"] = []byte("1")

	env.now = listingTS + 64*day
	SetUserID(env.ctx, user1)
	err := vestingContract.Claim(env.ctx, "Seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InsufficientContractBalance")
}

func TestClaimWithoutToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	env.now = listingTS - day
	SetUserID(env.ctx, foundationAddress)
	require.NoError(t, vestingContract.Initialize(env.ctx, listingTS))

	// Granting needs the token wired in for the funding check.
	err := vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k})
	require.Error(t, err)
	require.Contains(t, err.Error(), "TokenNotSet")
}

func TestReadSurface(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1}, []string{grant10k}))

	roundState, err := vestingContract.GetRound(env.ctx, "Seed")
	require.NoError(t, err)
	require.Equal(t, listingTS, roundState.ListingTimestamp)
	require.Equal(t, grant10k, roundState.TotalGranted)
	require.Equal(t, "0", roundState.TotalClaimed)
	require.Equal(t, uint64(1), roundState.Config.LockMonths)

	_, err = vestingContract.GetRound(env.ctx, "Public")
	require.Error(t, err)

	allocation, err := vestingContract.GetBeneficiaryAllocation(env.ctx, "Seed", user2)
	require.NoError(t, err)
	require.Equal(t, "0", allocation.TotalAllocations)

	_, err = vestingContract.GetBeneficiaryAllocation(env.ctx, "Seed", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidBeneficiary")

	// Before listing nothing is withdrawable.
	claimable, err := vestingContract.GetClaimableAmount(env.ctx, "Seed", user1)
	require.NoError(t, err)
	require.Equal(t, "0", claimable)

	// 64 days in: the unclaimed TGE unlock plus 34 accrued daily periods.
	env.now = listingTS + 64*day
	claimable, err = vestingContract.GetClaimableAmount(env.ctx, "Seed", user1)
	require.NoError(t, err)
	require.Equal(t, "1431506849315068493126", claimable)

	allClaims, err := vestingContract.GetClaimsAmountForAllRounds(env.ctx, user1)
	require.NoError(t, err)
	require.Equal(t, "1431506849315068493126", allClaims.TotalAmount)
	require.Equal(t, []string{"Seed"}, allClaims.Rounds)

	userRounds, err := vestingContract.GetUserRounds(env.ctx, user1)
	require.NoError(t, err)
	require.Equal(t, vesting.UserRounds{"Seed"}, userRounds)

	totalClaims, err := vestingContract.GetTotalClaims(env.ctx, "Seed")
	require.NoError(t, err)
	require.Equal(t, "0", totalClaims)

	_, err = vestingContract.GetTotalClaims(env.ctx, "Public")
	require.Error(t, err)

	totalClaimsForAll, err := vestingContract.GetTotalClaimsForAll(env.ctx)
	require.NoError(t, err)
	require.Equal(t, "0", totalClaimsForAll)

	gotToken, err := vestingContract.GetTokenAddress(env.ctx)
	require.NoError(t, err)
	require.Equal(t, tokenAddress, gotToken)

	custody, err := vestingContract.GetCustodyBalance(env.ctx)
	require.NoError(t, err)
	require.Equal(t, grant10k, custody)

	paused, err := vestingContract.IsPaused(env.ctx)
	require.NoError(t, err)
	require.False(t, paused)
}

func TestGetRoundBeneficiaries(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	vestingContract := vesting.SmartContract{}
	bootstrap(t, env, &vestingContract)
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Seed", []string{user1, user2}, []string{grant10k, grant10k}))
	require.NoError(t, vestingContract.AddBeneficiaries(env.ctx, "Team", []string{user1}, []string{grant10k}))

	result, err := vestingContract.GetRoundBeneficiaries(env.ctx, "Seed")
	require.NoError(t, err)
	require.Equal(t, "Seed", result.Round)
	require.Len(t, result.Allocations, 2)
	for _, allocation := range result.Allocations {
		require.Equal(t, "Seed", allocation.Round)
		require.Equal(t, grant10k, allocation.TotalAllocations)
	}

	_, err = vestingContract.GetRoundBeneficiaries(env.ctx, "Public")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidRound")
}
