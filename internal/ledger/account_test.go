package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/drill/internal/errors"
)

func TestOpenAccount(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)
	assert.Equal(t, "A-1", account.Owner())
	assert.Equal(t, int64(100), account.Balance())
	assert.NotEqual(t, uuid.Nil, account.Number())
}

func TestOpenAccount_BlankOwner(t *testing.T) {
	for _, owner := range []string{"", "   ", "\t\n"} {
		account, err := OpenAccount(owner, 100)
		assert.Nil(t, account)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	}
}

func TestOpenAccount_NegativeOpening(t *testing.T) {
	account, err := OpenAccount("A-1", -500)
	assert.Nil(t, account)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDeposit(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	require.NoError(t, account.Deposit(50))
	assert.Equal(t, int64(150), account.Balance())
}

func TestDeposit_NonPositive(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	for _, amount := range []int64{0, -1, -100} {
		err := account.Deposit(amount)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t, int64(100), account.Balance())
	}
}

func TestWithdraw(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	require.NoError(t, account.Withdraw(40))
	assert.Equal(t, int64(60), account.Balance())
}

func TestWithdraw_Overdraft(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	err = account.Withdraw(500)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))
	// failed withdraw leaves the balance untouched
	assert.Equal(t, int64(100), account.Balance())
}

func TestWithdraw_NonPositive(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	err = account.Withdraw(0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, int64(100), account.Balance())
}

func TestWithdraw_ExactBalance(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	require.NoError(t, account.Withdraw(100))
	assert.Equal(t, int64(0), account.Balance())
}

func TestString_Deterministic(t *testing.T) {
	account, err := OpenAccount("A-1", 100)
	require.NoError(t, err)

	assert.Equal(t, `Account{owner="A-1", balance=100}`, account.String())
}

func TestOpen_Request(t *testing.T) {
	account, err := Open(OpenRequest{Owner: "A-1", Opening: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance())
}

func TestOpen_RequestRejected(t *testing.T) {
	tests := []struct {
		name string
		req  OpenRequest
	}{
		{"missing owner", OpenRequest{Opening: 100}},
		{"negative opening", OpenRequest{Owner: "A-1", Opening: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := Open(tt.req)
			assert.Nil(t, account)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
