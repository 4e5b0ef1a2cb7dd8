package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestCongestionCommand(t *testing.T) {
	out, err := execute(t, "", "congestion", "0.67")
	require.NoError(t, err)

	var got types.CongestionClassification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, types.StatusBusy, got.StatusLabel)
	assert.Equal(t, 70, got.IndicatorPosition)
}

func TestMutateCommand_Minimum(t *testing.T) {
	request := `{
		"transaction": {
			"txParams": {
				"from": "0x1111111111111111111111111111111111111111",
				"nonce": "0x2",
				"maxFeePerGas": "0x5028",
				"maxPriorityFeePerGas": "0x5028"
			},
			"userFeeLevel": "custom"
		},
		"editMode": "cancel",
		"gasLimit": "21000",
		"defaultLevel": "medium",
		"estimates": {"gasEstimateType": "fee-market", "networkCongestion": 0.2}
	}`

	out, err := execute(t, request, "mutate", "--op", "minimum", "--chain-id", "1", "--build-tx")
	require.NoError(t, err)

	var got struct {
		Payload     types.UpdatePayload            `json:"payload"`
		Congestion  types.CongestionClassification `json:"congestion"`
		Replacement map[string]interface{}         `json:"replacement"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "0x582c", got.Payload.TxParams.MaxFeePerGas)
	assert.Equal(t, "0x5208", got.Payload.TxParams.GasLimit)
	assert.Equal(t, types.LevelMinimum, got.Payload.UserFeeLevel)
	assert.Equal(t, types.StatusNotBusy, got.Congestion.StatusLabel)
	assert.Equal(t, "0x2", got.Replacement["nonce"])
	assert.Equal(t, "0x0", got.Replacement["value"])
}
