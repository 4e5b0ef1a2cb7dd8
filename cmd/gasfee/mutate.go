package main

import (
	"encoding/json"
	"io"
	"math/big"
	"os"

	"github.com/ClipFinance/gasfee-lib/chainmanager"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/common/units"
	"github.com/ClipFinance/gasfee-lib/congestion"
	"github.com/ClipFinance/gasfee-lib/feeconfig"
	"github.com/ClipFinance/gasfee-lib/feeengine"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Compute a fee update for a pending transaction",
	Long:  "Read a fee request as JSON and print the update payload the wallet store should apply",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(mutateCmd)

	mutateCmd.Flags().StringP("request", "r", "-", "Path to the JSON fee request ('-' reads stdin)")
	mutateCmd.Flags().StringP("op", "o", "level", "Operation: level, dapp, replace, minimum or custom")
	mutateCmd.Flags().StringP("level", "l", "medium", "Estimate level for the level and replace operations")
	mutateCmd.Flags().String("max-fee", "", "Custom max fee per gas")
	mutateCmd.Flags().String("priority-fee", "", "Custom max priority fee per gas")
	mutateCmd.Flags().String("gas-price", "", "Custom legacy gas price")
	mutateCmd.Flags().Uint64P("chain-id", "c", 1, "Chain whose fee policy is used")
	mutateCmd.Flags().String("config", "", "Path to the gasfee config file")
	mutateCmd.Flags().Bool("build-tx", false, "Also print the unsigned replacement transaction")
}

// mutateOutput is printed by the mutate command.
type mutateOutput struct {
	Payload     *types.UpdatePayload            `json:"payload"`
	Congestion  *types.CongestionClassification `json:"congestion,omitempty"`
	Replacement json.RawMessage                 `json:"replacement,omitempty"`
}

func mutate(cmd *cobra.Command) error {
	requestPath, _ := cmd.Flags().GetString("request")
	op, _ := cmd.Flags().GetString("op")
	levelName, _ := cmd.Flags().GetString("level")
	maxFee, _ := cmd.Flags().GetString("max-fee")
	priorityFee, _ := cmd.Flags().GetString("priority-fee")
	gasPrice, _ := cmd.Flags().GetString("gas-price")
	chainID, _ := cmd.Flags().GetUint64("chain-id")
	configPath, _ := cmd.Flags().GetString("config")
	buildTx, _ := cmd.Flags().GetBool("build-tx")

	cfg, err := feeconfig.ReadConfig(configPath)
	if err != nil {
		return errors.Wrap(err, "error reading config file")
	}

	logger, err := feeconfig.NewLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	registry, err := chainmanager.NewChainRegistryFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	engine, err := chainmanager.Lookup(registry, chainID)
	if err != nil {
		return err
	}

	req, err := readRequest(cmd, requestPath)
	if err != nil {
		return err
	}

	level, err := types.ParseEstimateLevel(levelName)
	if err != nil {
		return err
	}

	var payload *types.UpdatePayload
	switch op {
	case "level":
		payload, err = engine.FromEstimateLevel(req, level)
	case "dapp":
		payload, err = engine.FromDappSuggested(req)
	case "replace":
		payload, err = engine.ForSpeedUpOrCancel(req, level)
	case "minimum":
		payload, err = engine.ToMinimum(req)
	case "custom":
		payload, err = engine.Custom(req, &types.GasFees{
			GasPrice:             gasPrice,
			MaxFeePerGas:         maxFee,
			MaxPriorityFeePerGas: priorityFee,
		})
	default:
		return errors.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return err
	}

	logPayload(logger, chainID, payload)

	output := &mutateOutput{Payload: payload}
	if req.Estimates != nil {
		classification := congestion.ClassifySource(req.Estimates)
		output.Congestion = &classification
	}

	if buildTx {
		tx, err := feeengine.BuildReplacementTx(payload, req.Transaction, req.EditMode, new(big.Int).SetUint64(chainID))
		if err != nil {
			return errors.Wrap(err, "failed to build replacement transaction")
		}

		encoded, err := tx.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "failed to encode replacement transaction")
		}
		output.Replacement = encoded
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func readRequest(cmd *cobra.Command, path string) (*types.FeeRequest, error) {
	var reader io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open request file %v", path)
		}
		defer f.Close()
		reader = f
	}

	req := &types.FeeRequest{}
	if err := json.NewDecoder(reader).Decode(req); err != nil {
		return nil, errors.Wrap(err, "failed to decode fee request")
	}

	return req, nil
}

// logPayload logs the computed fees in gwei.
func logPayload(logger *logrus.Logger, chainID uint64, payload *types.UpdatePayload) {
	fields := logrus.Fields{
		"chainId":      chainID,
		"userFeeLevel": payload.UserFeeLevel,
	}

	for name, value := range map[string]string{
		"gasPriceGwei":             payload.TxParams.GasPrice,
		"maxFeePerGasGwei":         payload.TxParams.MaxFeePerGas,
		"maxPriorityFeePerGasGwei": payload.TxParams.MaxPriorityFeePerGas,
	} {
		if value == "" {
			continue
		}
		if wei, err := units.ParseHex(value); err == nil {
			fields[name] = units.WeiToGwei(wei).String()
		}
	}

	logger.WithFields(fields).Info("Computed fee update")
}
