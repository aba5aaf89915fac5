package cmd

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"electroledger/pkg/models"
)

func idArg(args []string) models.ID {
	return models.ID(strings.TrimSpace(args[0]))
}

func amountFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return models.ParseAmount(raw)
}

// The opt helpers return nil for flags not given on the command line, for
// building patches.

func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func optBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func optAmount(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	d, err := amountFlag(cmd, name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optStatus(cmd *cobra.Command, name string) *models.PaymentStatus {
	v := optString(cmd, name)
	if v == nil {
		return nil
	}
	s := models.PaymentStatus(strings.ToLower(strings.TrimSpace(*v)))
	return &s
}

func intArg(arg string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(arg))
}
