package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/ggscreen/pkg/render"
)

// Flag readers. Registration picks zero defaults; the effective default
// comes from the resolved config when the user left a flag untouched.

func getFlagString(cmd *cobra.Command, flag string) string {
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return v
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return v
}

// stringOr returns the flag value when the user set it, fallback otherwise.
func stringOr(cmd *cobra.Command, flag, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return getFlagString(cmd, flag)
	}
	return fallback
}

func boolOr(cmd *cobra.Command, flag string, fallback bool) bool {
	if cmd.Flags().Changed(flag) {
		return getFlagBool(cmd, flag)
	}
	return fallback
}

func float64Or(cmd *cobra.Command, flag string, fallback float64) float64 {
	if cmd.Flags().Changed(flag) {
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			panic(err)
		}
		return v
	}
	return fallback
}

func intOr(cmd *cobra.Command, flag string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, err := cmd.Flags().GetInt(flag)
		if err != nil {
			panic(err)
		}
		return v
	}
	return fallback
}

// separator maps the --csv flag to the output field separator.
func separator(csv bool) string {
	if csv {
		return render.SepCSV
	}
	return render.SepTSV
}
