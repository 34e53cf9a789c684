package main

import (
	"fmt"
	"strconv"

	"github.com/grindlemire/go-minsize/internal/layout"
	"github.com/spf13/cobra"
)

func newBoundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bound MIN VALUE MAX",
		Short: "Clamp VALUE into [MIN, MAX], applying MIN first",
		// Negative numbers must not be read as flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("bound takes MIN VALUE MAX, got %d argument(s)", len(args))
			}
			var nums [3]float64
			for i, arg := range args {
				n, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				nums[i] = n
			}
			_, err := fmt.Fprintln(a.out, strconv.FormatFloat(layout.Bound(nums[0], nums[1], nums[2]), 'f', -1, 64))
			return err
		},
	}
}
