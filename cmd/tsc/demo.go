package main

import (
	"fmt"
	"github.com/piercep/thread-safe-collections/pkg/collections"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func (c *CLI) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Builds a thread-safe stack from values and shows its LIFO order",
		Run: func(cmd *cobra.Command, args []string) {
			values, _ := cmd.Flags().GetStringSlice("values")
			if len(values) == 0 {
				var input []any
				if err := c.ReadInput(&input); err != nil {
					c.Error(err)
					return
				}
				converted, err := stringValues(input)
				if err != nil {
					c.Error(err)
					return
				}
				values = converted
			}
			stack := collections.NewFromSlice(values)
			c.SetOutput("stack", stack.String())
			c.SetOutput("array", stack.ToArray())
			if top, ok := stack.TryPeek(); ok {
				c.SetOutput("peek", top)
			}
			var popped []string
			for {
				v, ok := stack.TryPop()
				if !ok {
					break
				}
				popped = append(popped, v)
			}
			c.SetOutput("popped", popped)
			c.Ok(fmt.Sprintf("stack of %d values demonstrated", len(values)))
		},
	}
	cmd.Flags().StringSlice("values", []string{}, "Values pushed in order, last one ends up on top (input is read when omitted)")
	return cmd
}

func stringValues(input []any) ([]string, error) {
	result := make([]string, len(input))
	for i, v := range input {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert input value at index %d to string: %w", i, err)
		}
		result[i] = s
	}
	return result, nil
}
