package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) listingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Print stored listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := c.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			ls, err := client.Listings().List(ctx)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			return c.printListings(ls)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Listings().Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			fmt.Fprintf(c.out, "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
