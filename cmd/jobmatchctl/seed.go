package main

import (
	"fmt"

	"github.com/spf13/cobra"

	jobmatch "github.com/kailas-cloud/jobmatch/pkg/sdk"
)

// sampleListings is the demo corpus inserted by `seed`.
var sampleListings = []jobmatch.ListingInput{
	{Company: "ShopRite", Title: "Cashier", MinExperience: 1, Skills: "cash handling,customer service", Location: "Johannesburg"},
	{Company: "FNB Bank", Title: "Bank Teller", MinExperience: 2, Skills: "customer service,finance,cash management", Location: "Pretoria"},
	{Company: "Pick n Pay", Title: "Store Manager", MinExperience: 3, Skills: "team leadership,inventory,retail management", Location: "Durban"},
	{Company: "TechCo", Title: "Junior Software Developer", MinExperience: 1, Skills: "python,html,css,flask", Location: "Cape Town"},
	{Company: "TransNet", Title: "Driver", MinExperience: 2, Skills: "transportation,communication,time management", Location: "Soweto"},
}

// sampleCorpus returns the demo listings with positional IDs, for offline ranking.
func sampleCorpus() []jobmatch.Listing {
	out := make([]jobmatch.Listing, len(sampleListings))
	for i, in := range sampleListings {
		out[i] = jobmatch.Listing{
			ID:            fmt.Sprintf("sample-%d", i+1),
			Company:       in.Company,
			Title:         in.Title,
			MinExperience: in.MinExperience,
			Skills:        in.Skills,
			Location:      in.Location,
		}
	}
	return out
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample listings into the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := c.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			created := make([]jobmatch.Listing, 0, len(sampleListings))
			for _, in := range sampleListings {
				l, err := client.Listings().Create(ctx, in)
				if err != nil {
					return fmt.Errorf("seed %s: %w", in.Company, err)
				}
				created = append(created, l)
			}
			return c.printListings(created)
		},
	}
}
