package main

import (
	"fmt"

	"github.com/spf13/cobra"

	jobmatch "github.com/kailas-cloud/jobmatch/pkg/sdk"
)

type rankFlags struct {
	name          string
	qualification string
	experience    int
	skills        string
	location      string
	limit         int
	offline       bool
}

func (f rankFlags) seeker() jobmatch.Seeker {
	return jobmatch.Seeker{
		Name:          f.name,
		Qualification: f.qualification,
		Experience:    f.experience,
		Skills:        f.skills,
		Location:      f.location,
	}
}

func (c *cli) rankCmd() *cobra.Command {
	var f rankFlags

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank listings for a seeker profile",
		Example: `  jobmatchctl rank --qualification Matric --experience 1 \
    --skills "cash handling,customer service" --location Johannesburg`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.offline {
				matches := jobmatch.Rank(f.seeker(), sampleCorpus())
				if f.limit > 0 && f.limit < len(matches) {
					matches = matches[:f.limit]
				}
				return c.printMatches(matches)
			}

			ctx := cmd.Context()
			client, err := c.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			matches, err := client.Match(ctx, f.seeker(), f.limit)
			if err != nil {
				return fmt.Errorf("rank: %w", err)
			}
			return c.printMatches(matches)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "seeker name")
	fl.StringVarP(&f.qualification, "qualification", "q", "", "highest qualification")
	fl.IntVarP(&f.experience, "experience", "e", 0, "years of experience")
	fl.StringVarP(&f.skills, "skills", "s", "", "comma-separated skills")
	fl.StringVarP(&f.location, "location", "l", "", "preferred location")
	fl.IntVarP(&f.limit, "limit", "n", 0, "maximum matches to print (0 = all)")
	fl.BoolVar(&f.offline, "offline", false, "rank the built-in sample listings without a store")

	return cmd
}
