package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	jobmatch "github.com/kailas-cloud/jobmatch/pkg/sdk"
)

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func (c *cli) printMatches(ms []jobmatch.Match) error {
	if c.v.GetBool("json") {
		return c.printJSON(ms)
	}
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tID\tCOMPANY\tTITLE\tLOCATION\tMIN EXP")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			m.Score,
			m.Listing.ID, m.Listing.Company, m.Listing.Title, m.Listing.Location, m.Listing.MinExperience)
	}
	return tw.Flush()
}

func (c *cli) printListings(ls []jobmatch.Listing) error {
	if c.v.GetBool("json") {
		return c.printJSON(ls)
	}
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tLOCATION\tMIN EXP\tSKILLS")
	for _, l := range ls {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			l.ID, l.Company, l.Title, l.Location, l.MinExperience, l.Skills)
	}
	return tw.Flush()
}
