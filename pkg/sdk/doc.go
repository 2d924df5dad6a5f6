// Package jobmatch provides an embedded Go client for the jobmatch relevance
// engine backed by Redis (or Valkey) or PostgreSQL.
//
// # Stored listings
//
//	client, _ := jobmatch.New(ctx, jobmatch.WithRedis("localhost:6379", ""))
//	defer client.Close()
//	_, _ = client.Listings().Create(ctx, jobmatch.ListingInput{
//	    Company: "ShopRite", Title: "Cashier", MinExperience: 1,
//	    Skills: "cash handling,customer service", Location: "Johannesburg",
//	})
//	matches, _ := client.Match(ctx, jobmatch.Seeker{
//	    Qualification: "Matric", Experience: 1,
//	    Skills: "cash handling", Location: "Johannesburg",
//	}, 10)
//
// # In-memory ranking
//
//	matches := jobmatch.Rank(seeker, listings)
package jobmatch
