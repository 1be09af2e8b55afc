// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package controller keeps the merged image records the presentation layer
shows and applies vote requests to the vote store.

	c := controller.New(catalog, store, 5*time.Second)
	if err := c.Init(ctx); err != nil {
		// a notice is already posted; records degrade to unvoted
	}
	rec, err := c.Vote(ctx, "image1", votes.Up)

Failures that a user should see are posted as a Notice, readable through
Notice until the configured TTL has elapsed.
*/
package controller
