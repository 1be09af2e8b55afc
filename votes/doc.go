// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes owns the per-image vote map and its toggle rules.

# Vote States

Each image is in one of three states:

	NONE --up--> UP     UP --up--> NONE
	NONE --down--> DOWN DOWN --down--> NONE
	UP --down--> DOWN   DOWN --up--> UP

Switching directly between UP and DOWN is a single write.

# Persistence

The map is stored as one JSON object under a single key (default
"imageVotes"):

	{"image1": 1, "image3": -1}

Absent keys mean no vote; a key is removed rather than set to 0.

# Reading

Load keeps failures visible, GetVotes hides them:

	m, err := store.Load(ctx)  // *ParseError or storage error
	m := store.GetVotes(ctx)   // empty map on any failure

# Writing

	applied, err := store.SetVote(ctx, "image1", votes.Up)

The whole map is rewritten on every call. When the write fails, SetVote
returns the value that is still stored together with the error.
*/
package votes
