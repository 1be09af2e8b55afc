// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the image vote API.

# Handler Types

ImageHandler wraps a controller.Controller and the config:

	imageHandler := handlers.NewImageHandler(ctrl, cfg)

# Voting Flow

	GET  /images            → ListImages (records plus any active notice)
	POST /images/{id}/vote  → CastVote, body {"value": 1} or {"value": -1}
	POST /images/reload     → Reload (re-read catalog and votes)

Casting the vote an image already has clears it. The response carries the
record with its new vote_status.

# Vote Map

	GET    /votes → GetVotes (raw stored map, empty if unreadable)
	DELETE /votes → ResetVotes

# Errors

	400 invalid JSON or a value other than 1 / -1
	404 image id not in the catalog
	503 storage failure; the same message is posted as a notice
*/
package handlers
