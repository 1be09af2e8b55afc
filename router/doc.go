// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the image vote API.

# Route Registration

	mux := router.NewRouter(ctrl, cfg)
	server := http.Server{Handler: router.Wrap(mux)}

# Endpoints

	GET    /health             - Liveness
	GET    /images             - Images with vote_status and any notice
	POST   /images/reload      - Re-read catalog and votes
	POST   /images/{id}/vote   - Cast {"value": 1} or {"value": -1}
	GET    /votes              - Stored vote map
	DELETE /votes              - Clear every vote
*/
package router
