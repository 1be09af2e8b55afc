// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - VoteRequest: value (1 or -1)

# Response Types

  - ImagesResponse: images, optional notice
  - VoteResponse: image
  - ResetResponse: message
  - ErrorResponse: error, message

# Domain Types

  - ImageRecord: catalog entry with its current vote_status
  - Notice: transient user-visible error with an expiry

# Constants

Notice messages:

	NoticeLoadFailed = "Failed to load images. Please try again later."
	NoticeVoteFailed = "Failed to save vote. Please try again later."
*/
package models
