// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/image-vote/models"
	"github.com/danielhkuo/image-vote/testutil"
	"github.com/danielhkuo/image-vote/votes"
)

func TestListImages(t *testing.T) {
	kv := testutil.SetupTestStorage(t)
	testutil.SeedRaw(t, kv, testutil.TestStorageKey, `{"b":-1}`)
	handler, _ := setupHandler(t, kv)

	req := testutil.MakeRequest("GET", "/images", nil, nil)
	w := httptest.NewRecorder()
	handler.ListImages(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ImagesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Images) != 3 {
		t.Fatalf("Expected 3 images, got %d", len(resp.Images))
	}
	expected := []votes.Value{votes.None, votes.Down, votes.None}
	for i, img := range resp.Images {
		if img.VoteStatus != expected[i] {
			t.Errorf("Image %s: expected %s, got %s", img.ID, expected[i], img.VoteStatus)
		}
	}
	if resp.Notice != nil {
		t.Errorf("Expected no notice, got %+v", resp.Notice)
	}
}

func TestListImages_LoadFailureNotice(t *testing.T) {
	kv := testutil.NewFlakyKV(nil)
	kv.FailReads.Store(true)
	handler, _ := setupHandler(t, kv)

	w := httptest.NewRecorder()
	handler.ListImages(w, testutil.MakeRequest("GET", "/images", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ImagesResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Notice == nil || resp.Notice.Message != models.NoticeLoadFailed {
		t.Errorf("Expected load notice, got %+v", resp.Notice)
	}
	for _, img := range resp.Images {
		if img.VoteStatus != votes.None {
			t.Errorf("Expected %s to degrade to unvoted, got %s", img.ID, img.VoteStatus)
		}
	}
}

func TestCastVote(t *testing.T) {
	tests := []struct {
		name           string
		imageID        string
		body           string
		expectedStatus int
		expectedVote   votes.Value
	}{
		{
			name:           "upvote",
			imageID:        "a",
			body:           `{"value":1}`,
			expectedStatus: http.StatusOK,
			expectedVote:   votes.Up,
		},
		{
			name:           "downvote",
			imageID:        "b",
			body:           `{"value":-1}`,
			expectedStatus: http.StatusOK,
			expectedVote:   votes.Down,
		},
		{
			name:           "zero value",
			imageID:        "a",
			body:           `{"value":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out of range value",
			imageID:        "a",
			body:           `{"value":5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing value",
			imageID:        "a",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			imageID:        "a",
			body:           `{value`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown image",
			imageID:        "nope",
			body:           `{"value":1}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing image id",
			imageID:        "",
			body:           `{"value":1}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupHandler(t, testutil.SetupTestStorage(t))

			req := httptest.NewRequest("POST", "/images/"+tt.imageID+"/vote", bytes.NewReader([]byte(tt.body)))
			req.SetPathValue("id", tt.imageID)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.VoteResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Image.ID != tt.imageID {
				t.Errorf("Expected image %s, got %s", tt.imageID, resp.Image.ID)
			}
			if resp.Image.VoteStatus != tt.expectedVote {
				t.Errorf("Expected vote %s, got %s", tt.expectedVote, resp.Image.VoteStatus)
			}
		})
	}
}

func TestCastVote_StorageFailure(t *testing.T) {
	kv := testutil.NewFlakyKV(nil)
	handler, _ := setupHandler(t, kv)
	kv.FailWrites.Store(true)

	req := testutil.MakeRequest("POST", "/images/a/vote", models.VoteRequest{Value: votes.Up}, nil)
	req.SetPathValue("id", "a")
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Message != models.NoticeVoteFailed {
		t.Errorf("Expected vote failure message, got %q", errResp.Message)
	}

	// The notice is also visible on the next listing
	w = httptest.NewRecorder()
	handler.ListImages(w, testutil.MakeRequest("GET", "/images", nil, nil))
	var resp models.ImagesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Notice == nil || resp.Notice.Message != models.NoticeVoteFailed {
		t.Errorf("Expected vote notice in listing, got %+v", resp.Notice)
	}
	if resp.Images[0].VoteStatus != votes.None {
		t.Errorf("Expected unsaved vote not to show, got %s", resp.Images[0].VoteStatus)
	}
}

func TestGetVotes(t *testing.T) {
	kv := testutil.SetupTestStorage(t)
	testutil.SeedRaw(t, kv, testutil.TestStorageKey, `{"a":1,"c":-1}`)
	handler, _ := setupHandler(t, kv)

	w := httptest.NewRecorder()
	handler.GetVotes(w, testutil.MakeRequest("GET", "/votes", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var m votes.VoteMap
	testutil.AssertJSON(t, w, &m)
	if len(m) != 2 || m["a"] != votes.Up || m["c"] != votes.Down {
		t.Errorf("Unexpected vote map %#v", m)
	}
}

func TestGetVotes_Malformed(t *testing.T) {
	kv := testutil.SetupTestStorage(t)
	testutil.SeedRaw(t, kv, testutil.TestStorageKey, `garbage`)
	handler, _ := setupHandler(t, kv)

	w := httptest.NewRecorder()
	handler.GetVotes(w, testutil.MakeRequest("GET", "/votes", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var m votes.VoteMap
	testutil.AssertJSON(t, w, &m)
	if len(m) != 0 {
		t.Errorf("Expected empty map, got %#v", m)
	}
}

func TestResetVotes(t *testing.T) {
	kv := testutil.NewFlakyKV(nil)
	testutil.SeedRaw(t, kv, testutil.TestStorageKey, `{"a":1}`)
	handler, ctrl := setupHandler(t, kv)

	w := httptest.NewRecorder()
	handler.ResetVotes(w, testutil.MakeRequest("DELETE", "/votes", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if ctrl.Images()[0].VoteStatus != votes.None {
		t.Error("Expected records reset")
	}

	kv.FailWrites.Store(true)
	w = httptest.NewRecorder()
	handler.ResetVotes(w, testutil.MakeRequest("DELETE", "/votes", nil, nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestReload(t *testing.T) {
	kv := testutil.NewFlakyKV(nil)
	handler, _ := setupHandler(t, kv)

	// Another writer changed the map since the first load
	testutil.SeedRaw(t, kv, testutil.TestStorageKey, `{"c":1}`)

	w := httptest.NewRecorder()
	handler.Reload(w, testutil.MakeRequest("POST", "/images/reload", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ImagesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Images[2].VoteStatus != votes.Up {
		t.Errorf("Expected reloaded status up for c, got %s", resp.Images[2].VoteStatus)
	}

	kv.FailReads.Store(true)
	w = httptest.NewRecorder()
	handler.Reload(w, testutil.MakeRequest("POST", "/images/reload", nil, nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
