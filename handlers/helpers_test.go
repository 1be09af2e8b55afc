package handlers

import (
	"context"
	"testing"

	"github.com/danielhkuo/image-vote/catalog"
	"github.com/danielhkuo/image-vote/cliparse"
	"github.com/danielhkuo/image-vote/controller"
	"github.com/danielhkuo/image-vote/storage"
	"github.com/danielhkuo/image-vote/testutil"
	"github.com/danielhkuo/image-vote/votes"
)

func getTestConfig() cliparse.Config {
	return testutil.GetTestConfig()
}

func testCatalog(t *testing.T) *catalog.Static {
	t.Helper()
	c, err := catalog.NewStatic([]catalog.Entry{
		{ID: "a", URL: "https://example.com/a.png"},
		{ID: "b", URL: "https://example.com/b.png"},
		{ID: "c", URL: "https://example.com/c.png"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// setupHandler builds an initialized handler over kv
func setupHandler(t *testing.T, kv storage.KV) (*ImageHandler, *controller.Controller) {
	t.Helper()

	cfg := getTestConfig()
	ctrl := controller.New(testCatalog(t), votes.NewStore(kv, cfg.StorageKey), cfg.NoticeTTL)
	ctrl.Init(context.Background())
	return NewImageHandler(ctrl, cfg), ctrl
}
