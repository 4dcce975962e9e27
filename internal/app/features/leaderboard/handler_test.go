package leaderboard_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/features/leaderboard"
	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, up *testutil.Upstream) *leaderboard.Handler {
	t.Helper()
	client, err := apiclient.New(up.URL)
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}

	view := leaderboard.NewView(client, zap.NewNop())
	t.Cleanup(view.Close)

	h := leaderboard.NewHandler(view, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	h.Render = testutil.NewCaptureRenderer(t, resources.FS, collection.FS, leaderboard.FS)
	return h
}

func refresh(h *leaderboard.Handler) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewHTMXRequest("/leaderboard/table"))
	return rec
}

func TestServeTable_MedalsFollowPosition(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("leaderboard", http.StatusOK, testutil.LeaderboardJSON)
	h := newTestHandler(t, up)

	rec := refresh(h)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "🥇 #1")
	rec.AssertContains(t, "🥈 #2")
	rec.AssertContains(t, "🥉 #3")
	rec.AssertContains(t, "<strong>#4</strong>")
	rec.AssertContains(t, `<span class="badge bg-success">950</span>`)

	body := rec.Body.String()
	if n := strings.Count(body, `class="table-warning"`); n != 1 {
		t.Errorf("got %d highlighted rows, want 1", n)
	}
	if !strings.Contains(body, `<tr data-key="1" class="table-warning">`) {
		t.Error("first row should be highlighted")
	}
}

func TestServeTable_EmptyNotice(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("leaderboard", http.StatusOK, testutil.ObjectJSON)
	h := newTestHandler(t, up)

	refresh(h).AssertContains(t, "No leaderboard data found")
}
