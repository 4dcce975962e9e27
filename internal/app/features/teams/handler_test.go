package teams_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/features/teams"
	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, up *testutil.Upstream) *teams.Handler {
	t.Helper()
	client, err := apiclient.New(up.URL)
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}

	view := teams.NewView(client, zap.NewNop())
	t.Cleanup(view.Close)

	h := teams.NewHandler(view, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	h.Render = testutil.NewCaptureRenderer(t, resources.FS, collection.FS, teams.FS)
	return h
}

func refresh(h *teams.Handler) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewHTMXRequest("/teams/table"))
	return rec
}

func TestServeTable_RendersCards(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("teams", http.StatusOK, testutil.TeamsJSON)
	h := newTestHandler(t, up)

	rec := refresh(h)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<h5 class="card-title">Team Marvel</h5>`)
	rec.AssertContains(t, `<p class="card-text">Avengers assemble</p>`)
	rec.AssertContains(t, `<span class="badge bg-primary">3 Members</span>`)
	rec.AssertContains(t, `<span class="badge bg-primary">0 Members</span>`)

	if n := strings.Count(rec.Body.String(), `class="card h-100"`); n != 2 {
		t.Errorf("got %d cards, want 2", n)
	}
}

func TestServeTable_EmptyNotice(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("teams", http.StatusOK, `{"results":[]}`)
	h := newTestHandler(t, up)

	refresh(h).AssertContains(t, "No teams found")
}
