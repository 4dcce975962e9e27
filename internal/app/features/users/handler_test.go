package users_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/features/users"
	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, up *testutil.Upstream) *users.Handler {
	t.Helper()
	client, err := apiclient.New(up.URL)
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}

	view := users.NewView(client, zap.NewNop())
	t.Cleanup(view.Close)

	h := users.NewHandler(view, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	h.Render = testutil.NewCaptureRenderer(t, resources.FS, collection.FS, users.FS)
	return h
}

func refresh(h *users.Handler) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewHTMXRequest("/users/table"))
	return rec
}

func TestServeTable_RendersMailtoAndFullName(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("users", http.StatusOK, testutil.UsersJSON)
	h := newTestHandler(t, up)

	rec := refresh(h)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<strong>thundergod</strong>`)
	rec.AssertContains(t, `<a href="mailto:thor@asgard.example">thor@asgard.example</a>`)
	rec.AssertContains(t, `<td>Thor Odinson</td>`)
}

func TestServeTable_MissingNamesAreTrimmed(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("users", http.StatusOK, `[{"id":9,"username":"ghost","last_name":"Rider"}]`)
	h := newTestHandler(t, up)

	rec := refresh(h)
	rec.AssertContains(t, `<td>Rider</td>`)
	rec.AssertNotContains(t, "mailto:")
	if strings.Contains(rec.Body.String(), "<td> Rider</td>") {
		t.Error("full name should be trimmed")
	}
}

func TestServeTable_StatusError(t *testing.T) {
	up := testutil.NewUpstream(t)
	up.Set("users", http.StatusNotFound, `{"detail":"not found"}`)
	h := newTestHandler(t, up)

	refresh(h).AssertContains(t, "HTTP error! status: 404")
}
