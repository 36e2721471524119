package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/test/testutil"
)

type part struct {
	field, name string
	data        []byte
}

func send(t *testing.T, method, url string, fields map[string]string, files []part) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write(f.data)
	}
	_ = mw.Close()

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestProjectFlow(t *testing.T) {
	srv := newServer(t)
	png := testutil.GeneratePNG(t, 16, 16)

	resp, err := http.Post(srv.URL+"/skills", "application/json", strings.NewReader(`{"name":"Go"}`))
	if err != nil {
		t.Fatalf("create skill: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create skill status = %d", resp.StatusCode)
	}
	skill := decode[model.Skill](t, resp)

	fields := map[string]string{
		"title":       "Portfolio",
		"slug":        "portfolio",
		"description": "My site",
		"features":    `["cms"]`,
		"skillId":     `["` + skill.ID.String() + `"]`,
	}

	// missing thumbnail
	resp = send(t, http.MethodPost, srv.URL+"/projects", fields, []part{{"gallery", "g.png", png}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("create without thumbnail status = %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = send(t, http.MethodPost, srv.URL+"/projects", fields, []part{
		{"thumbnail", "t.png", png},
		{"gallery", "g1.png", png},
		{"gallery", "g2.png", png},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create project status = %d", resp.StatusCode)
	}
	p := decode[model.Project](t, resp)
	if len(p.Gallery) != 2 || len(p.Skills) != 1 {
		t.Fatalf("unexpected project %+v", p)
	}

	// served from storage
	mediaResp, err := http.Get(srv.URL + "/media" + p.Gallery[0])
	if err != nil {
		t.Fatalf("get media: %v", err)
	}
	body, _ := io.ReadAll(mediaResp.Body)
	_ = mediaResp.Body.Close()
	if mediaResp.StatusCode != http.StatusOK || !bytes.Equal(body, png) {
		t.Fatalf("media status %d, %d bytes", mediaResp.StatusCode, len(body))
	}

	// the form resends the full old gallery plus the deleted paths
	oldGallery, _ := json.Marshal(p.Gallery)
	update := map[string]string{
		"title":          "Portfolio v2",
		"slug":           "portfolio",
		"description":    "My site",
		"oldGallery":     string(oldGallery),
		"deletedGallery": `["` + p.Gallery[1] + `"]`,
		"skillId":        `[]`,
	}
	resp = send(t, http.MethodPut, srv.URL+"/projects/"+p.ID.String(), update, []part{{"gallery", "g3.png", png}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	up := decode[model.Project](t, resp)
	if up.Title != "Portfolio v2" || len(up.Skills) != 0 {
		t.Errorf("fields not applied: %+v", up)
	}
	if len(up.Gallery) != 2 || up.Gallery[0] != p.Gallery[0] || up.Thumbnail != p.Thumbnail {
		t.Errorf("gallery = %v thumbnail = %s", up.Gallery, up.Thumbnail)
	}
	gone, _ := http.Get(srv.URL + "/media" + p.Gallery[1])
	_ = gone.Body.Close()
	if gone.StatusCode != http.StatusNotFound {
		t.Errorf("deleted gallery image status = %d; want 404", gone.StatusCode)
	}

	// unknown kept path
	update["oldGallery"] = `["/gallery/not-mine.webp"]`
	update["deletedGallery"] = `[]`
	resp = send(t, http.MethodPut, srv.URL+"/projects/"+p.ID.String(), update, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("foreign kept path status = %d; want 400", resp.StatusCode)
	}
	_ = resp.Body.Close()

	bySlug, err := http.Get(srv.URL + "/projects/slug/portfolio")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.StatusCode != http.StatusOK {
		t.Errorf("by slug status = %d", bySlug.StatusCode)
	}
	_ = bySlug.Body.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/projects/"+p.ID.String(), nil)
	del, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	_ = del.Body.Close()
	if del.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", del.StatusCode)
	}
	thumb, _ := http.Get(srv.URL + "/media" + up.Thumbnail)
	_ = thumb.Body.Close()
	if thumb.StatusCode != http.StatusNotFound {
		t.Errorf("thumbnail after delete status = %d; want 404", thumb.StatusCode)
	}
}

func TestPortfolioETag(t *testing.T) {
	srv := newServer(t)

	first, err := http.Get(srv.URL + "/portfolio")
	if err != nil {
		t.Fatalf("get portfolio: %v", err)
	}
	_ = first.Body.Close()
	etag := first.Header.Get("ETag")
	if first.StatusCode != http.StatusOK || etag == "" {
		t.Fatalf("status %d, etag %q", first.StatusCode, etag)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/portfolio", nil)
	req.Header.Set("If-None-Match", etag)
	second, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional get: %v", err)
	}
	_ = second.Body.Close()
	if second.StatusCode != http.StatusNotModified {
		t.Errorf("status = %d; want 304", second.StatusCode)
	}
}
