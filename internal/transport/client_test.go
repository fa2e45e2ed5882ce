package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"feedbackportal/internal/model"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, StaticToken("test-token"))
}

func TestClient_AttachesStandardHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotRequestID string

	r := chi.NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotAccept = req.Header.Get("Accept")
		gotRequestID = req.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"pong"}`))
	})

	c := testClient(t, r)
	var out struct {
		Message string `json:"message"`
	}
	if err := c.Get(context.Background(), "/ping", &out); err != nil {
		t.Fatalf("get: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID must be set on every request")
	}
	if out.Message != "pong" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	r := chi.NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	if err := c.Get(context.Background(), "/ping", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_UnreachableServerIsNetworkFailure(t *testing.T) {
	// a closed port; nothing listens here once the server is gone
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 2*time.Second, nil)
	err := c.Get(context.Background(), "/posts", nil)
	if !model.IsKind(err, model.KindNetworkFailure) {
		t.Fatalf("err = %v, want NETWORK_FAILURE", err)
	}
}

func TestClient_ErrorEnvelopeMessageExtraction(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"nested error object", http.StatusBadRequest, `{"error":{"message":"title is required"}}`, "title is required"},
		{"flat message", http.StatusConflict, `{"message":"already liked"}`, "already liked"},
		{"unparseable body", http.StatusInternalServerError, `<html>boom</html>`, http.StatusText(http.StatusInternalServerError)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/fail", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			c := testClient(t, r)

			err := c.Get(context.Background(), "/fail", nil)
			if !model.IsKind(err, model.KindServerRejected) {
				t.Fatalf("err = %v, want SERVER_REJECTED", err)
			}
			var serr *model.ServiceError
			if !errors.As(err, &serr) {
				t.Fatalf("err = %T, want *model.ServiceError in chain", err)
			}
			if serr.StatusCode != tc.status {
				t.Errorf("status = %d, want %d", serr.StatusCode, tc.status)
			}
			if serr.Message != tc.message {
				t.Errorf("message = %q, want %q", serr.Message, tc.message)
			}
		})
	}
}

func TestClient_MalformedSuccessBodyIsServerRejected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/posts", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"posts": [`))
	})
	c := testClient(t, r)

	var out struct {
		Posts []model.Post `json:"posts"`
	}
	err := c.Get(context.Background(), "/posts", &out)
	if !model.IsKind(err, model.KindServerRejected) {
		t.Fatalf("err = %v, want SERVER_REJECTED", err)
	}
}

func TestClient_MultipartCarriesFieldsAndImage(t *testing.T) {
	var gotTitle, gotFilename string
	r := chi.NewRouter()
	r.Post("/posts/create", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotTitle = req.FormValue("title")
		if _, header, err := req.FormFile("image"); err == nil {
			gotFilename = header.Filename
		}
		w.Write([]byte(`{"message":"ok"}`))
	})
	c := testClient(t, r)

	image := &model.ImageUpload{Name: "banner.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
	fields := map[string]string{"title": "New arrivals"}
	if err := c.SendMultipart(context.Background(), http.MethodPost, "/posts/create", fields, image, nil); err != nil {
		t.Fatalf("send multipart: %v", err)
	}
	if gotTitle != "New arrivals" {
		t.Errorf("title = %q", gotTitle)
	}
	if gotFilename != "banner.jpg" {
		t.Errorf("filename = %q", gotFilename)
	}
}
