package api

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
)

func TestRecoverFromPanic(t *testing.T) {

	logs := &bytes.Buffer{}
	l := slog.New(slog.NewTextHandler(logs, nil))

	b := box.NewBox()
	b.WithInterceptors(
		AccessLog(l),
		PrettyErrorInterceptor,
		RecoverFromPanic(l),
	)
	b.Resource("/boom").WithActions(
		box.Get(func(ctx context.Context) (string, error) {
			panic("kaboom")
		}),
	)

	resp := apitest.NewWithHandler(b).Request("GET", "/boom").Do()

	biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "panic: kaboom",
			"description": "Unexpected error",
		},
	})
	biff.AssertTrue(bytes.Contains(logs.Bytes(), []byte("panic serving request")))
	biff.AssertTrue(bytes.Contains(logs.Bytes(), []byte("url=/boom")))
}

func TestRelease(t *testing.T) {

	b := Build(nil, "v1.2.3")

	resp := apitest.NewWithHandler(b).Request("GET", "/release").Do()

	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqual(resp.BodyJson(), "v1.2.3")
}

func TestFormatRemoteAddr(t *testing.T) {

	r, _ := http.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	biff.AssertEqual(formatRemoteAddr(r), "10.0.0.1")

	r.Header.Set("X-Forwarded-For", " 192.168.1.7 , 10.0.0.1")
	biff.AssertEqual(formatRemoteAddr(r), "192.168.1.7")
}
