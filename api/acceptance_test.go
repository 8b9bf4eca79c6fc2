package api

import (
	"path/filepath"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
	"github.com/fulldump/candidatedb/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		dataFile := filepath.Join(t.TempDir(), "hw.data")
		s := service.NewService(collector.New(candidate.Read), dataFile)

		b := Build(s, "test")
		b.WithInterceptors(
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
