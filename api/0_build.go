package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/candidatedb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1").
		WithInterceptors(
			box.SetResponseHeader("Content-Type", "application/json"),
			injectServicer(s),
		)

	v1.Resource("/candidates").
		WithActions(
			box.Get(listCandidates),
			box.Post(insertCandidate),
		)

	v1.Resource("/candidates/{index}").
		WithActions(
			box.Get(getCandidate),
			box.Put(updateCandidate),
			box.ActionPost(removeCandidate).WithName("remove"),
		)

	v1.Resource("/collection").
		WithActions(
			box.ActionPost(loadCollection).WithName("load"),
			box.ActionPost(saveCollection).WithName("save"),
			box.ActionPost(cleanCollection).WithName("clean"),
		)

	b.Resource("/release").
		WithActions(
			box.Get(func() string {
				return version
			}),
		)

	return b
}

const ContextServicerKey = "3c5e9a10-8f2b-11ef-b3a4-5f0d2c7e91aa"

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
