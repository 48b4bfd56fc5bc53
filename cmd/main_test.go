package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/carpilot/carpilot/internal/adapters/http/api"
	"github.com/carpilot/carpilot/internal/adapters/http/site"
	"github.com/carpilot/carpilot/internal/adapters/http/swagger"
	service "github.com/carpilot/carpilot/internal/app"
	"github.com/carpilot/carpilot/internal/config"
	"github.com/carpilot/carpilot/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("CARPILOT_ADDR", ":8080")
			_ = os.Setenv("CARPILOT_DEFAULT_TOP_K", "50")
			defer func() {
				_ = os.Unsetenv("CARPILOT_ADDR")
				_ = os.Unsetenv("CARPILOT_DEFAULT_TOP_K")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultTopK, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := service.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := service.New(
					service.WithDefaultTopK(10),
					service.WithMaxTopK(50),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When wiring the full route table over the embedded dataset", func() {
			ctx := context.Background()
			svc := service.New()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			swagger.Register(ctx, mux)
			site.Register(ctx, mux)
			api.NewServer(svc, svc).Register(ctx, mux)

			convey.Convey("Then the health endpoint answers", func() {
				rr := httptest.NewRecorder()
				mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				convey.So(rr.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("And a recommend round trip serves results", func() {
				body := strings.NewReader(`{"query":"family suv under 20 lakh","top_k":3}`)
				rr := httptest.NewRecorder()
				mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/recommend", body))

				convey.So(rr.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(rr.Body.String(), convey.ShouldContainSubstring, `"carpilot_suggestion"`)
			})

			convey.Convey("And the docs and demo pages serve", func() {
				for _, path := range []string{"/api-docs", "/openapi.yaml", "/"} {
					rr := httptest.NewRecorder()
					mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
					convey.So(rr.Code, convey.ShouldEqual, http.StatusOK)
				}
			})
		})
	})
}
