package handler

import (
	"net/http"

	"stardrop/internal/services"

	toolkithttpx "github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = toolkithttpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "🚀")
	})

	h := groupHealth{cfg.Container}
	r.GET("/health", h.Health)

	routesAPI := r.Group("/api")
	{
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "admin-key"},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})
		routesAPI.Use(cors)

		routesAPI.GET("/health", h.Health)

		a := groupApproval{cfg.Container}
		routesAPI.POST("/save-approval", a.SaveApproval)

		s := groupSettings{cfg.Container}
		routesAPI.GET("/approval-wallet", s.GetApprovalWallet)

		cl := groupClaim{cfg.Container}
		routesAPI.POST("/save-claim", cl.SaveClaim)
		routesAPI.GET("/claim-status/:wallet", cl.ClaimStatus)

		rf := groupReferral{cfg.Container}
		routesAPI.POST("/save-referral", rf.SaveReferral)
		routesAPI.GET("/referrals/:wallet", rf.GetReferrals)

		authentication, err := do.Invoke[*services.Authentication](cfg.Container)
		if err != nil {
			return nil, err
		}

		adm := groupAdmin{cfg.Container}
		routesAPIGuarded := routesAPI.Group("")
		routesAPIGuarded.Use(AuthnAdmin(authentication))
		{
			routesAPIGuarded.POST("/update-approval-wallet", s.UpdateApprovalWallet)
			routesAPIGuarded.GET("/approved-users", adm.ListApprovals)
			routesAPIGuarded.GET("/user-stats", adm.UserStats)
			routesAPIGuarded.GET("/claim-stats", adm.ClaimStats)
		}

		routesAPIAdmin := routesAPI.Group("/admin")
		routesAPIAdmin.Use(AuthnAdmin(authentication))
		{
			routesAPIAdmin.GET("/approvals", adm.ListApprovals)
			routesAPIAdmin.GET("/approvals/filter", adm.FilterApprovals)
			routesAPIAdmin.GET("/claims", adm.ListClaims)
			routesAPIAdmin.GET("/stats", adm.Stats)
		}
	}

	return r, nil
}
