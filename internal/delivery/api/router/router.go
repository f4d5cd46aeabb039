// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"churchadmin/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UnionHandler          *handler.UnionHandler
	AssociationHandler    *handler.AssociationHandler
	ZoneHandler           *handler.ZoneHandler
	DistrictHandler       *handler.DistrictHandler
	ChurchHandler         *handler.ChurchHandler
	SmallGroupHandler     *handler.SmallGroupHandler
	MemberHandler         *handler.MemberHandler
	MissionaryPairHandler *handler.MissionaryPairHandler
	WeeklyReportHandler   *handler.WeeklyReportHandler
	UserHandler           *handler.UserHandler
	PersonnelHandler      *handler.PersonnelHandler
	ToastHandler          *handler.ToastHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)
	apiV1.GET("/goal-catalog", handler.GoalCatalog)

	unions := apiV1.Group("/unions")
	{
		unions.GET("", p.UnionHandler.List)
		unions.POST("", p.UnionHandler.Create)
		unions.GET("/:id", p.UnionHandler.Get)
		unions.PUT("/:id", p.UnionHandler.Update)
		unions.DELETE("/:id", p.UnionHandler.Delete)
	}

	associations := apiV1.Group("/associations")
	{
		associations.GET("", p.AssociationHandler.List)
		associations.GET("/new", p.AssociationHandler.NewForm)
		associations.GET("/:id/form", p.AssociationHandler.Form)
		associations.POST("", p.AssociationHandler.Create)
		associations.PUT("/:id", p.AssociationHandler.Update)
		associations.DELETE("/:id", p.AssociationHandler.Delete)
	}

	zones := apiV1.Group("/zones")
	{
		zones.GET("", p.ZoneHandler.List)
		zones.GET("/:id", p.ZoneHandler.Get)
		zones.POST("", p.ZoneHandler.Create)
		zones.PUT("/:id", p.ZoneHandler.Update)
		zones.DELETE("/:id", p.ZoneHandler.Delete)
	}

	districts := apiV1.Group("/districts")
	{
		districts.GET("", p.DistrictHandler.List)
		districts.GET("/new", p.DistrictHandler.NewForm)
		districts.GET("/:id/form", p.DistrictHandler.Form)
		districts.POST("", p.DistrictHandler.Create)
		districts.PUT("/:id", p.DistrictHandler.Update)
		districts.DELETE("/:id", p.DistrictHandler.Delete)
	}

	churches := apiV1.Group("/churches")
	{
		churches.GET("", p.ChurchHandler.List)
		churches.GET("/new", p.ChurchHandler.NewForm)
		churches.GET("/:id/form", p.ChurchHandler.Form)
		churches.POST("", p.ChurchHandler.Create)
		churches.PUT("/:id", p.ChurchHandler.Update)
		churches.DELETE("/:id", p.ChurchHandler.Delete)
	}

	groups := apiV1.Group("/small-groups")
	{
		groups.GET("", p.SmallGroupHandler.List)
		groups.GET("/new", p.SmallGroupHandler.NewForm)
		groups.GET("/:id/form", p.SmallGroupHandler.Form)
		groups.POST("", p.SmallGroupHandler.Create)
		groups.POST("/from-personnel", p.SmallGroupHandler.CreateFromPersonnel)
		groups.PUT("/:id", p.SmallGroupHandler.Update)
		groups.DELETE("/:id", p.SmallGroupHandler.Delete)
	}

	members := apiV1.Group("/members")
	{
		members.GET("", p.MemberHandler.List)
		members.GET("/:id", p.MemberHandler.Get)
		members.POST("", p.MemberHandler.Create)
		members.PUT("/:id", p.MemberHandler.Update)
		members.DELETE("/:id", p.MemberHandler.Delete)
	}

	pairs := apiV1.Group("/missionary-pairs")
	{
		pairs.GET("", p.MissionaryPairHandler.List)
		pairs.POST("", p.MissionaryPairHandler.Create)
		pairs.PUT("/:id", p.MissionaryPairHandler.Update)
		pairs.DELETE("/:id", p.MissionaryPairHandler.Delete)
	}

	reports := apiV1.Group("/weekly-reports")
	{
		reports.GET("", p.WeeklyReportHandler.List)
		reports.GET("/draft", p.WeeklyReportHandler.Draft)
		reports.GET("/:id", p.WeeklyReportHandler.Get)
		reports.POST("", p.WeeklyReportHandler.Create)
		reports.PUT("/:id", p.WeeklyReportHandler.Update)
		reports.PUT("/:id/attendance/:memberId", p.WeeklyReportHandler.UpdateAttendance)
		reports.DELETE("/:id", p.WeeklyReportHandler.Delete)
	}

	users := apiV1.Group("/users")
	{
		users.GET("", p.UserHandler.List)
		users.GET("/:id", p.UserHandler.Get)
		users.GET("/:id/credential-qr", p.UserHandler.CredentialQR)
		users.PUT("/:id", p.UserHandler.Update)
		users.DELETE("/:id", p.UserHandler.Delete)
	}

	apiV1.GET("/personnel", p.PersonnelHandler.List)

	toasts := apiV1.Group("/toasts")
	{
		toasts.GET("", p.ToastHandler.List)
		toasts.POST("", p.ToastHandler.Show)
		toasts.GET("/stream", p.ToastHandler.Stream)
		toasts.DELETE("/:id", p.ToastHandler.Dismiss)
	}
}
