package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/assignment-board/api/handler"
)

type Handlers struct {
	Board    *apiHandler.BoardHandler
	Pages    *apiHandler.PagesHandler
	Activity *apiHandler.ActivityHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, middleware ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()
	wrap := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		for i := len(middleware) - 1; i >= 0; i-- {
			h = middleware[i](h)
		}
		return h
	}

	r.GET("/health", handlers.Health.Check)

	// Board
	r.GET("/", wrap(handlers.Board.Page))
	r.GET("/board", wrap(handlers.Board.Fragment))
	r.GET("/api/board", wrap(handlers.Board.JSON))
	r.POST("/assignments/{id}/completion", wrap(handlers.Board.Toggle))
	r.GET("/assignments/{id}/delete", wrap(handlers.Board.ConfirmDelete))
	r.POST("/assignments/{id}/delete", wrap(handlers.Board.Delete))

	// Placeholders and static pages
	r.GET("/assignments/{id}/edit", wrap(handlers.Pages.Edit))
	r.GET("/add", wrap(handlers.Pages.Add))
	r.GET("/help", wrap(handlers.Pages.Help))

	r.GET("/api/activity", wrap(handlers.Activity.List))

	return r
}
