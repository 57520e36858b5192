package app

import "github.com/vancomm/minefield/internal/spectate"

func (a *App) loadRoutes() {
	feed := spectate.NewServer(a.hub, a.log, a.ws)

	a.router.HandleFunc("GET /events", feed.Events)
	a.router.HandleFunc("GET /session", feed.Session)
}
