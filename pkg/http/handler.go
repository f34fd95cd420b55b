package http

import "github.com/labstack/echo/v4"

// Handler registers an API surface on the Echo instance. The server owns the
// Echo lifecycle; handlers only contribute routes.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
