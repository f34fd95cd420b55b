package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Paths polled by orchestration and scrapers. Logging them drowns out real traffic.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogging logs HTTP requests, skipping health and scrape endpoints.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			if quietPaths[req.URL.Path] {
				return err
			}

			latency := time.Since(start)
			if err != nil {
				log.Printf("[%s] %s %s - %d (%s) err=%v",
					req.Method, req.RequestURI, req.RemoteAddr, res.Status, latency, err)
				return err
			}
			log.Printf("[%s] %s %s - %d (%s)",
				req.Method, req.RequestURI, req.RemoteAddr, res.Status, latency)

			return err
		}
	}
}
