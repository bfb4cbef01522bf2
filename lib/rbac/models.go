package rbac

import (
	"recruitment-board/models"
	"regexp"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

// routeRule правило для маршрута с параметрами, например /posting/{id}
type routeRule struct {
	method  HTTPMethod
	pattern *regexp.Regexp
	check   models.RbacFunc
}

// routeKey ключ точного совпадения "METHOD /path"
func routeKey(method HTTPMethod, path string) string {
	return string(method) + " " + path
}
