package rbac

import (
	"recruitment-board/models"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	// GetPermissions права роли по модулям, для отрисовки доступных действий
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	i := &impl{
		exact:       map[string]models.RbacFunc{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

type impl struct {
	exact       map[string]models.RbacFunc
	patterns    []routeRule
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	httpMethod := HTTPMethod(strings.ToUpper(method))
	path = normalizePath(path)
	if check, ok := i.exact[routeKey(httpMethod, path)]; ok {
		return check, true
	}
	for _, rule := range i.patterns {
		if rule.method == httpMethod && rule.pattern.MatchString(path) {
			return rule.check, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	if strings.Contains(path, "{") {
		pattern := pathToRegex(path)
		if pattern == nil {
			return errors.Errorf("некорректный шаблон пути: %s", path)
		}
		i.patterns = append(i.patterns, routeRule{method: method, pattern: pattern, check: handler})
	} else {
		i.exact[routeKey(method, path)] = handler
	}
	i.grant(module, permission, roles)
	return nil
}

func (i *impl) grant(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	result := map[models.Module][]models.Permission{}
	for module, permissions := range i.permissions[role] {
		result[module] = slices.Clone(permissions)
	}
	return result
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	return func(spaceID, userID string, role models.UserRole, uri string) bool {
		return slices.Contains(accessRoles, role)
	}
}

var paramRe = regexp.MustCompile(`\\\{[^}]+?\\\}`)

// pathToRegex "/a/{id}/b" -> ^/a/([^/]+)/b$
func pathToRegex(path string) *regexp.Regexp {
	pattern := paramRe.ReplaceAllString(regexp.QuoteMeta(path), `([^/]+)`)
	regex, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return nil
	}
	return regex
}

// parseSwaggerPattern разбирает строку вида "/api/v1/space/board [get]"
func parseSwaggerPattern(pattern string) (string, HTTPMethod, error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	if open == -1 || !strings.HasSuffix(pattern, "]") {
		return "", "", errors.Errorf("не указан метод в шаблоне (%v)", pattern)
	}
	method := HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[open+1 : len(pattern)-1])))
	if method == "" {
		return "", "", errors.Errorf("не указан метод в шаблоне (%v)", pattern)
	}
	return normalizePath(strings.TrimSpace(pattern[:open])), method, nil
}

func normalizePath(path string) string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return "/" + strings.Join(parts, "/")
}
