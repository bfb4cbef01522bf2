package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN"
	RecruiterRole UserRole = "RECRUITER"
	ManagerRole   UserRole = "MANAGER"
	ViewerRole    UserRole = "VIEWER"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Администратор",
	RecruiterRole: "Рекрутер",
	ManagerRole:   "Нанимающий менеджер",
	ViewerRole:    "Наблюдатель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// Actor автор действия на доске (из claims токена)
type Actor struct {
	ID   string
	Name string
	Role UserRole
}

func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.ID != "" {
		return a.ID
	}
	return SystemUser
}
