package rbac

import (
	"recruitment-board/models"
)

var (
	AllRoles                     = []models.UserRole{models.AdminRole, models.RecruiterRole, models.ManagerRole, models.ViewerRole}
	AdminRecruiterRoleSet        = []models.UserRole{models.AdminRole, models.RecruiterRole}
	AdminRecruiterManagerRoleSet = []models.UserRole{models.AdminRole, models.RecruiterRole, models.ManagerRole}
)

func (i *impl) initRules() {
	i.boardRbac()
	i.postingRbac()
	i.candidateRbac()
}

func (i *impl) boardRbac() {
	//VIEW
	i.mustRegister(models.BoardModule, models.ViewPermission, AllRoles, "/api/v1/space/board [get]")
	i.mustRegister(models.BoardModule, models.ViewPermission, AllRoles, "/api/v1/space/board/reload [post]")
	i.mustRegister(models.BoardModule, models.ViewPermission, AllRoles, "/api/v1/space/board/column/sort [put]")
	i.mustRegister(models.BoardModule, models.ViewPermission, AllRoles, "/api/v1/space/board/permissions [get]")
	//EXPORT
	i.mustRegister(models.BoardModule, models.ExportPermission, AdminRecruiterManagerRoleSet, "/api/v1/space/board/export [get]")
	//MOVE
	i.mustRegister(models.BoardModule, models.MovePermission, AdminRecruiterRoleSet, "/api/v1/space/board/drag_start/{id} [put]")
	i.mustRegister(models.BoardModule, models.MovePermission, AdminRecruiterRoleSet, "/api/v1/space/board/drag_end/{id} [put]")
}

func (i *impl) postingRbac() {
	i.mustRegister(models.PostingModule, models.ViewPermission, AllRoles, "/api/v1/space/posting/{id} [get]")
	i.mustRegister(models.PostingModule, models.ViewPermission, AllRoles, "/api/v1/space/posting/{id}/history [post]")
	i.mustRegister(models.PostingModule, models.CreatePermission, AdminRecruiterManagerRoleSet, "/api/v1/space/posting [post]")
}

func (i *impl) candidateRbac() {
	//VIEW
	i.mustRegister(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/list [post]")
	i.mustRegister(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/{id} [get]")
	i.mustRegister(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/{id}/history [post]")
	i.mustRegister(models.CandidateModule, models.ViewPermission, AdminRecruiterManagerRoleSet, "/api/v1/space/candidate/{id}/report [get]")
	//CREATE
	i.mustRegister(models.CandidateModule, models.CreatePermission, AdminRecruiterRoleSet, "/api/v1/space/candidate [post]")
	//MOVE
	i.mustRegister(models.CandidateModule, models.MovePermission, AdminRecruiterRoleSet, "/api/v1/space/candidate/{id}/advance [put]")
	i.mustRegister(models.CandidateModule, models.MovePermission, AdminRecruiterRoleSet, "/api/v1/space/candidate/{id}/drag_end [put]")
	i.mustRegister(models.CandidateModule, models.MovePermission, AdminRecruiterManagerRoleSet, "/api/v1/space/candidate/{id}/validate_interview [put]")
	//DECISION
	i.mustRegister(models.CandidateModule, models.DecisionPermission, AdminRecruiterManagerRoleSet, "/api/v1/space/candidate/{id}/offer [put]")
	i.mustRegister(models.CandidateModule, models.DecisionPermission, AdminRecruiterManagerRoleSet, "/api/v1/space/candidate/{id}/reject [put]")
	i.mustRegister(models.CandidateModule, models.DecisionPermission, AdminRecruiterRoleSet, "/api/v1/space/candidate/{id}/finalize [put]")
	//FILES
	i.mustRegister(models.CandidateModule, models.FilesPermission, AdminRecruiterRoleSet, "/api/v1/space/candidate/{id}/cv [post]")
	i.mustRegister(models.CandidateModule, models.FilesPermission, AdminRecruiterManagerRoleSet, "/api/v1/space/candidate/{id}/cv [get]")
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, nil); err != nil {
		panic(err.Error())
	}
}
