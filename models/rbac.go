package models

type RbacFunc func(spaceID, userID string, role UserRole, path string) bool

type Module string

const (
	BoardModule     Module = "BOARD"
	PostingModule   Module = "POSTING"
	CandidateModule Module = "CANDIDATE"
)

type Permission string

const (
	ViewPermission     Permission = "VIEW"
	CreatePermission   Permission = "CREATE"
	MovePermission     Permission = "MOVE"
	DecisionPermission Permission = "DECISION"
	FilesPermission    Permission = "FILES"
	ExportPermission   Permission = "EXPORT"
)
