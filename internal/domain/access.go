package domain

import "github.com/google/uuid"

// CanAccessProject reports whether userID may read the project and read or
// write its tasks: the owner always can, other users only when isMember.
func CanAccessProject(userID uuid.UUID, project *Project, isMember bool) bool {
	if project == nil {
		return false
	}
	return userID == project.OwnerID || isMember
}

// CanManageProject reports whether user may administer the project's
// membership and delete its tasks: only a lead who owns it.
func CanManageProject(user *User, project *Project) bool {
	if user == nil || project == nil {
		return false
	}
	return user.IsLead() && user.ID == project.OwnerID
}

// IsOwner reports whether userID owns the project.
func IsOwner(userID uuid.UUID, project *Project) bool {
	return project != nil && project.OwnerID == userID
}

// CanCreateProject reports whether user may create projects.
func CanCreateProject(user *User) bool {
	return user != nil && user.IsLead()
}
