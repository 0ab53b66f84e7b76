// Package domain contains the core business entities, value objects, and
// domain logic of the application: users and their roles, projects, project
// membership, and tasks on the Kanban board. It also holds the pure access
// predicates the service layer builds its authorization policy on. The
// package is independent of any specific infrastructure or delivery mechanism.
package domain
