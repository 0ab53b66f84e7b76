// Package api holds the HTTP handlers of the board API: registration and
// login, the current user, projects with their members, and tasks.
// Handlers decode and validate requests, call the service layer, and map
// service errors to status codes with HandleAPIError so internal details
// never reach clients.
package api
