// Package service implements the application's business rules on top of the
// repository layer: input validation, authentication and ownership checks,
// and error taxonomy mapping.
package service

import (
	"waveboard/internal/models"
)

// requireActor enforces that an authenticated principal is acting.
// An actor ID of zero means the request carried no identity.
func requireActor(actorID uint, action string) error {
	if actorID == 0 {
		return models.NewAuthenticationError("You must be logged in to " + action)
	}
	return nil
}

// requireSubmitter enforces that the actor is the track's original submitter.
// Anonymous submissions have no submitter, so nobody owns them.
func requireSubmitter(track *models.Track, actorID uint) error {
	if track.SubmittedByID == nil || *track.SubmittedByID != actorID {
		return models.NewAuthorizationError("You can only delete tracks you submitted")
	}
	return nil
}
